package eventlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/event"
)

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

var testNow = time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC)

func TestService_Subscribe(t *testing.T) {
	mockBus := new(MockEventBus)
	mockBus.On("Subscribe", event.AnalyticsTracked, mock.Anything).Return()

	err := NewService(new(MockRepository), clock.NewSimulated(testNow)).Subscribe(mockBus)
	assert.NoError(t, err)
	mockBus.AssertExpectations(t)
}

func TestService_LogsPublishedAnalytics(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, clock.NewSimulated(testNow))
	bus := event.NewMemoryBus()
	require.NoError(t, svc.Subscribe(bus))

	occurred := testNow.Add(-time.Minute)
	mockRepo.On("Append", mock.Anything, mock.MatchedBy(func(e Event) bool {
		v, _ := e.Properties["button_name"].AsString()
		return e.Name == string(domain.EventButtonTap) &&
			e.SessionID == "session-1" &&
			e.UserID == "user-1" &&
			v == "main_tap_button" &&
			e.OccurredAt.Equal(occurred) &&
			e.CreatedAt.Equal(testNow)
	})).Return(nil).Once()

	err := bus.Publish(context.Background(), event.NewAnalyticsEvent(domain.AnalyticsEvent{
		Name:       domain.EventButtonTap,
		UserID:     "user-1",
		SessionID:  "session-1",
		Timestamp:  occurred,
		Properties: domain.Properties{"button_name": domain.StringValue("main_tap_button")},
	}))
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent(t *testing.T) {
	tests := []struct {
		name      string
		payload   interface{}
		appendErr error
		wantCall  bool
		wantErr   bool
	}{
		{
			name:     "typed payload",
			payload:  event.AnalyticsPayloadV1{Name: "screen_view", SessionID: "s", Timestamp: testNow.Unix()},
			wantCall: true,
		},
		{
			name:     "map payload from a serialized source",
			payload:  map[string]interface{}{"name": "screen_view", "session_id": "s", "timestamp": testNow.Unix()},
			wantCall: true,
		},
		{
			name:    "undecodable payload is skipped",
			payload: "not an object",
		},
		{
			name:      "repository failure is returned",
			payload:   event.AnalyticsPayloadV1{Name: "screen_view"},
			appendErr: errors.New("insert failed"),
			wantCall:  true,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			svc := NewService(mockRepo, clock.NewSimulated(testNow)).(*service)
			if tt.wantCall {
				mockRepo.On("Append", mock.Anything, mock.MatchedBy(func(e Event) bool {
					return e.Name == "screen_view" && e.Properties != nil
				})).Return(tt.appendErr).Once()
			}

			err := svc.handleEvent(context.Background(), event.Event{Type: event.AnalyticsTracked, Payload: tt.payload})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_QueryClampsLimit(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, clock.NewSimulated(testNow))

	mockRepo.On("Query", mock.Anything, Filter{Limit: MaxQueryLimit}).Return([]Event{{ID: 1}}, nil).Twice()

	events, err := svc.Query(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, events, 1)

	_, err = svc.Query(context.Background(), Filter{Limit: 10_000})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_CleanupRejectsZeroRetention(t *testing.T) {
	svc := NewService(new(MockRepository), clock.NewSimulated(testNow))
	_, err := svc.CleanupOldEvents(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
