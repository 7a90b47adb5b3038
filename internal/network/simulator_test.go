package network

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
	"github.com/osse101/Milestone_Go/internal/utils"
)

type MockTracker struct {
	mock.Mock
}

func (m *MockTracker) TrackEvent(ctx context.Context, name domain.EventType, props domain.Properties) {
	m.Called(ctx, name, props)
}

func (m *MockTracker) TrackError(ctx context.Context, appErr *domain.AppError) {
	m.Called(ctx, appErr)
}

func newSimulator(t *testing.T, roll float64) (*Simulator, *MockTracker) {
	t.Helper()
	tracker := new(MockTracker)
	tracker.On("TrackEvent", mock.Anything, domain.EventFeatureUsed, mock.Anything).Maybe()
	tracker.On("TrackError", mock.Anything, mock.Anything).Maybe()
	sim := NewSimulator(tracker, utils.FixedRandom{FloatValue: roll}, clock.NewSimulated(time.Now()), Config{Latency: time.Millisecond})
	return sim, tracker
}

func TestNewSimulator_Defaults(t *testing.T) {
	sim := NewSimulator(nil, utils.FixedRandom{}, clock.NewReal(), Config{Latency: -1})
	assert.True(t, sim.IsNetworkAvailable())
	assert.Equal(t, DefaultLatency, sim.Latency())
}

func TestSetSimulatedLatency(t *testing.T) {
	ctx := context.Background()
	sim, _ := newSimulator(t, 0)

	sim.SetSimulatedLatency(ctx, 2*time.Second)
	assert.Equal(t, 2*time.Second, sim.Latency())

	sim.SetSimulatedLatency(ctx, -time.Second)
	assert.Zero(t, sim.Latency())
}

func TestSetNetworkAvailable_Tracks(t *testing.T) {
	ctx := context.Background()
	sim, tracker := newSimulator(t, 0)

	sim.SetNetworkAvailable(ctx, false)
	assert.False(t, sim.IsNetworkAvailable())
	tracker.AssertCalled(t, "TrackEvent", mock.Anything, domain.EventFeatureUsed, domain.Properties{
		domain.PropAction: domain.StringValue(domain.ActionNetworkSimulation),
		PropAvailable:     domain.BoolValue(false),
	})
}

func TestCall(t *testing.T) {
	tests := []struct {
		name      string
		roll      float64
		available bool
		wantErr   string
	}{
		{"success", 0.3, true, ""},
		{"timeout", 0.9, true, MessageTimeout},
		{"offline", 0.1, false, MessageNoNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			sim, tracker := newSimulator(t, tt.roll)
			sim.SetNetworkAvailable(ctx, tt.available)

			got, err := Call(ctx, sim, "/api/topics", []string{"a", "b"})

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, []string{"a", "b"}, got)
				tracker.AssertNotCalled(t, "TrackError", mock.Anything, mock.Anything)
				return
			}

			require.Error(t, err)
			assert.Nil(t, got)
			var appErr *domain.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, domain.ErrorTypeNetwork, appErr.Type)
			assert.Equal(t, tt.wantErr, appErr.Message)
			assert.Equal(t, "/api/topics", appErr.Context[PropEndpoint])
			tracker.AssertCalled(t, "TrackError", mock.Anything, appErr)
		})
	}
}

func TestCall_ContextCancelled(t *testing.T) {
	sim, _ := newSimulator(t, 0.1)
	sim.SetSimulatedLatency(context.Background(), time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := Call(ctx, sim, "/slow", 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestShutdown(t *testing.T) {
	ctx := context.Background()
	sim, _ := newSimulator(t, 0.1)

	done := make(chan struct{})
	require.NoError(t, SimulateAPICall(ctx, sim, "/x", "payload", func(string, error) { close(done) }))

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, sim.Shutdown(shutdownCtx))

	select {
	case <-done:
	default:
		t.Fatal("in-flight call should finish before Shutdown returns")
	}

	_, err := Call(ctx, sim, "/x", 1)
	assert.ErrorIs(t, err, ErrClosed)
}
