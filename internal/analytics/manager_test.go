package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/event"
	"github.com/osse101/Milestone_Go/internal/store"
)

type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (b *recordingBus) Publish(_ context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return b.err
}

func newTestManager(t *testing.T) (*Manager, *store.Memory, *recordingBus, *clock.Simulated) {
	t.Helper()
	st := store.NewMemory()
	bus := &recordingBus{}
	clk := clock.NewSimulated(time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC))
	return NewManager(context.Background(), st, bus, clk), st, bus, clk
}

func TestNewManager_UserID(t *testing.T) {
	ctx := context.Background()
	m, st, _, _ := newTestManager(t)

	id := m.UserID()
	assert.True(t, strings.HasPrefix(id, UserIDPrefix))
	assert.Len(t, id, len(UserIDPrefix)+8)

	stored, ok, err := st.Get(ctx, domain.KeyUserID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, id, stored)

	again := NewManager(ctx, st, nil, clock.NewReal())
	assert.Equal(t, id, again.UserID(), "user id survives restarts")
	assert.NotEqual(t, m.SessionID(), again.SessionID(), "each process gets a new session")
}

func TestTrackEvent_Enrichment(t *testing.T) {
	ctx := context.Background()
	m, st, bus, clk := newTestManager(t)

	clk.Advance(90 * time.Second)
	m.TrackEvent(ctx, domain.EventButtonTap, domain.Properties{"button": domain.StringValue("tap")})

	events := m.Events()
	require.Len(t, events, 1)
	e := events[0]
	assert.Equal(t, domain.EventButtonTap, e.Name)
	assert.Equal(t, "tap", e.Properties["button"].String())
	assert.Equal(t, m.UserID(), e.Properties[domain.PropUserID].String())
	assert.Equal(t, m.SessionID(), e.Properties[domain.PropSessionID].String())
	assert.Equal(t, "2026-04-01T12:01:30Z", e.Properties[domain.PropTimestamp].String())
	d, ok := e.Properties[domain.PropSessionDuration].AsFloat()
	assert.True(t, ok)
	assert.InDelta(t, 90.0, d, 0.001)

	n, err := store.GetInt(ctx, st, domain.KeyTotalEvents)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Len(t, bus.events, 1)
	assert.Equal(t, event.AnalyticsTracked, bus.events[0].Type)
}

func TestTrackEvent_DoesNotMutateCallerProps(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	props := domain.Properties{"k": domain.IntValue(1)}
	m.TrackEvent(context.Background(), domain.EventFeatureUsed, props)
	assert.Len(t, props, 1)
}

func TestTrackEvent_PublishFailureIgnored(t *testing.T) {
	m, _, bus, _ := newTestManager(t)
	bus.err = errors.New("bus down")

	m.TrackEvent(context.Background(), domain.EventFeatureUsed, nil)
	assert.Len(t, m.Events(), 1)
}

func TestTrackEvent_RingBuffer(t *testing.T) {
	ctx := context.Background()
	m, st, _, _ := newTestManager(t)

	for i := 0; i < MaxEvents+25; i++ {
		m.TrackEvent(ctx, domain.EventButtonTap, domain.Properties{"i": domain.IntValue(i)})
	}

	events := m.Events()
	require.Len(t, events, MaxEvents)
	first, _ := events[0].Properties["i"].AsInt()
	last, _ := events[MaxEvents-1].Properties["i"].AsInt()
	assert.Equal(t, int64(25), first)
	assert.Equal(t, int64(MaxEvents+24), last)

	n, _ := store.GetInt(ctx, st, domain.KeyTotalEvents)
	assert.Equal(t, MaxEvents, n)
}

func TestStartSession(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	m.StartSession(context.Background())

	events := m.Events()
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventScreenView, events[0].Name)
	started, _ := events[0].Properties[PropSessionStart].AsBool()
	assert.True(t, started)
}

func TestTrackScreen_PreviousScreen(t *testing.T) {
	ctx := context.Background()
	m, st, _, _ := newTestManager(t)

	m.TrackScreen(ctx, domain.ScreenHome, nil)
	m.TrackScreen(ctx, domain.ScreenSettings, nil)

	events := m.Events()
	require.Len(t, events, 2)
	_, hasPrev := events[0].Properties[PropPreviousScreen]
	assert.False(t, hasPrev)
	assert.Equal(t, domain.ScreenHome, events[1].Properties[PropPreviousScreen].String())
	assert.Equal(t, domain.ScreenSettings, events[1].Properties[PropScreenName].String())

	last, _, _ := st.Get(ctx, domain.KeyLastScreen)
	assert.Equal(t, domain.ScreenSettings, last)
}

func TestUserProperties(t *testing.T) {
	ctx := context.Background()
	m, st, _, _ := newTestManager(t)

	_, ok := m.UserProperty(ctx, "plan")
	assert.False(t, ok)

	m.SetUserProperty(ctx, "plan", domain.StringValue("Pro"))
	m.SetUserProperty(ctx, "age", domain.IntValue(30))

	v, ok := m.UserProperty(ctx, "age")
	require.True(t, ok)
	age, _ := v.AsInt()
	assert.Equal(t, int64(30), age)

	// persisted across managers
	other := NewManager(ctx, st, nil, clock.NewReal())
	v, ok = other.UserProperty(ctx, "plan")
	require.True(t, ok)
	assert.Equal(t, "Pro", v.String())

	events := m.Events()
	require.Len(t, events, 2)
	assert.Equal(t, domain.ActionUserPropertySet, events[0].Properties[domain.PropAction].String())
	assert.Equal(t, "plan", events[0].Properties[PropProperty].String())
}

func TestTypedTrackers(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		track    func(m *Manager)
		wantName domain.EventType
		check    func(t *testing.T, p domain.Properties)
	}{
		{
			name: "purchase success",
			track: func(m *Manager) {
				m.TrackPurchase(ctx, domain.NewSubscriptionPurchase(domain.TierPro), true)
			},
			wantName: domain.EventPurchaseCompleted,
			check: func(t *testing.T, p domain.Properties) {
				assert.Equal(t, "subscription_pro", p[PropItemID].String())
				assert.Equal(t, "$9.99/month", p[PropPrice].String())
				ok, _ := p[PropSuccess].AsBool()
				assert.True(t, ok)
				assert.Equal(t, "subscription", p[PropPurchaseType].String())
			},
		},
		{
			name: "purchase failure",
			track: func(m *Manager) {
				m.TrackPurchase(ctx, domain.NewSubscriptionPurchase(domain.TierBasic), false)
			},
			wantName: domain.EventPurchaseInitiated,
			check: func(t *testing.T, p domain.Properties) {
				ok, isBool := p[PropSuccess].AsBool()
				assert.True(t, isBool)
				assert.False(t, ok)
			},
		},
		{
			name: "achievement",
			track: func(m *Manager) {
				m.TrackAchievement(ctx, domain.Achievement{
					AchievementDefinition: domain.AchievementDefinition{
						ID: "tap_10", Title: "Getting Started", Requirement: 10, Category: domain.CategoryTapping,
					},
					Progress:   10,
					IsUnlocked: true,
				})
			},
			wantName: domain.EventAchievementUnlocked,
			check: func(t *testing.T, p domain.Properties) {
				assert.Equal(t, "tap_10", p[PropAchievementID].String())
				assert.Equal(t, "Tapping Master", p[PropCategory].String())
				assert.Equal(t, "10", p[PropRequirement].String())
			},
		},
		{
			name: "error with flattened context",
			track: func(m *Manager) {
				m.TrackError(ctx, &domain.AppError{
					ID:      "err-1",
					Type:    domain.ErrorTypeNetwork,
					Message: "Request timeout",
					Context: map[string]string{"endpoint": "/api/topics"},
				})
			},
			wantName: domain.EventErrorOccurred,
			check: func(t *testing.T, p domain.Properties) {
				assert.Equal(t, "network_error", p[PropErrorType].String())
				assert.Equal(t, "Request timeout", p[PropErrorMessage].String())
				assert.Equal(t, "/api/topics", p["context_endpoint"].String())
			},
		},
		{
			name: "engagement with value",
			track: func(m *Manager) {
				v := domain.IntValue(5)
				m.TrackEngagement(ctx, "rate", "Core Data", &v)
			},
			wantName: domain.EventFeatureUsed,
			check: func(t *testing.T, p domain.Properties) {
				assert.Equal(t, "rate", p[domain.PropAction].String())
				assert.Equal(t, "Core Data", p[PropTarget].String())
				assert.Equal(t, "5", p[PropValue].String())
			},
		},
		{
			name: "engagement without value",
			track: func(m *Manager) {
				m.TrackEngagement(ctx, "open", "menu", nil)
			},
			wantName: domain.EventFeatureUsed,
			check: func(t *testing.T, p domain.Properties) {
				_, ok := p[PropValue]
				assert.False(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _, _ := newTestManager(t)
			tt.track(m)
			events := m.Events()
			require.Len(t, events, 1)
			assert.Equal(t, tt.wantName, events[0].Name)
			tt.check(t, events[0].Properties)
		})
	}
}

func TestTrackError_Nil(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	m.TrackError(context.Background(), nil)
	assert.Empty(t, m.Events())
}

func TestSummaryExportClear(t *testing.T) {
	ctx := context.Background()
	m, _, _, _ := newTestManager(t)

	m.TrackEvent(ctx, domain.EventButtonTap, nil)
	m.TrackEvent(ctx, domain.EventButtonTap, nil)
	m.TrackScreen(ctx, domain.ScreenHome, nil)

	summary := m.Summary()
	assert.Equal(t, 3, summary.TotalEvents)
	assert.Equal(t, 2, summary.Counts["button_tap"])
	assert.Equal(t, 1, summary.Counts["screen_view"])

	data, err := m.Export()
	require.NoError(t, err)
	var exported []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &exported))
	require.Len(t, exported, 3)
	assert.Equal(t, "screen_view", exported[2]["name"])
	assert.Equal(t, "home", exported[2][PropScreenName])
	assert.Equal(t, m.UserID(), exported[0][domain.PropUserID])
	assert.Contains(t, string(data), "\n  ", "export is pretty printed")

	m.Clear(ctx)
	events := m.Events()
	require.Len(t, events, 1)
	assert.Equal(t, domain.ActionEventsCleared, events[0].Properties[domain.PropAction].String())
}
