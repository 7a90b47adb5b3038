package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/event"
)

func analyticsEvent(name domain.EventType, props domain.Properties) event.Event {
	return event.NewAnalyticsEvent(domain.AnalyticsEvent{Name: name, Properties: props})
}

func TestEventMetricsCollector_Register(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	before := testutil.ToFloat64(AnalyticsEvents.WithLabelValues("share_test_event"))
	require.NoError(t, bus.Publish(context.Background(), analyticsEvent("share_test_event", nil)))
	assert.Equal(t, before+1, testutil.ToFloat64(AnalyticsEvents.WithLabelValues("share_test_event")))
}

func TestEventMetricsCollector_HandleEvent(t *testing.T) {
	ctx := context.Background()
	c := NewEventMetricsCollector()

	tests := []struct {
		name   string
		evt    event.Event
		metric func() float64
		delta  float64
	}{
		{
			name: "achievement unlocked by category",
			evt: analyticsEvent(domain.EventAchievementUnlocked, domain.Properties{
				PayloadFieldCategory: domain.StringValue("engagement"),
			}),
			metric: func() float64 { return testutil.ToFloat64(AchievementsUnlocked.WithLabelValues("engagement")) },
			delta:  1,
		},
		{
			name: "challenge completion adds reward points",
			evt: analyticsEvent(domain.EventFeatureUsed, domain.Properties{
				PayloadFieldAction:       domain.StringValue(ActionDailyChallengeDone),
				PayloadFieldRewardPoints: domain.IntValue(75),
			}),
			metric: func() float64 { return testutil.ToFloat64(ChallengeRewardPoints) },
			delta:  75,
		},
		{
			name: "subscription change by new tier",
			evt: analyticsEvent(domain.EventFeatureUsed, domain.Properties{
				PayloadFieldAction:  domain.StringValue(ActionSubscriptionChanged),
				PayloadFieldNewTier: domain.StringValue("Pro"),
			}),
			metric: func() float64 { return testutil.ToFloat64(SubscriptionChanges.WithLabelValues("Pro")) },
			delta:  1,
		},
		{
			name: "successful purchase by type",
			evt: analyticsEvent(domain.EventPurchaseCompleted, domain.Properties{
				PayloadFieldPurchaseType: domain.StringValue("one_time"),
			}),
			metric: func() float64 { return testutil.ToFloat64(Purchases.WithLabelValues("one_time")) },
			delta:  1,
		},
		{
			name: "initiated purchase is not counted",
			evt: analyticsEvent(domain.EventPurchaseInitiated, domain.Properties{
				PayloadFieldPurchaseType: domain.StringValue("upgrade"),
			}),
			metric: func() float64 { return testutil.ToFloat64(Purchases.WithLabelValues("upgrade")) },
			delta:  0,
		},
		{
			name: "app error by type",
			evt: analyticsEvent(domain.EventErrorOccurred, domain.Properties{
				PayloadFieldErrorType: domain.StringValue("network"),
			}),
			metric: func() float64 { return testutil.ToFloat64(AppErrors.WithLabelValues("network")) },
			delta:  1,
		},
		{
			name: "notification by kind",
			evt: event.NewNotificationEvent(domain.Notification{Kind: domain.NotificationTapMilestone}),
			metric: func() float64 {
				return testutil.ToFloat64(NotificationsSent.WithLabelValues(domain.NotificationTapMilestone))
			},
			delta: 1,
		},
		{
			name:   "undecodable payload counts a handler error",
			evt:    event.Event{Type: event.AnalyticsTracked, Payload: 42},
			metric: func() float64 { return testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.AnalyticsTracked))) },
			delta:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.metric()
			require.NoError(t, c.HandleEvent(ctx, tt.evt))
			assert.Equal(t, before+tt.delta, tt.metric())
		})
	}
}
