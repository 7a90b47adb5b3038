package metrics

import (
	"context"

	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/event"
	"github.com/osse101/Milestone_Go/internal/logger"
)

// EventMetricsCollector subscribes to bus events and records business metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes the collector to every event type it understands
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	bus.Subscribe(event.AnalyticsTracked, e.HandleEvent)
	bus.Subscribe(event.NotificationSent, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.AnalyticsTracked:
		payload, err := event.DecodePayload[event.AnalyticsPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			log.Debug(LogMsgPayloadUndecodable, "type", evt.Type, "error", err)
			return nil
		}
		recordAnalytics(payload)

	case event.NotificationSent:
		payload, err := event.DecodePayload[event.NotificationPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			log.Debug(LogMsgPayloadUndecodable, "type", evt.Type, "error", err)
			return nil
		}
		NotificationsSent.WithLabelValues(payload.Notification.Kind).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordAnalytics(p event.AnalyticsPayloadV1) {
	AnalyticsEvents.WithLabelValues(p.Name).Inc()

	switch domain.EventType(p.Name) {
	case domain.EventAchievementUnlocked:
		AchievementsUnlocked.WithLabelValues(stringProp(p.Properties, PayloadFieldCategory)).Inc()

	case domain.EventPurchaseCompleted:
		Purchases.WithLabelValues(stringProp(p.Properties, PayloadFieldPurchaseType)).Inc()

	case domain.EventErrorOccurred:
		AppErrors.WithLabelValues(stringProp(p.Properties, PayloadFieldErrorType)).Inc()

	case domain.EventFeatureUsed:
		switch stringProp(p.Properties, PayloadFieldAction) {
		case ActionDailyChallengeDone:
			ChallengesCompleted.Inc()
			if points, ok := p.Properties[PayloadFieldRewardPoints].AsInt(); ok && points > 0 {
				ChallengeRewardPoints.Add(float64(points))
			}
		case ActionSubscriptionChanged:
			SubscriptionChanges.WithLabelValues(stringProp(p.Properties, PayloadFieldNewTier)).Inc()
		}
	}
}

func stringProp(props domain.Properties, key string) string {
	s, _ := props[key].AsString()
	return s
}
