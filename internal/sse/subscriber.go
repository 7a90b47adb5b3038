package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/Milestone_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for notification and analytics events
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.NotificationSent, s.handleNotification)
	s.bus.Subscribe(event.AnalyticsTracked, s.handleAnalytics)

	slog.Info(LogMsgSubscribed, "types", []string{
		string(event.NotificationSent),
		string(event.AnalyticsTracked),
	})
}

func (s *Subscriber) handleNotification(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.NotificationPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	n := payload.Notification
	s.hub.Broadcast(EventTypeNotification, NotificationPayload{
		ID:      n.ID,
		Kind:    n.Kind,
		Title:   n.Title,
		Message: n.Message,
	})
	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeNotification, "kind", n.Kind)
	return nil
}

func (s *Subscriber) handleAnalytics(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.AnalyticsPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	props := make(map[string]interface{}, len(payload.Properties))
	for k, v := range payload.Properties {
		props[k] = v.Interface()
	}
	s.hub.Broadcast(EventTypeAnalytics, AnalyticsPayload{
		Name:       payload.Name,
		SessionID:  payload.SessionID,
		Properties: props,
	})
	return nil
}
