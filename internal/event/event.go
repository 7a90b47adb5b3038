package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/Milestone_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types carried on the bus
const (
	// AnalyticsTracked is published for every analytics event recorded by the sink
	AnalyticsTracked Type = "analytics.tracked"
	// NotificationSent is published for every user-facing notification
	NotificationSent Type = "notification.sent"
)

// AnalyticsPayloadV1 is the typed payload for analytics.tracked events
type AnalyticsPayloadV1 struct {
	Name       string            `json:"name"`
	UserID     string            `json:"user_id"`
	SessionID  string            `json:"session_id"`
	Properties domain.Properties `json:"properties"`
	Timestamp  int64             `json:"timestamp"`
}

// NotificationPayloadV1 is the typed payload for notification.sent events
type NotificationPayloadV1 struct {
	Notification domain.Notification `json:"notification"`
}

// NewAnalyticsEvent wraps a recorded analytics event for the bus
func NewAnalyticsEvent(e domain.AnalyticsEvent) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AnalyticsTracked,
		Payload: AnalyticsPayloadV1{
			Name:       string(e.Name),
			UserID:     e.UserID,
			SessionID:  e.SessionID,
			Properties: e.Properties.Clone(),
			Timestamp:  e.Timestamp.Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeySessionID: e.SessionID,
		},
	}
}

// NewNotificationEvent wraps a notification for the bus
func NewNotificationEvent(n domain.Notification) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    NotificationSent,
		Payload: NotificationPayloadV1{Notification: n},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the publishing side of a bus
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
