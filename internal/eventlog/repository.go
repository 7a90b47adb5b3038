package eventlog

import (
	"context"
	"time"

	"github.com/osse101/Milestone_Go/internal/domain"
)

// Event is an analytics event as persisted in the event log
type Event struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	UserID     string            `json:"user_id"`
	SessionID  string            `json:"session_id"`
	Properties domain.Properties `json:"properties"`
	OccurredAt time.Time         `json:"occurred_at"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Filter narrows an event log query. Nil fields do not filter.
type Filter struct {
	Name      *string
	SessionID *string
	Since     *time.Time
	Until     *time.Time
	Limit     int
}

// Repository defines the interface for event logging storage
type Repository interface {
	// Append stores an event
	Append(ctx context.Context, evt Event) error

	// Query returns events matching filter, newest first
	Query(ctx context.Context, filter Filter) ([]Event, error)

	// CleanupOlderThan removes events that occurred before cutoff and returns how many were removed
	CleanupOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
