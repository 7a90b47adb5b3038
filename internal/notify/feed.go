package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/event"
	"github.com/osse101/Milestone_Go/internal/logger"
)

// FeedSize is the number of notifications kept for the feed endpoint
const FeedSize = 50

// Log messages
const (
	LogMsgNotificationSent   = "Notification sent"
	LogMsgNotificationFailed = "Failed to publish notification"
)

// Notifier delivers a user-facing message
type Notifier interface {
	Notify(ctx context.Context, kind, title, message string)
}

// Feed keeps the most recent notifications and publishes each one to the bus
type Feed struct {
	publisher event.Publisher
	clock     clock.Clock

	mu    sync.RWMutex
	items []domain.Notification
}

// NewFeed creates a Feed. publisher may be nil.
func NewFeed(publisher event.Publisher, clk clock.Clock) *Feed {
	return &Feed{
		publisher: publisher,
		clock:     clk,
		items:     make([]domain.Notification, 0, FeedSize),
	}
}

func (f *Feed) Notify(ctx context.Context, kind, title, message string) {
	n := domain.Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: f.clock.Now(),
	}

	f.mu.Lock()
	f.items = append(f.items, n)
	if len(f.items) > FeedSize {
		f.items = append(f.items[:0:0], f.items[len(f.items)-FeedSize:]...)
	}
	f.mu.Unlock()

	log := logger.FromContext(ctx)
	log.Info(LogMsgNotificationSent, "kind", kind, "title", title)

	if f.publisher != nil {
		if err := f.publisher.Publish(ctx, event.NewNotificationEvent(n)); err != nil {
			log.Warn(LogMsgNotificationFailed, "kind", kind, "error", err)
		}
	}
}

// Recent returns up to limit notifications, newest first. limit <= 0 returns all.
func (f *Feed) Recent(limit int) []domain.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	n := len(f.items)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]domain.Notification, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, f.items[i])
	}
	return out
}
