package eventlog

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/event"
	"github.com/osse101/Milestone_Go/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger on the bus
	Subscribe(bus event.Bus) error

	// Query returns logged events
	Query(ctx context.Context, filter Filter) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo  Repository
	clock clock.Clock
}

// NewService creates a new event logging service
func NewService(repo Repository, clk clock.Clock) Service {
	return &service{repo: repo, clock: clk}
}

// Subscribe registers the handler for recorded analytics events
func (s *service) Subscribe(bus event.Bus) error {
	bus.Subscribe(event.AnalyticsTracked, s.handleEvent)
	return nil
}

func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.AnalyticsPayloadV1](evt.Payload)
	if err != nil {
		log.Debug(LogMsgPayloadUndecodable, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	entry := Event{
		Name:       payload.Name,
		UserID:     payload.UserID,
		SessionID:  payload.SessionID,
		Properties: payload.Properties,
		OccurredAt: time.Unix(payload.Timestamp, 0).UTC(),
		CreatedAt:  s.clock.Now().UTC(),
	}
	if entry.Properties == nil {
		entry.Properties = domain.Properties{}
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldName, entry.Name)
		return fmt.Errorf("append %s: %w", entry.Name, err)
	}

	log.Debug(LogMsgEventLogged, LogFieldName, entry.Name, LogFieldSessionID, entry.SessionID)
	return nil
}

func (s *service) Query(ctx context.Context, filter Filter) ([]Event, error) {
	if filter.Limit <= 0 || filter.Limit > MaxQueryLimit {
		filter.Limit = MaxQueryLimit
	}
	return s.repo.Query(ctx, filter)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays < 1 {
		return 0, fmt.Errorf("%w: retention must be at least one day", domain.ErrInvalidInput)
	}
	cutoff := s.clock.Now().AddDate(0, 0, -retentionDays)
	return s.repo.CleanupOlderThan(ctx, cutoff)
}
