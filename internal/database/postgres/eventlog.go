package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/eventlog"
)

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(db *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{db: db}
}

// Append stores an event in the database
func (r *eventLogRepository) Append(ctx context.Context, evt eventlog.Event) error {
	query := `
		INSERT INTO analytics_events (name, user_id, session_id, properties, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	props := evt.Properties
	if props == nil {
		props = domain.Properties{}
	}
	propsJSON, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalProps, err)
	}

	createdAt := evt.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	if _, err := r.db.Exec(ctx, query, evt.Name, evt.UserID, evt.SessionID, propsJSON, evt.OccurredAt, createdAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

// Query retrieves events based on filter criteria
func (r *eventLogRepository) Query(ctx context.Context, filter eventlog.Filter) ([]eventlog.Event, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, name, user_id, session_id, properties, occurred_at, created_at
		FROM analytics_events
		WHERE 1=1`)

	args := []interface{}{}
	argNum := 1

	if filter.Name != nil {
		fmt.Fprintf(&queryBuilder, " AND name = $%d", argNum)
		args = append(args, *filter.Name)
		argNum++
	}

	if filter.SessionID != nil {
		fmt.Fprintf(&queryBuilder, " AND session_id = $%d", argNum)
		args = append(args, *filter.SessionID)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&queryBuilder, " AND occurred_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	if filter.Until != nil {
		fmt.Fprintf(&queryBuilder, " AND occurred_at <= $%d", argNum)
		args = append(args, *filter.Until)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY occurred_at DESC, id DESC")

	if filter.Limit > 0 {
		fmt.Fprintf(&queryBuilder, " LIMIT $%d", argNum)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CleanupOlderThan removes events that occurred before cutoff
func (r *eventLogRepository) CleanupOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM analytics_events WHERE occurred_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}
	return result.RowsAffected(), nil
}

func scanEvents(rows pgx.Rows) ([]eventlog.Event, error) {
	var events []eventlog.Event

	for rows.Next() {
		var evt eventlog.Event
		var propsJSON []byte

		err := rows.Scan(
			&evt.ID,
			&evt.Name,
			&evt.UserID,
			&evt.SessionID,
			&propsJSON,
			&evt.OccurredAt,
			&evt.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
		}

		if err := json.Unmarshal(propsJSON, &evt.Properties); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalProps, err)
		}

		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}

	return events, nil
}
