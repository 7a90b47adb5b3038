package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/Milestone_Go/internal/database"
	"github.com/osse101/Milestone_Go/internal/database/migrations"
)

// KVStore keeps progress state in the progress_kv table
type KVStore struct {
	db *pgxpool.Pool
}

// NewKVStore creates a new PostgreSQL progress store
func NewKVStore(db *pgxpool.Pool) *KVStore {
	return &KVStore{db: db}
}

// Migrate applies the embedded PostgreSQL migrations through the pool
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	if db == nil {
		return errors.New(ErrMsgFailedToOpenMigrationsDB)
	}
	defer db.Close()
	return database.Migrate(ctx, db, goose.DialectPostgres, migrations.Postgres, migrations.PostgresDir)
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, `SELECT value FROM progress_kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s %q: %w", ErrMsgFailedToGetValue, key, err)
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO progress_kv (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToSetValue, key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM progress_kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgFailedToDeleteValue, key, err)
	}
	return nil
}

func (s *KVStore) Clear(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM progress_kv`); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToClearStore, err)
	}
	return nil
}

// Ping reports whether the database is reachable
func (s *KVStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
