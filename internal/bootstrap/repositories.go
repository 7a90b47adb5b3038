package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Milestone_Go/internal/challenge"
	"github.com/osse101/Milestone_Go/internal/config"
	"github.com/osse101/Milestone_Go/internal/database"
	"github.com/osse101/Milestone_Go/internal/database/postgres"
	"github.com/osse101/Milestone_Go/internal/database/sqlite"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/eventlog"
	"github.com/osse101/Milestone_Go/internal/handler"
	"github.com/osse101/Milestone_Go/internal/store"
)

// Storage holds the progress store chosen by STORE_BACKEND and what comes with it.
// EventLog is only set for the postgres backend.
type Storage struct {
	Store    store.Store
	Pinger   handler.Pinger
	EventLog eventlog.Repository

	close func()
}

// Close releases the backend connection
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// InitializeStorage opens the configured backend and wraps it in the read-through cache.
// The memory backend is used as is.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var st *Storage

	switch cfg.StoreBackend {
	case store.BackendMemory:
		st = &Storage{Store: store.NewMemory()}
		slog.Info(LogMsgStoreReady, "backend", cfg.StoreBackend)
		return st, nil

	case store.BackendSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, DirPermission); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
			}
		}
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		st = &Storage{
			Store:  db,
			Pinger: db,
			close: func() {
				if err := db.Close(); err != nil {
					slog.Error(LogMsgStoreCloseFailed, "error", err)
				}
			},
		}

	case store.BackendPostgres:
		pool, err := connectPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		kv := postgres.NewKVStore(pool)
		st = &Storage{
			Store:    kv,
			Pinger:   kv,
			EventLog: postgres.NewEventLogRepository(pool),
			close:    pool.Close,
		}

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreBackend, cfg.StoreBackend)
	}

	st.Store = store.NewCached(st.Store, cfg.CacheSize, cfg.CacheTTL)
	slog.Info(LogMsgStoreReady,
		"backend", cfg.StoreBackend,
		"cache_size", cfg.CacheSize,
		"cache_ttl", cfg.CacheTTL)
	return st, nil
}

func connectPostgres(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectPostgres, err)
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigratePostgres, err)
	}
	return pool, nil
}

// LoadChallengeTemplates reads the template pool from CHALLENGE_POOL_PATH,
// or returns the built-in pool when the path is empty.
func LoadChallengeTemplates(cfg *config.Config) ([]domain.ChallengeTemplate, error) {
	templates, err := challenge.LoadPool(cfg.ChallengePoolPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadChallenges, err)
	}
	source := cfg.ChallengePoolPath
	if source == "" {
		source = "embedded"
	}
	slog.Info(LogMsgChallengePoolLoaded, "source", source, "templates", len(templates))
	return templates, nil
}
