package database

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	_ "modernc.org/sqlite"

	"github.com/osse101/Milestone_Go/internal/database/migrations"
	"github.com/osse101/Milestone_Go/internal/testing/leaktest"
)

var testConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testConnString, terminate = startPostgres(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func startPostgres(ctx context.Context) (string, func()) {
	// testcontainers panics when Docker is unavailable
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic starting postgres: %v\n", r)
		}
	}()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("milestone"),
		postgres.WithUsername("milestone"),
		postgres.WithPassword("milestone"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: postgres container unavailable: %v\n", err)
		return "", nil
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return "", nil
	}
	return connStr, func() { _ = container.Terminate(ctx) }
}

func requirePostgres(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	if testConnString == "" {
		t.Skip("postgres not available")
	}
}

func TestNewPool_AppliesLimits(t *testing.T) {
	requirePostgres(t)

	pool, err := NewPool(context.Background(), testConnString, 4, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	cfg := pool.Config()
	assert.Equal(t, int32(4), cfg.MaxConns)
	assert.Equal(t, int32(DefaultMinConnections), cfg.MinConns)
	assert.Equal(t, time.Minute, cfg.MaxConnIdleTime)
	assert.Equal(t, 5*time.Minute, cfg.MaxConnLifetime)
}

func TestNewPool_ExhaustedPoolBlocksUntilRelease(t *testing.T) {
	requirePostgres(t)

	pool, err := NewPool(context.Background(), testConnString, 2, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()
	first, err := pool.Acquire(ctx)
	require.NoError(t, err)
	second, err := pool.Acquire(ctx)
	require.NoError(t, err)

	shortCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = pool.Acquire(shortCtx)
	assert.Error(t, err)

	first.Release()
	third, err := pool.Acquire(ctx)
	require.NoError(t, err)
	third.Release()
	second.Release()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
}

func TestNewPool_ConcurrentQueriesReleaseConnections(t *testing.T) {
	requirePostgres(t)

	pool, err := NewPool(context.Background(), testConnString, 5, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	defer pool.Close()

	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			var got int
			if err := pool.QueryRow(context.Background(), "SELECT $1::int", n).Scan(&got); err != nil {
				t.Errorf("query %d: %v", n, err)
				return
			}
			if got != n {
				t.Errorf("query %d returned %d", n, got)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
	checker.Check(2)
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://%zz", 5, time.Minute, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, goose.DialectSQLite3, migrations.SQLite, migrations.SQLiteDir))

	var name string
	err = db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'progress_kv'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "progress_kv", name)

	// a second run has nothing left to apply
	require.NoError(t, Migrate(ctx, db, goose.DialectSQLite3, migrations.SQLite, migrations.SQLiteDir))
}

func TestMigrate_MissingDirectory(t *testing.T) {
	err := Migrate(context.Background(), nil, goose.DialectSQLite3, os.DirFS(t.TempDir()), "nope")
	require.Error(t, err)
}
