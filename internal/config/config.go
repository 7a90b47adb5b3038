package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/Milestone_Go/internal/store"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	APIKey      string `env:"API_KEY"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string `env:"VERSION" envDefault:"dev"`

	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir       string `env:"LOG_DIR" envDefault:"logs"`
	LogAddSource bool   `env:"LOG_ADD_SOURCE"`

	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Progress store
	StoreBackend string        `env:"STORE_BACKEND" envDefault:"memory"`
	SQLitePath   string        `env:"SQLITE_PATH" envDefault:"data/progress.db"`
	CacheSize    int           `env:"CACHE_SIZE" envDefault:"256"`
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Postgres
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"milestone"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	// Domain tuning
	ChallengePoolPath   string        `env:"CHALLENGE_POOL_PATH"`
	TrialDuration       time.Duration `env:"TRIAL_DURATION" envDefault:"168h"`
	PurchaseMinDelay    time.Duration `env:"PURCHASE_MIN_DELAY" envDefault:"1s"`
	PurchaseMaxDelay    time.Duration `env:"PURCHASE_MAX_DELAY" envDefault:"3s"`
	PurchaseSuccessRate float64       `env:"PURCHASE_SUCCESS_RATE" envDefault:"0.85"`
	NetworkLatency      time.Duration `env:"NETWORK_LATENCY" envDefault:"500ms"`
	NetworkSuccessRate  float64       `env:"NETWORK_SUCCESS_RATE" envDefault:"0.8"`
	NetworkSimulator    bool          `env:"NETWORK_SIMULATOR" envDefault:"true"`
	SessionIdleTimeout  time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"5m"`

	// Event system
	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" envDefault:"5"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	EventDeadLetterPath string        `env:"EVENT_DEADLETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`

	// Event log retention, postgres backend only
	EventLogRetentionDays   int           `env:"EVENTLOG_RETENTION_DAYS" envDefault:"30"`
	EventLogCleanupInterval time.Duration `env:"EVENTLOG_CLEANUP_INTERVAL" envDefault:"24h"`
	WorkerCount             int           `env:"WORKER_COUNT" envDefault:"2"`
}

// Load loads the configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads the environment without validating, for tools that only need part of it
func Parse() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	return cfg, nil
}

// Validate checks the values that would otherwise fail late at startup
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY environment variable must be set for security"))
	}
	switch c.StoreBackend {
	case store.BackendMemory, store.BackendSQLite, store.BackendPostgres:
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be one of %s, %s, %s, got %q",
			store.BackendMemory, store.BackendSQLite, store.BackendPostgres, c.StoreBackend))
	}
	if c.StoreBackend == store.BackendSQLite && c.SQLitePath == "" {
		errs = append(errs, errors.New("SQLITE_PATH must be set for the sqlite backend"))
	}
	if c.PurchaseMinDelay < 0 || c.PurchaseMaxDelay < c.PurchaseMinDelay {
		errs = append(errs, fmt.Errorf("PURCHASE_MIN_DELAY (%s) must be non-negative and not exceed PURCHASE_MAX_DELAY (%s)",
			c.PurchaseMinDelay, c.PurchaseMaxDelay))
	}
	if !validRate(c.PurchaseSuccessRate) {
		errs = append(errs, fmt.Errorf("PURCHASE_SUCCESS_RATE must be within [0,1], got %v", c.PurchaseSuccessRate))
	}
	if !validRate(c.NetworkSuccessRate) {
		errs = append(errs, fmt.Errorf("NETWORK_SUCCESS_RATE must be within [0,1], got %v", c.NetworkSuccessRate))
	}
	if c.NetworkLatency < 0 {
		errs = append(errs, fmt.Errorf("NETWORK_LATENCY must be non-negative, got %s", c.NetworkLatency))
	}
	if c.EventLogRetentionDays < 1 {
		errs = append(errs, fmt.Errorf("EVENTLOG_RETENTION_DAYS must be at least 1, got %d", c.EventLogRetentionDays))
	}

	return errors.Join(errs...)
}

func validRate(r float64) bool {
	return r >= 0 && r <= 1
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
