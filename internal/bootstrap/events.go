package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/osse101/Milestone_Go/internal/config"
	"github.com/osse101/Milestone_Go/internal/event"
)

// InitializeEventSystem builds the in-process bus and the retrying publisher every service publishes through.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	maxRetries, retryDelay, deadLetterPath := eventSettings(cfg)

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)
	return bus, publisher, nil
}

// eventSettings fills unset publisher settings with the defaults
func eventSettings(cfg *config.Config) (int, time.Duration, string) {
	maxRetries, retryDelay, path := cfg.EventMaxRetries, cfg.EventRetryDelay, cfg.EventDeadLetterPath
	if maxRetries == 0 {
		maxRetries = EventDefaultMaxRetries
	}
	if retryDelay == 0 {
		retryDelay = EventDefaultRetryDelay
	}
	if path == "" {
		path = EventDefaultDeadLetterPath
	}
	return maxRetries, retryDelay, path
}
