package main

import (
	"context"
	"flag"
	"log"

	"github.com/osse101/Milestone_Go/internal/bootstrap"
	"github.com/osse101/Milestone_Go/internal/config"
	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/store"
)

// reset wipes all progress for the configured STORE_BACKEND
func main() {
	force := flag.Bool("force", false, "skip the confirmation guard")
	flag.Parse()

	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitLogger(bootstrap.LoggerConfig(cfg))

	if cfg.StoreBackend == store.BackendMemory {
		log.Println("STORE_BACKEND is memory, nothing persisted to reset")
		return
	}
	if !*force {
		log.Fatalf("Refusing to clear the %s store without -force", cfg.StoreBackend)
	}

	ctx := context.Background()
	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open progress store: %v", err)
	}
	defer storage.Close()

	log.Printf("Clearing %s progress store...\n", cfg.StoreBackend)
	if err := storage.Store.Clear(ctx); err != nil {
		log.Fatalf("Failed to clear progress store: %v", err)
	}

	if storage.EventLog != nil {
		log.Println("Event log rows are kept; they age out through EVENTLOG_RETENTION_DAYS")
	}

	log.Println("✅ Progress reset complete!")
}
