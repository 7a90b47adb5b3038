package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/osse101/Milestone_Go/internal/bootstrap"
	"github.com/osse101/Milestone_Go/internal/config"
)

type CheckStoreCommand struct{}

func (c *CheckStoreCommand) Name() string {
	return "check-store"
}

func (c *CheckStoreCommand) Description() string {
	return "Open the configured progress store and wait until it answers a ping"
}

func (c *CheckStoreCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	retries := fs.Int("retries", 30, "Number of ping attempts")
	interval := fs.Duration("interval", 2*time.Second, "Delay between attempts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Parse()
	if err != nil {
		return err
	}
	PrintHeader(fmt.Sprintf("Checking %s store...", cfg.StoreBackend))

	ctx := context.Background()
	var lastErr error
	for attempt := 1; attempt <= *retries; attempt++ {
		lastErr = pingStore(ctx, cfg)
		if lastErr == nil {
			PrintSuccess("Store is ready")
			return nil
		}
		fmt.Printf("Store not ready (%d/%d): %v\n", attempt, *retries, lastErr)
		time.Sleep(*interval)
	}
	return fmt.Errorf("store failed to become ready after %d attempts: %w", *retries, lastErr)
}

func pingStore(ctx context.Context, cfg *config.Config) error {
	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	if storage.Pinger == nil {
		return nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return storage.Pinger.Ping(pingCtx)
}
