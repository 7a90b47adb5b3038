// @title Milestone API
// @version 1.0
// @description Engagement backend: achievements, daily challenges, subscription tiers and analytics.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/Milestone_Go/docs"
	"github.com/osse101/Milestone_Go/internal/achievement"
	"github.com/osse101/Milestone_Go/internal/activity"
	"github.com/osse101/Milestone_Go/internal/analytics"
	"github.com/osse101/Milestone_Go/internal/bootstrap"
	"github.com/osse101/Milestone_Go/internal/challenge"
	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/config"
	"github.com/osse101/Milestone_Go/internal/eventlog"
	"github.com/osse101/Milestone_Go/internal/middleware"
	"github.com/osse101/Milestone_Go/internal/network"
	"github.com/osse101/Milestone_Go/internal/notify"
	"github.com/osse101/Milestone_Go/internal/scheduler"
	"github.com/osse101/Milestone_Go/internal/server"
	"github.com/osse101/Milestone_Go/internal/sse"
	"github.com/osse101/Milestone_Go/internal/subscription"
	"github.com/osse101/Milestone_Go/internal/utils"
	"github.com/osse101/Milestone_Go/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}
	defer logFile.Close()

	ctx := context.Background()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize progress store", "error", err)
		os.Exit(1)
	}

	templates, err := bootstrap.LoadChallengeTemplates(cfg)
	if err != nil {
		slog.Error("Failed to load challenge templates", "error", err)
		os.Exit(1)
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	clk := clock.NewReal()
	rnd := utils.NewRandom()

	var eventLogService eventlog.Service
	if storage.EventLog != nil {
		eventLogService = eventlog.NewService(storage.EventLog, clk)
	}

	hub := sse.NewHub(clk)
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        eventBus,
		EventLogService: eventLogService,
		SSEHub:          hub,
	}); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	// Domain services
	feed := notify.NewFeed(publisher, clk)
	analyticsManager := analytics.NewManager(ctx, storage.Store, publisher, clk)
	analyticsManager.StartSession(ctx)
	achievements := achievement.NewTracker(ctx, storage.Store, analyticsManager, feed, clk)
	challenges := challenge.NewEngine(storage.Store, templates, rnd, clk, analyticsManager, achievements, feed)
	subscriptions := subscription.NewController(ctx, storage.Store, analyticsManager, achievements, feed, clk, rnd, subscription.Config{
		TrialDuration:       cfg.TrialDuration,
		PurchaseMinDelay:    cfg.PurchaseMinDelay,
		PurchaseMaxDelay:    cfg.PurchaseMaxDelay,
		PurchaseSuccessRate: cfg.PurchaseSuccessRate,
	})
	activityService := activity.NewService(storage.Store, analyticsManager, achievements, challenges, subscriptions, feed)

	var simulator *network.Simulator
	if cfg.NetworkSimulator {
		simulator = network.NewSimulator(analyticsManager, rnd, clk, network.Config{
			Latency:     cfg.NetworkLatency,
			SuccessRate: cfg.NetworkSuccessRate,
		})
	}

	// Background work
	rollover := worker.NewChallengeRolloverWorker(ctx, challenges, clk)
	rollover.Start()

	pool := worker.NewPool(ctx, cfg.WorkerCount, bootstrap.WorkerQueueSize)
	pool.Start()
	jobs := scheduler.New(pool)
	if eventLogService != nil {
		jobs.Schedule(bootstrap.EventLogCleanupJobName, cfg.EventLogCleanupInterval,
			eventlog.NewCleanupJob(eventLogService, cfg.EventLogRetentionDays))
	}

	svc := server.Services{
		Achievements:  achievements,
		Challenges:    challenges,
		Subscription:  subscriptions,
		Analytics:     analyticsManager,
		Network:       simulator,
		Activity:      activityService,
		Topics:        activityService,
		Preferences:   activityService,
		Notifications: feed,
		Store:         storage.Pinger,
		Hub:           hub,
		Engagement:    middleware.NewEngagementTracker(achievements, clk, cfg.SessionIdleTimeout),
	}
	if eventLogService != nil {
		svc.EventLog = eventLogService
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, svc)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	components := bootstrap.ShutdownComponents{
		Server:             srv,
		Subscription:       subscriptions,
		RolloverWorker:     rollover,
		Scheduler:          jobs,
		WorkerPool:         pool,
		SSEHub:             hub,
		ResilientPublisher: publisher,
		Storage:            storage,
	}
	if simulator != nil {
		components.Network = simulator
	}
	bootstrap.GracefulShutdown(shutdownCtx, components)
}
