package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Milestone_Go/internal/event"
	"github.com/osse101/Milestone_Go/internal/scheduler"
	"github.com/osse101/Milestone_Go/internal/server"
	"github.com/osse101/Milestone_Go/internal/sse"
	"github.com/osse101/Milestone_Go/internal/worker"
)

type shutdownableService interface {
	Shutdown(context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Every field except ResilientPublisher may be nil.
type ShutdownComponents struct {
	Server             *server.Server
	Subscription       shutdownableService
	Network            shutdownableService
	RolloverWorker     *worker.ChallengeRolloverWorker
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	SSEHub             *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
}

// GracefulShutdown stops components in dependency order:
// 1. SSE hub and HTTP server (stop accepting new requests)
// 2. Workers, in-flight purchases and simulated API calls
// 3. Event publisher (flush pending events)
// 4. Progress store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// open event streams would otherwise hold the server until ctx expires
	if components.SSEHub != nil {
		components.SSEHub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.RolloverWorker != nil {
		shutdownService(ctx, ServiceNameChallengeRollover, components.RolloverWorker)
	}
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	// purchases still running write through the store and publish events
	if components.Subscription != nil {
		shutdownService(ctx, ServiceNameSubscription, components.Subscription)
	}
	// a failing simulated call reports through analytics once its latency elapses
	if components.Network != nil {
		shutdownService(ctx, ServiceNameNetwork, components.Network)
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	if components.Storage != nil {
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
