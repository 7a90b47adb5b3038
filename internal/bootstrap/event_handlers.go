package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Milestone_Go/internal/event"
	"github.com/osse101/Milestone_Go/internal/eventlog"
	"github.com/osse101/Milestone_Go/internal/metrics"
	"github.com/osse101/Milestone_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
// EventLogService and SSEHub may be nil.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
	SSEHub          *sse.Hub
}

// RegisterEventHandlers sets up all bus subscribers:
// the metrics collector, the event log (postgres only) and the SSE bridge.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.EventLogService != nil {
		if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
		}
		slog.Info(LogMsgEventLoggerInitialized)
	} else {
		slog.Info(LogMsgEventLogDisabled)
	}

	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	return nil
}
