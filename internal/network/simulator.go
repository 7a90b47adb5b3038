package network

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/utils"
)

// ErrClosed is returned for calls started after Shutdown
var ErrClosed = errors.New("network simulator is shut down")

// EventTracker is the slice of the analytics sink the simulator reports to
type EventTracker interface {
	TrackEvent(ctx context.Context, name domain.EventType, props domain.Properties)
	TrackError(ctx context.Context, appErr *domain.AppError)
}

// Config tunes the simulated network
type Config struct {
	Latency     time.Duration
	SuccessRate float64
}

// Simulator fakes remote API calls with a fixed latency and a random failure rate
type Simulator struct {
	analytics EventTracker
	random    utils.RandomSource
	clock     clock.Clock

	mu          sync.RWMutex
	available   bool
	latency     time.Duration
	successRate float64
	closed      bool

	wg sync.WaitGroup
}

// NewSimulator creates a Simulator with the network available. Zero values in cfg take the defaults.
func NewSimulator(analytics EventTracker, rnd utils.RandomSource, clk clock.Clock, cfg Config) *Simulator {
	if cfg.Latency <= 0 {
		cfg.Latency = DefaultLatency
	}
	if cfg.SuccessRate <= 0 || cfg.SuccessRate > 1 {
		cfg.SuccessRate = DefaultSuccessRate
	}
	return &Simulator{
		analytics:   analytics,
		random:      rnd,
		clock:       clk,
		available:   true,
		latency:     cfg.Latency,
		successRate: cfg.SuccessRate,
	}
}

// SetNetworkAvailable toggles simulated connectivity
func (s *Simulator) SetNetworkAvailable(ctx context.Context, available bool) {
	s.mu.Lock()
	s.available = available
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgAvailabilityChanged, "available", available)
	if s.analytics != nil {
		s.analytics.TrackEvent(ctx, domain.EventFeatureUsed, domain.Properties{
			domain.PropAction: domain.StringValue(domain.ActionNetworkSimulation),
			PropAvailable:     domain.BoolValue(available),
		})
	}
}

func (s *Simulator) IsNetworkAvailable() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.available
}

// SetSimulatedLatency sets the delay before every call completes. Negative values become zero.
func (s *Simulator) SetSimulatedLatency(ctx context.Context, d time.Duration) {
	d = max(d, 0)
	s.mu.Lock()
	s.latency = d
	s.mu.Unlock()
	logger.FromContext(ctx).Info(LogMsgLatencyChanged, "latency", d)
}

func (s *Simulator) Latency() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latency
}

// begin registers an in-flight call and returns the latency to apply
func (s *Simulator) begin() (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	s.wg.Add(1)
	return s.latency, nil
}

// outcome decides a finished call. A nil result means success.
func (s *Simulator) outcome(ctx context.Context, endpoint string) *domain.AppError {
	s.mu.RLock()
	available := s.available
	rate := s.successRate
	s.mu.RUnlock()

	if available && utils.Chance(s.random, rate) {
		logger.FromContext(ctx).Debug(LogMsgCallSucceeded, "endpoint", endpoint)
		return nil
	}

	message := MessageTimeout
	if !available {
		message = MessageNoNetwork
	}
	appErr := &domain.AppError{
		ID:        uuid.NewString(),
		Type:      domain.ErrorTypeNetwork,
		Message:   message,
		Timestamp: s.clock.Now(),
		Context:   map[string]string{PropEndpoint: endpoint},
	}
	logger.FromContext(ctx).Warn(LogMsgCallFailed, "endpoint", endpoint, "error", message)
	if s.analytics != nil {
		s.analytics.TrackError(ctx, appErr)
	}
	return appErr
}

// SimulateAPICall pretends to call endpoint. After the configured latency completion receives
// data on success, or the zero value and a network *domain.AppError on failure.
func SimulateAPICall[T any](ctx context.Context, s *Simulator, endpoint string, data T, completion func(T, error)) error {
	latency, err := s.begin()
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug(LogMsgCallStarted, "endpoint", endpoint, "latency", latency)
	if s.analytics != nil {
		s.analytics.TrackEvent(ctx, domain.EventFeatureUsed, domain.Properties{
			domain.PropAction: domain.StringValue(domain.ActionAPICall),
			PropEndpoint:      domain.StringValue(endpoint),
		})
	}

	bg := context.WithoutCancel(ctx)
	time.AfterFunc(latency, func() {
		defer s.wg.Done()
		if appErr := s.outcome(bg, endpoint); appErr != nil {
			var zero T
			if completion != nil {
				completion(zero, appErr)
			}
			return
		}
		if completion != nil {
			completion(data, nil)
		}
	})
	return nil
}

// Call runs SimulateAPICall and waits for its result or for ctx to end
func Call[T any](ctx context.Context, s *Simulator, endpoint string, data T) (T, error) {
	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)

	var zero T
	if err := SimulateAPICall(ctx, s, endpoint, data, func(v T, err error) {
		done <- result{value: v, err: err}
	}); err != nil {
		return zero, err
	}

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Shutdown rejects new calls and waits for in-flight ones
func (s *Simulator) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}
