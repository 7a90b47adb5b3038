package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Milestone_Go/internal/logger"
)

type retryEntry struct {
	event       Event
	attempts    int
	lastError   error
	nextAttempt time.Time
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter file.
// The first attempt is synchronous; failures are retried with exponential backoff
// on a single worker goroutine so callers are never blocked by a slow subscriber.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher starts the retry worker and opens the dead-letter file
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// PublishWithRetry publishes the event, queuing it for retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := p.bus.Publish(ctx, evt)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", evt.Type,
		"error", err)

	if p.maxRetries <= 0 || p.isShuttingDown() {
		p.writeDeadLetter(evt, 1, err)
		return
	}

	p.enqueue(retryEntry{
		event:       evt,
		attempts:    1,
		lastError:   err,
		nextAttempt: time.Now().Add(CalculateRetryDelay(p.retryDelay, 1)),
	})
}

// Publish implements Publisher. Delivery failures are handled in the background,
// so it always returns nil.
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	p.PublishWithRetry(ctx, evt)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		logger.FromContext(context.Background()).Error(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		p.writeDeadLetter(entry.event, entry.attempts, entry.lastError)
	}
}

func (p *ResilientPublisher) isShuttingDown() bool {
	select {
	case <-p.shutdown:
		return true
	default:
		return false
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.process(entry)
		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

func (p *ResilientPublisher) process(entry retryEntry) {
	if wait := time.Until(entry.nextAttempt); wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-p.shutdown:
			timer.Stop()
			p.finalAttempt(entry)
			return
		}
	}

	ctx := context.Background()
	log := logger.FromContext(ctx)

	err := p.bus.Publish(ctx, entry.event)
	entry.attempts++
	if err == nil {
		log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempts", entry.attempts)
		return
	}
	entry.lastError = err

	// attempts counts the initial publish, so maxRetries retries means maxRetries+1 attempts
	if entry.attempts > p.maxRetries {
		log.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempts, "error", err)
		p.writeDeadLetter(entry.event, entry.attempts, err)
		return
	}

	delay := CalculateRetryDelay(p.retryDelay, entry.attempts)
	log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempts", entry.attempts, "next_delay", delay)
	entry.nextAttempt = time.Now().Add(delay)
	p.enqueue(entry)
}

// finalAttempt makes one last delivery attempt during shutdown
func (p *ResilientPublisher) finalAttempt(entry retryEntry) {
	if err := p.bus.Publish(context.Background(), entry.event); err != nil {
		p.writeDeadLetter(entry.event, entry.attempts+1, err)
	}
}

func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			p.finalAttempt(entry)
			drained++
		default:
			if drained > 0 {
				logger.FromContext(context.Background()).Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(evt Event, attempts int, err error) {
	if p.deadLetter == nil {
		return
	}
	if werr := p.deadLetter.Write(evt, attempts, err); werr != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "event_type", evt.Type, "error", werr)
	}
}

// Shutdown stops the retry worker after a final delivery attempt for queued events
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if p.deadLetter != nil {
			return p.deadLetter.Close()
		}
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
