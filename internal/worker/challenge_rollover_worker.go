package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/domain"
	"github.com/osse101/Milestone_Go/internal/logger"
)

// ChallengeRefresher returns today's challenge, creating it if the day has turned over
type ChallengeRefresher interface {
	GetCurrent(ctx context.Context) domain.DailyChallenge
}

// ChallengeRolloverWorker creates the new daily challenge shortly after local midnight,
// so the challenge_created event fires even when no client is active.
type ChallengeRolloverWorker struct {
	challenges ChallengeRefresher
	clock      clock.Clock
	ctx        context.Context
	timer      *time.Timer
	shutdown   chan struct{}
	wg         sync.WaitGroup
	mu         sync.Mutex
}

// NewChallengeRolloverWorker creates a new ChallengeRolloverWorker
func NewChallengeRolloverWorker(ctx context.Context, challenges ChallengeRefresher, clk clock.Clock) *ChallengeRolloverWorker {
	return &ChallengeRolloverWorker{
		challenges: challenges,
		clock:      clk,
		ctx:        context.WithoutCancel(ctx),
		shutdown:   make(chan struct{}),
	}
}

// Start makes sure today's challenge exists and schedules the next rollover
func (w *ChallengeRolloverWorker) Start() {
	w.execute()
	w.scheduleNext()
}

// Trigger runs a rollover immediately
func (w *ChallengeRolloverWorker) Trigger() {
	logger.FromContext(w.ctx).Info(LogMsgRolloverManualTrigger)
	w.execute()
}

func (w *ChallengeRolloverWorker) scheduleNext() {
	select {
	case <-w.shutdown:
		return
	default:
	}

	duration := untilRollover(w.clock.Now())
	log := logger.FromContext(w.ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}

	// Stage 1: far from midnight, wake up shortly before it and re-plan
	if duration > RolloverStandbyThreshold {
		wait := duration - RolloverStandbyLead
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		log.Info(LogMsgRolloverStandby, "next_check_in", wait)
		return
	}

	// Stage 2: final approach
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Fired early: plan again for the remainder
		rem := untilRollover(w.clock.Now())
		if rem > RolloverJitterTolerance && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.execute()
		w.scheduleNext()
	})
	log.Info(LogMsgRolloverApproach, "rollover_in", duration)
}

func (w *ChallengeRolloverWorker) execute() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		log := logger.FromContext(w.ctx)
		log.Info(LogMsgRolloverStarting)
		ch := w.challenges.GetCurrent(w.ctx)
		log.Info(LogMsgRolloverCompleted, "challenge_id", ch.ID, "title", ch.Title)
	}()
}

// Shutdown cancels the pending timer and waits for an in-flight rollover
func (w *ChallengeRolloverWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRolloverShuttingDown)

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgRolloverShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgRolloverShutdownSlow)
		return ctx.Err()
	}
}

// untilRollover is the time from now to the next local midnight
func untilRollover(now time.Time) time.Duration {
	return clock.NextMidnight(now).Sub(now)
}
