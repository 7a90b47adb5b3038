package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/osse101/Milestone_Go/internal/clock"
	"github.com/osse101/Milestone_Go/internal/logger"
)

// TimeRecorder accumulates time spent in the app
type TimeRecorder interface {
	RecordTimeSpent(ctx context.Context, d time.Duration)
}

// EngagementTracker derives time spent from the gaps between API requests.
// A gap longer than the idle timeout starts a new session and is not counted.
type EngagementTracker struct {
	recorder TimeRecorder
	clock    clock.Clock
	idle     time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewEngagementTracker creates a new engagement tracking middleware
func NewEngagementTracker(recorder TimeRecorder, clk clock.Clock, idle time.Duration) *EngagementTracker {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	return &EngagementTracker{
		recorder: recorder,
		clock:    clk,
		idle:     idle,
	}
}

// Track wraps an HTTP handler and credits the gap since the previous request
func (e *EngagementTracker) Track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		gap, resumed := e.observe()
		log := logger.FromContext(r.Context())
		if resumed {
			log.Debug(LogMsgSessionResumed, "idle_timeout", e.idle)
		}
		if gap > 0 {
			e.recorder.RecordTimeSpent(r.Context(), gap)
			log.Debug(LogMsgEngagementRecorded, "seconds", gap.Seconds())
		}
	})
}

// observe stamps the current request and returns the countable gap.
// resumed reports a gap that exceeded the idle timeout.
func (e *EngagementTracker) observe() (gap time.Duration, resumed bool) {
	now := e.clock.Now()

	e.mu.Lock()
	defer e.mu.Unlock()

	prev := e.last
	e.last = now
	if prev.IsZero() {
		return 0, false
	}
	gap = now.Sub(prev)
	switch {
	case gap > e.idle:
		return 0, true
	case gap <= 0:
		return 0, false
	}
	return gap, false
}
