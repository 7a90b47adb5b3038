package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Milestone_Go/internal/logger"
	"github.com/osse101/Milestone_Go/internal/worker"
)

// Enqueuer hands jobs to a worker pool
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool Enqueuer
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The first run happens
// one interval after the call.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	log := logger.FromContext(context.Background())
	if interval <= 0 {
		log.Warn(LogMsgInvalidInterval, "job", name, "interval", interval)
		return
	}
	log.Info(LogMsgJobScheduled, "job", name, "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.pool.Enqueue(job) {
					log.Warn(LogMsgJobSkipped, "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.once.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
