package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Milestone_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	runs atomic.Int32
	Done chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.runs.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(context.Background(), 1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule("test", 10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, int(job.runs.Load()), 2)
}

func TestScheduler_IgnoresNonPositiveInterval(t *testing.T) {
	pool := worker.NewPool(context.Background(), 1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 1)}
	sched.Schedule("never", 0, job)
	sched.Stop()
	sched.Stop()

	assert.Equal(t, int32(0), job.runs.Load())
}
