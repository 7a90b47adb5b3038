package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Milestone_Go/internal/testing/leaktest"
)

type countingJob struct {
	executed *int32
	err      error
}

func (j *countingJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

type blockingJob struct {
	release chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	<-j.release
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(context.Background(), 2, 10)
	pool.Start()

	job := &countingJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(&countingJob{executed: &executed, err: errors.New("boom")}))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, 5*time.Millisecond)

	pool.Stop()
}

func TestPool_EnqueueFull(t *testing.T) {
	pool := NewPool(context.Background(), 1, 1)
	pool.Start()

	block := &blockingJob{release: make(chan struct{})}
	assert.True(t, pool.Enqueue(block))
	// wait for the worker to pick up the blocking job so the queue slot is free
	assert.Eventually(t, func() bool { return len(pool.jobQueue) == 0 }, time.Second, time.Millisecond)

	var executed int32
	assert.True(t, pool.Enqueue(&countingJob{executed: &executed}))
	assert.False(t, pool.Enqueue(&countingJob{executed: &executed}), "queue of one is already full")

	close(block.release)
	pool.Stop()
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(context.Background(), 1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	var executed int32
	assert.False(t, pool.Enqueue(&countingJob{executed: &executed}))
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(context.Background(), 4, 4)
		pool.Start()
		pool.Stop()
	})
}
