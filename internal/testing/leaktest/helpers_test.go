package leaktest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()

	checker.Check(1)
	close(done)
}

func TestCheckNoGoroutineLeak_WaitsForStragglers(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(time.Millisecond)
			}()
		}
		wg.Wait()

		// exits shortly after fn returns
		go time.Sleep(20 * time.Millisecond)
	})
}

func TestWaitFor(t *testing.T) {
	done := make(chan struct{})
	go func() { <-done }()

	n, ok := waitFor(0, 20*time.Millisecond)
	assert.False(t, ok)
	assert.Positive(t, n)

	close(done)
}
