package utils

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource is the randomness used by the challenge picker and the simulators
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// LockedRand is a RandomSource safe for concurrent use
type LockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedRand creates a LockedRand with the given seed
func NewLockedRand(seed int64) *LockedRand {
	return &LockedRand{rnd: rand.New(rand.NewSource(seed))}
}

// NewRandom creates a LockedRand seeded from the current time
func NewRandom() *LockedRand {
	return NewLockedRand(time.Now().UnixNano())
}

func (r *LockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

// RandomDuration returns a duration uniformly distributed in [min, max]
func RandomDuration(src RandomSource, min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(src.Float64()*float64(max-min))
}

// Chance reports true with probability p
func Chance(src RandomSource, p float64) bool {
	return src.Float64() < p
}

// FixedRandom always returns the same values. Useful in tests.
type FixedRandom struct {
	IntValue   int
	FloatValue float64
}

func (f FixedRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return f.IntValue % n
}

func (f FixedRandom) Float64() float64 {
	return f.FloatValue
}
