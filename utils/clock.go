package utils

import (
	"sync"
	"time"
)

// Clock abstracts time.Now so services can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	Fixed time.Time
}

func (fc FixedClock) Now() time.Time {
	return fc.Fixed
}

// SteppingClock advances by Step on every call.
type SteppingClock struct {
	mu      sync.Mutex
	Current time.Time
	Step    time.Duration
}

func (sc *SteppingClock) Now() time.Time {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	now := sc.Current
	sc.Current = sc.Current.Add(sc.Step)
	return now
}
