package ratelim

import (
	"sync"
	"time"
)

// RateLimiter is a sliding-window admission controller keyed by subject id.
// State is local to one process; limits are not honored across instances.
type RateLimiter struct {
	maxRequests int
	window      time.Duration
	now         func() time.Time

	mu      sync.Mutex
	windows map[string][]time.Time
}

// NewRateLimiter allows up to maxRequests admissions per subject within the
// trailing window.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		windows:     make(map[string][]time.Time),
	}
}

// NewRateLimiterWithClock is NewRateLimiter with an injectable clock so tests
// can fast-forward time instead of sleeping.
func NewRateLimiterWithClock(maxRequests int, window time.Duration, now func() time.Time) *RateLimiter {
	rl := NewRateLimiter(maxRequests, window)
	rl.now = now
	return rl
}

// IsAllowed reports whether the subject may proceed and, if so, records the
// admission. Entries older than the window are pruned lazily on each check.
// The check and the append happen under one lock so concurrent calls for the
// same subject cannot over-admit.
func (rl *RateLimiter) IsAllowed(subjectID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	recent := rl.windows[subjectID][:0]
	for _, ts := range rl.windows[subjectID] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= rl.maxRequests {
		rl.windows[subjectID] = recent
		return false
	}

	rl.windows[subjectID] = append(recent, now)
	return true
}
