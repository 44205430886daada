package ratelim

import (
	"sync"
	"testing"
	"time"
)

func TestIsAllowed_WindowSliding(t *testing.T) {
	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithClock(2, time.Minute, func() time.Time { return current })

	if !rl.IsAllowed("u1") {
		t.Fatal("first call should be allowed")
	}
	if !rl.IsAllowed("u1") {
		t.Fatal("second call should be allowed")
	}
	if rl.IsAllowed("u1") {
		t.Fatal("third call within window should be rejected")
	}

	// Other subjects are independent.
	if !rl.IsAllowed("u2") {
		t.Fatal("different subject should be allowed")
	}

	// Advance past the window: old entries must be pruned.
	current = current.Add(61 * time.Second)
	if !rl.IsAllowed("u1") {
		t.Fatal("call after window elapsed should be allowed")
	}
}

func TestIsAllowed_RejectionDoesNotConsume(t *testing.T) {
	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithClock(1, time.Minute, func() time.Time { return current })

	rl.IsAllowed("u1")
	for i := 0; i < 5; i++ {
		if rl.IsAllowed("u1") {
			t.Fatal("rejected call should not be admitted")
		}
	}

	// Rejected attempts must not have extended the window.
	current = current.Add(61 * time.Second)
	if !rl.IsAllowed("u1") {
		t.Fatal("window should have expired despite rejected attempts")
	}
}

func TestIsAllowed_Concurrent(t *testing.T) {
	rl := NewRateLimiter(50, time.Minute)

	var wg sync.WaitGroup
	admitted := make(chan bool, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			admitted <- rl.IsAllowed("shared")
		}()
	}
	wg.Wait()
	close(admitted)

	count := 0
	for ok := range admitted {
		if ok {
			count++
		}
	}
	if count != 50 {
		t.Fatalf("expected exactly 50 admissions, got %d", count)
	}
}
