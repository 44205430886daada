package services

import (
	"context"
	"sync"
)

// runStats accumulates provider activity for a single enrichment run. The
// orchestrator creates one per run and attaches it to the context so the
// resolver's concurrent provider calls can record into it; the shared resolver
// itself stays stateless across requests.
type runStats struct {
	mu        sync.Mutex
	counts    map[string]int
	lastError string
}

func newRunStats() *runStats {
	return &runStats{counts: make(map[string]int)}
}

func (s *runStats) recordCall(providerID string) {
	s.mu.Lock()
	s.counts[providerID]++
	s.mu.Unlock()
}

func (s *runStats) recordError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}

func (s *runStats) snapshot() (map[string]int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		counts[k] = v
	}
	return counts, s.lastError
}

type runStatsKey struct{}

func withRunStats(ctx context.Context, stats *runStats) context.Context {
	return context.WithValue(ctx, runStatsKey{}, stats)
}

// runStatsFrom returns the run's collector, or nil when the caller did not
// attach one; recording is then skipped.
func runStatsFrom(ctx context.Context) *runStats {
	s, _ := ctx.Value(runStatsKey{}).(*runStats)
	return s
}
