package services

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"tripweaver/internal/models/response_models"
)

type PhotoResolverInterface interface {
	// Resolve fans the query out across every configured provider and returns
	// at most count deduplicated photos. Under-fill is a normal outcome.
	// subject is the bare destination or activity term used for broadened
	// query variants; when empty the primary query is used. When the context
	// carries a run-stats collector, every provider call and the most recent
	// provider error are recorded into it.
	Resolve(ctx context.Context, primaryQuery, subject string, count int) []response_models.Photo
}

type PhotoResolver struct {
	providers []PhotoProviderInterface

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewPhotoResolver(providers []PhotoProviderInterface, rng *rand.Rand) PhotoResolverInterface {
	return &PhotoResolver{
		providers: providers,
		rng:       rng,
	}
}

func (r *PhotoResolver) Resolve(ctx context.Context, primaryQuery, subject string, count int) []response_models.Photo {
	if len(r.providers) == 0 || count <= 0 {
		return nil
	}

	stats := runStatsFrom(ctx)
	variants := buildQueryVariants(primaryQuery, subject)
	perCall := (count + len(variants) - 1) / len(variants)

	// One slot per provider×variant call; indexed writes keep merge order
	// stable at provider-registration order so dedup favors the first provider.
	results := make([][]response_models.Photo, len(r.providers)*len(variants))

	g, gctx := errgroup.WithContext(ctx)
	for pi, provider := range r.providers {
		for vi, query := range variants {
			idx := pi*len(variants) + vi
			if stats != nil {
				stats.recordCall(provider.ID())
			}
			g.Go(func() error {
				photos, err := provider.Search(gctx, query, perCall)
				if err != nil {
					log.Printf("photo provider %s failed for %q: %v", provider.ID(), query, err)
					if stats != nil {
						stats.recordError(err.Error())
					}
					return nil
				}
				results[idx] = photos
				return nil
			})
		}
	}
	g.Wait()

	seen := make(map[string]bool)
	var merged []response_models.Photo
	for _, batch := range results {
		for _, photo := range batch {
			if photo.URL == "" || seen[photo.URL] {
				continue
			}
			seen[photo.URL] = true
			merged = append(merged, photo)
		}
	}

	r.rngMu.Lock()
	r.rng.Shuffle(len(merged), func(i, j int) {
		merged[i], merged[j] = merged[j], merged[i]
	})
	r.rngMu.Unlock()

	if len(merged) > count {
		merged = merged[:count]
	}
	return merged
}

// buildQueryVariants returns the primary query plus the bare subject and a
// couple of broadened wordings, deduplicated, so one provider contributes
// multiple differently-worded attempts.
func buildQueryVariants(primaryQuery, subject string) []string {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = strings.TrimSpace(primaryQuery)
	}

	candidates := []string{
		strings.TrimSpace(primaryQuery),
		subject,
		subject + " travel",
		subject + " tourism",
	}

	seen := make(map[string]bool)
	var variants []string
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		variants = append(variants, c)
	}
	return variants
}
