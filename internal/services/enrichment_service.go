package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/pkg/utils"
)

type EnrichmentServiceInterface interface {
	// PlanItinerary runs the full pipeline: draft generation, sanitization
	// and photo enrichment. The only error it can return is ErrNoItinerary.
	PlanItinerary(ctx context.Context, subjectID string, req request_models.TripRequest) (*response_models.EnrichedItinerary, error)
	// Enrich attaches hero, theme and activity photos to a sanitized draft.
	// It never fails: on any internal error the draft is returned unchanged
	// with HasPhotos=false and an error marker in the stats.
	Enrich(ctx context.Context, draft *response_models.ItineraryDraft, req request_models.TripRequest) *response_models.EnrichedItinerary
}

type EnrichmentService struct {
	drafts        DraftServiceInterface
	sanitizer     SanitizerServiceInterface
	resolver      PhotoResolverInterface
	matcher       ActivityPhotoMatcherInterface
	maxConcurrent int
}

// maxConcurrent bounds simultaneous per-activity photo resolutions; each of
// those still fans out to all providers internally, so an unbounded batch
// would multiply outbound calls past any provider quota.
func NewEnrichmentService(
	drafts DraftServiceInterface,
	sanitizer SanitizerServiceInterface,
	resolver PhotoResolverInterface,
	matcher ActivityPhotoMatcherInterface,
	maxConcurrent int,
) EnrichmentServiceInterface {
	if maxConcurrent < 1 {
		maxConcurrent = 4
	}
	return &EnrichmentService{
		drafts:        drafts,
		sanitizer:     sanitizer,
		resolver:      resolver,
		matcher:       matcher,
		maxConcurrent: maxConcurrent,
	}
}

func (s *EnrichmentService) PlanItinerary(ctx context.Context, subjectID string, req request_models.TripRequest) (*response_models.EnrichedItinerary, error) {
	raw := s.drafts.GenerateDraft(ctx, subjectID, req)

	draft, err := s.sanitizer.SanitizeDraft(raw, req)
	if err != nil || draft == nil || len(draft.Days) == 0 {
		// The generator already fell back to the mock path internally, so an
		// unusable draft here means neither path produced anything.
		log.Printf("no usable draft for %s: %v", req.Destination, err)
		return nil, utils.ErrNoItinerary
	}

	return s.Enrich(ctx, draft, req), nil
}

func (s *EnrichmentService) Enrich(ctx context.Context, draft *response_models.ItineraryDraft, req request_models.TripRequest) (out *response_models.EnrichedItinerary) {
	out = baseEnriched(draft)

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("photo enrichment failed: %v", rec)
			out = baseEnriched(draft)
			out.Stats.GeneratedAt = time.Now()
			out.Stats.LastError = fmt.Sprintf("enrichment failed: %v", rec)
		}
	}()

	// Per-run collector: the resolver is shared across requests, so the
	// counts for this itinerary's stats travel on the context instead.
	stats := newRunStats()
	ctx = withRunStats(ctx, stats)

	destination := draft.Destination

	out.HeroImage = s.resolveHeroImage(ctx, destination)

	// Destination-level pool for activities that resolve nothing of their
	// own; fetched once, reused round-robin, never re-fetched.
	pool := s.resolver.Resolve(ctx, destination+" travel", destination, 6)

	for di := range out.Days {
		if len(out.Days[di].Activities) == 0 {
			continue
		}
		category := categoryForActivity(out.Days[di].Activities[0].Name)
		if theme := s.resolver.Resolve(ctx, category+" "+destination, destination, 1); len(theme) > 0 {
			out.Days[di].ThemeImage = &theme[0]
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)
	for di := range out.Days {
		for ai := range out.Days[di].Activities {
			activity := &out.Days[di].Activities[ai]
			g.Go(func() error {
				activity.Photos = s.matcher.ResolveForActivity(gctx, activity.Name, activity.Location, destination)
				return nil
			})
		}
	}
	g.Wait()

	// Day and activity order were preserved by indexed writes above; now
	// assign main photos, using the pool for photo-less activities.
	poolIdx := 0
	total := 0
	if out.HeroImage != nil {
		total++
	}
	for di := range out.Days {
		if out.Days[di].ThemeImage != nil {
			total++
		}
		for ai := range out.Days[di].Activities {
			activity := &out.Days[di].Activities[ai]
			if len(activity.Photos) > 0 {
				activity.MainPhoto = &activity.Photos[0]
				total += len(activity.Photos)
			} else if len(pool) > 0 {
				activity.MainPhoto = &pool[poolIdx%len(pool)]
				poolIdx++
				total++
			}
		}
	}

	counts, lastErr := stats.snapshot()
	out.HasPhotos = total > 0
	out.Stats = response_models.PhotoStats{
		TotalPhotoCount:       total,
		GeneratedAt:           time.Now(),
		PerProviderCallCounts: counts,
		LastError:             lastErr,
	}
	return out
}

// resolveHeroImage tries destination-level query variants in order until one
// yields a result.
func (s *EnrichmentService) resolveHeroImage(ctx context.Context, destination string) *response_models.Photo {
	variants := []string{
		destination + " skyline landmark",
		destination + " aerial view",
		destination + " tourism",
		destination,
	}
	for _, query := range variants {
		if photos := s.resolver.Resolve(ctx, query, destination, 1); len(photos) > 0 {
			return &photos[0]
		}
	}
	return nil
}

// baseEnriched wraps a sanitized draft without any photo data, preserving
// day and activity order.
func baseEnriched(draft *response_models.ItineraryDraft) *response_models.EnrichedItinerary {
	days := make([]response_models.EnrichedDay, len(draft.Days))
	for i, day := range draft.Days {
		activities := make([]response_models.EnrichedActivity, len(day.Activities))
		for j, slot := range day.Activities {
			activities[j] = response_models.EnrichedActivity{ActivitySlot: slot}
		}
		days[i] = response_models.EnrichedDay{Date: day.Date, Activities: activities}
	}
	return &response_models.EnrichedItinerary{
		ID:          uuid.New().String(),
		Destination: draft.Destination,
		Days:        days,
		HasPhotos:   false,
		Stats: response_models.PhotoStats{
			GeneratedAt:           time.Now(),
			PerProviderCallCounts: map[string]int{},
		},
	}
}
