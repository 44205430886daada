package itineraryfx

import (
	"math/rand"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/services"
)

var Module = fx.Provide(
	ProvideSanitizerService,
	ProvideEnrichmentService,
	ProvideItineraryController,
)

func ProvideSanitizerService() services.SanitizerServiceInterface {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return services.NewSanitizerService(rng)
}

func ProvideEnrichmentService(
	drafts services.DraftServiceInterface,
	sanitizer services.SanitizerServiceInterface,
	resolver services.PhotoResolverInterface,
	matcher services.ActivityPhotoMatcherInterface,
) services.EnrichmentServiceInterface {
	maxConcurrent := 4
	if value := os.Getenv("PHOTO_CONCURRENCY"); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			maxConcurrent = n
		}
	}
	return services.NewEnrichmentService(drafts, sanitizer, resolver, matcher, maxConcurrent)
}

func ProvideItineraryController(enrichment services.EnrichmentServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(enrichment)
}
