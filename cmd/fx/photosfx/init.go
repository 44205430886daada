package photosfx

import (
	"log"
	"math/rand"
	"os"
	"time"

	"go.uber.org/fx"

	"tripweaver/internal/services"
)

var Module = fx.Provide(
	ProvidePhotoProviders,
	ProvidePhotoResolver,
	ProvideActivityPhotoMatcher,
)

// ProvidePhotoProviders assembles the configured providers in preference
// order. Providers without credentials are skipped, not errors.
func ProvidePhotoProviders() []services.PhotoProviderInterface {
	var providers []services.PhotoProviderInterface

	if key := os.Getenv("UNSPLASH_ACCESS_KEY"); key != "" {
		providers = append(providers, services.NewUnsplashProvider(key))
	}
	if key := os.Getenv("PEXELS_API_KEY"); key != "" {
		providers = append(providers, services.NewPexelsProvider(key))
	}
	if key := os.Getenv("PIXABAY_API_KEY"); key != "" {
		providers = append(providers, services.NewPixabayProvider(key))
	}

	if len(providers) == 0 {
		log.Printf("no photo providers configured, itineraries will have no photos")
	} else {
		log.Printf("configured %d photo provider(s)", len(providers))
	}
	return providers
}

func ProvidePhotoResolver(providers []services.PhotoProviderInterface) services.PhotoResolverInterface {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return services.NewPhotoResolver(providers, rng)
}

func ProvideActivityPhotoMatcher(resolver services.PhotoResolverInterface) services.ActivityPhotoMatcherInterface {
	return services.NewActivityPhotoMatcher(resolver)
}
