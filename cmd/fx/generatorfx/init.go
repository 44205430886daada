package generatorfx

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"

	"tripweaver/internal/services"
	"tripweaver/pkg/ratelim"
	"tripweaver/pkg/utils"
)

var Module = fx.Provide(
	ProvideRateLimiter,
	ProvideTextGenerator,
	ProvideDraftService,
)

// ProvideRateLimiter builds the per-subject generative-call budget.
func ProvideRateLimiter() *ratelim.RateLimiter {
	maxRequests := getEnvInt("AI_RATE_LIMIT", 5)
	windowSec := getEnvInt("AI_RATE_WINDOW_SECONDS", 60)
	return ratelim.NewRateLimiter(maxRequests, time.Duration(windowSec)*time.Second)
}

// ProvideTextGenerator creates the generative client selected by
// TEXT_PROVIDER and registers its shutdown. A missing API key is not an
// error: the draft service then runs on its mock generator alone.
func ProvideTextGenerator(lc fx.Lifecycle) utils.TextGeneratorInterface {
	provider := getEnvWithDefault("TEXT_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
	}

	if apiKey == "" {
		log.Printf("no %s API key configured, itineraries will use the offline generator", provider)
		return nil
	}

	client, err := utils.NewTextGenerator(provider, apiKey, model)
	if err != nil {
		log.Printf("failed to initialize %s client: %v, using offline generator", provider, err)
		return nil
	}
	log.Printf("initialized %s text generator", provider)
	appendGeneratorShutdown(lc, client)
	return client
}

func appendGeneratorShutdown(lc fx.Lifecycle, generator utils.TextGeneratorInterface) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("Closing text generator")
			return generator.Close()
		},
	})
}

func ProvideDraftService(generator utils.TextGeneratorInterface, limiter *ratelim.RateLimiter) services.DraftServiceInterface {
	return services.NewDraftService(generator, limiter)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
