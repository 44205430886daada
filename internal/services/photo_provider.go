package services

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"tripweaver/internal/models/response_models"
)

// PhotoProviderInterface is the capability each image-search backend implements.
// Search fails soft: credential problems, HTTP errors, timeouts and malformed
// payloads all yield an empty slice plus a non-fatal error for observability.
// Callers must never treat a provider error as a failure of their own.
type PhotoProviderInterface interface {
	ID() string
	Search(ctx context.Context, query string, count int) ([]response_models.Photo, error)
}

const providerTimeout = 5 * time.Second

func newProviderHTTPClient() *http.Client {
	return &http.Client{Timeout: providerTimeout}
}

// newHourlyBudget caps a provider's outbound volume conservatively below its
// documented quota. When exhausted, Search short-circuits to an empty result
// without attempting the network call.
func newHourlyBudget(callsPerHour int) *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Hour/time.Duration(callsPerHour)), callsPerHour)
}
