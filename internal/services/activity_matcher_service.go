package services

import (
	"context"
	"strings"

	"tripweaver/internal/models/response_models"
)

type ActivityPhotoMatcherInterface interface {
	// ResolveForActivity tries a ranked list of query candidates for a single
	// activity and returns the first non-empty photo set. An empty result is
	// not an error; the caller falls back to a pooled destination photo.
	ResolveForActivity(ctx context.Context, activityName, locationHint, destination string) []response_models.Photo
}

type ActivityPhotoMatcher struct {
	resolver PhotoResolverInterface
}

func NewActivityPhotoMatcher(resolver PhotoResolverInterface) ActivityPhotoMatcherInterface {
	return &ActivityPhotoMatcher{resolver: resolver}
}

const photosPerActivity = 2

func (m *ActivityPhotoMatcher) ResolveForActivity(ctx context.Context, activityName, locationHint, destination string) []response_models.Photo {
	category := categoryForActivity(activityName)

	var candidates []string
	hint := strings.TrimSpace(locationHint)
	if len(hint) > 3 {
		candidates = append(candidates, hint)
	}
	candidates = append(candidates,
		category+" "+destination,
		activityName+" "+destination,
		destination,
	)

	for _, candidate := range candidates {
		if photos := m.resolver.Resolve(ctx, candidate, destination, photosPerActivity); len(photos) > 0 {
			return photos
		}
	}
	return nil
}

// categoryKeywords maps activity keywords to a photo-search category,
// checked in order so the more specific buckets win.
var categoryKeywords = []struct {
	keywords []string
	category string
}{
	{[]string{"museum", "gallery", "exhibition"}, "museum"},
	{[]string{"temple", "shrine", "church", "cathedral", "mosque", "pagoda"}, "religious site"},
	{[]string{"market", "bazaar", "shopping", "mall"}, "market"},
	{[]string{"park", "garden", "botanical"}, "park"},
	{[]string{"food", "restaurant", "cafe", "dinner", "lunch", "breakfast", "cuisine", "street food"}, "restaurant food"},
	{[]string{"beach", "coast", "seaside", "island"}, "beach"},
	{[]string{"mountain", "hiking", "trek", "trail", "viewpoint"}, "mountain outdoor"},
	{[]string{"palace", "castle", "fort", "citadel", "monument"}, "historic monument"},
}

func categoryForActivity(activityName string) string {
	lower := strings.ToLower(activityName)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return "tourist attraction"
}
