package response_models

import "time"

// ActivitySlot is a single sanitized activity within a day.
type ActivitySlot struct {
	Time     string `json:"time"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Duration string `json:"duration"`
	Cost     int    `json:"cost"`
	Notes    string `json:"notes"`
}

// DayPlan holds one calendar day of activities. The date is always derived
// from the trip start date plus the day index, never from generative output.
type DayPlan struct {
	Date       string         `json:"date"`
	Activities []ActivitySlot `json:"activities"`
}

// ItineraryDraft is the canonical sanitized plan, one DayPlan per requested day.
type ItineraryDraft struct {
	Destination string    `json:"destination"`
	Days        []DayPlan `json:"days"`
}

// EnrichedActivity is an ActivitySlot with its resolved photo set.
// MainPhoto is the first resolved photo, or a pooled destination photo when
// the activity got nothing of its own.
type EnrichedActivity struct {
	ActivitySlot
	Photos    []Photo `json:"photos"`
	MainPhoto *Photo  `json:"main_photo,omitempty"`
}

// EnrichedDay is a DayPlan with a representative theme image.
type EnrichedDay struct {
	Date       string             `json:"date"`
	ThemeImage *Photo             `json:"theme_image,omitempty"`
	Activities []EnrichedActivity `json:"activities"`
}

// PhotoStats aggregates photo-resolution accounting for one enrichment run.
type PhotoStats struct {
	TotalPhotoCount       int            `json:"total_photo_count"`
	GeneratedAt           time.Time      `json:"generated_at"`
	PerProviderCallCounts map[string]int `json:"per_provider_call_counts"`
	LastError             string         `json:"last_error,omitempty"`
}

// EnrichedItinerary is the pipeline's final product: the sanitized draft plus
// attached photos. HasPhotos is false when enrichment failed as a whole; the
// underlying itinerary is still intact in that case.
type EnrichedItinerary struct {
	ID          string        `json:"id"`
	Destination string        `json:"destination"`
	HeroImage   *Photo        `json:"hero_image,omitempty"`
	Days        []EnrichedDay `json:"days"`
	HasPhotos   bool          `json:"has_photos"`
	Stats       PhotoStats    `json:"photo_stats"`
}
