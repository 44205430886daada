package response_models

// Photo is the normalized record every provider maps its native response into.
// Two photos are considered the same when their URL matches.
type Photo struct {
	URL                    string `json:"url"`
	ThumbnailURL           string `json:"thumbnail_url"`
	AltText                string `json:"alt_text"`
	PhotographerName       string `json:"photographer_name"`
	PhotographerProfileURL string `json:"photographer_profile_url,omitempty"`
	SourceProviderID       string `json:"source_provider_id"`
	ProviderPhotoID        string `json:"provider_photo_id"`
}
