package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"tripweaver/internal/models/response_models"
)

// PixabayProvider searches the Pixabay image API.
// Auth is a key query parameter; the documented ceiling is 100 req/minute,
// capped here well below that.
type PixabayProvider struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
	budget  *rate.Limiter
}

func NewPixabayProvider(apiKey string) *PixabayProvider {
	return &PixabayProvider{
		HTTP:    newProviderHTTPClient(),
		APIKey:  apiKey,
		BaseURL: "https://pixabay.com",
		budget:  newHourlyBudget(300),
	}
}

func (p *PixabayProvider) ID() string { return "pixabay" }

func (p *PixabayProvider) Search(ctx context.Context, query string, count int) ([]response_models.Photo, error) {
	if p.APIKey == "" || count <= 0 {
		return nil, nil
	}
	if !p.budget.Allow() {
		return nil, fmt.Errorf("pixabay hourly budget exhausted")
	}

	// Pixabay rejects per_page below 3.
	perPage := count
	if perPage < 3 {
		perPage = 3
	}

	q := url.Values{}
	q.Set("key", p.APIKey)
	q.Set("q", query)
	q.Set("per_page", fmt.Sprintf("%d", perPage))
	q.Set("image_type", "photo")
	q.Set("safesearch", "true")

	req, err := http.NewRequestWithContext(ctx, "GET", p.BaseURL+"/api/?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("pixabay build request: %w", err)
	}

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pixabay http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("pixabay bad status: %s", resp.Status)
	}

	var payload struct {
		Hits []struct {
			ID           int64  `json:"id"`
			WebformatURL string `json:"webformatURL"`
			PreviewURL   string `json:"previewURL"`
			Tags         string `json:"tags"`
			User         string `json:"user"`
			UserID       int64  `json:"user_id"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("pixabay decode: %w", err)
	}

	photos := make([]response_models.Photo, 0, count)
	for _, r := range payload.Hits {
		if len(photos) >= count {
			break
		}
		if r.WebformatURL == "" {
			continue
		}
		alt := r.Tags
		if alt == "" {
			alt = query
		}
		photos = append(photos, response_models.Photo{
			URL:                    r.WebformatURL,
			ThumbnailURL:           r.PreviewURL,
			AltText:                alt,
			PhotographerName:       r.User,
			PhotographerProfileURL: fmt.Sprintf("https://pixabay.com/users/%s-%d/", r.User, r.UserID),
			SourceProviderID:       p.ID(),
			ProviderPhotoID:        fmt.Sprintf("%d", r.ID),
		})
	}
	return photos, nil
}
