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

// PexelsProvider searches the Pexels photo API.
// Auth is the raw API key in the Authorization header; free tier allows
// 200 req/hour.
type PexelsProvider struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
	budget  *rate.Limiter
}

func NewPexelsProvider(apiKey string) *PexelsProvider {
	return &PexelsProvider{
		HTTP:    newProviderHTTPClient(),
		APIKey:  apiKey,
		BaseURL: "https://api.pexels.com",
		budget:  newHourlyBudget(150),
	}
}

func (p *PexelsProvider) ID() string { return "pexels" }

func (p *PexelsProvider) Search(ctx context.Context, query string, count int) ([]response_models.Photo, error) {
	if p.APIKey == "" || count <= 0 {
		return nil, nil
	}
	if !p.budget.Allow() {
		return nil, fmt.Errorf("pexels hourly budget exhausted")
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", fmt.Sprintf("%d", count))

	req, err := http.NewRequestWithContext(ctx, "GET", p.BaseURL+"/v1/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("pexels build request: %w", err)
	}
	req.Header.Set("Authorization", p.APIKey)

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("pexels bad status: %s", resp.Status)
	}

	var payload struct {
		Photos []struct {
			ID              int64  `json:"id"`
			Alt             string `json:"alt"`
			Photographer    string `json:"photographer"`
			PhotographerURL string `json:"photographer_url"`
			Src             struct {
				Large string `json:"large"`
				Tiny  string `json:"tiny"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("pexels decode: %w", err)
	}

	photos := make([]response_models.Photo, 0, len(payload.Photos))
	for _, r := range payload.Photos {
		if r.Src.Large == "" {
			continue
		}
		alt := r.Alt
		if alt == "" {
			alt = query
		}
		photos = append(photos, response_models.Photo{
			URL:                    r.Src.Large,
			ThumbnailURL:           r.Src.Tiny,
			AltText:                alt,
			PhotographerName:       r.Photographer,
			PhotographerProfileURL: r.PhotographerURL,
			SourceProviderID:       p.ID(),
			ProviderPhotoID:        fmt.Sprintf("%d", r.ID),
		})
	}
	return photos, nil
}
