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

// UnsplashProvider searches the Unsplash photo API.
// Auth is a Client-ID authorization header; free tier allows 50 req/hour.
type UnsplashProvider struct {
	HTTP      *http.Client
	AccessKey string
	BaseURL   string
	budget    *rate.Limiter
}

func NewUnsplashProvider(accessKey string) *UnsplashProvider {
	return &UnsplashProvider{
		HTTP:      newProviderHTTPClient(),
		AccessKey: accessKey,
		BaseURL:   "https://api.unsplash.com",
		budget:    newHourlyBudget(40),
	}
}

func (p *UnsplashProvider) ID() string { return "unsplash" }

func (p *UnsplashProvider) Search(ctx context.Context, query string, count int) ([]response_models.Photo, error) {
	if p.AccessKey == "" || count <= 0 {
		return nil, nil
	}
	if !p.budget.Allow() {
		return nil, fmt.Errorf("unsplash hourly budget exhausted")
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", fmt.Sprintf("%d", count))
	q.Set("orientation", "landscape")

	req, err := http.NewRequestWithContext(ctx, "GET", p.BaseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("unsplash build request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+p.AccessKey)

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("unsplash bad status: %s", resp.Status)
	}

	var payload struct {
		Results []struct {
			ID             string `json:"id"`
			AltDescription string `json:"alt_description"`
			Urls           struct {
				Regular string `json:"regular"`
				Thumb   string `json:"thumb"`
			} `json:"urls"`
			User struct {
				Name  string `json:"name"`
				Links struct {
					HTML string `json:"html"`
				} `json:"links"`
			} `json:"user"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("unsplash decode: %w", err)
	}

	photos := make([]response_models.Photo, 0, len(payload.Results))
	for _, r := range payload.Results {
		if r.Urls.Regular == "" {
			continue
		}
		alt := r.AltDescription
		if alt == "" {
			alt = query
		}
		photos = append(photos, response_models.Photo{
			URL:                    r.Urls.Regular,
			ThumbnailURL:           r.Urls.Thumb,
			AltText:                alt,
			PhotographerName:       r.User.Name,
			PhotographerProfileURL: r.User.Links.HTML,
			SourceProviderID:       p.ID(),
			ProviderPhotoID:        r.ID,
		})
	}
	return photos, nil
}
