package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/pkg/utils"
)

type stubEnrichment struct {
	itinerary *response_models.EnrichedItinerary
	err       error
	gotReq    request_models.TripRequest
}

func (s *stubEnrichment) PlanItinerary(ctx context.Context, subjectID string, req request_models.TripRequest) (*response_models.EnrichedItinerary, error) {
	s.gotReq = req
	return s.itinerary, s.err
}

func (s *stubEnrichment) Enrich(ctx context.Context, draft *response_models.ItineraryDraft, req request_models.TripRequest) *response_models.EnrichedItinerary {
	return s.itinerary
}

func performRequest(t *testing.T, stub *stubEnrichment, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/itineraries", NewItineraryController(stub).CreateItineraryHandler)

	req := httptest.NewRequest("POST", "/itineraries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateItinerary_Success(t *testing.T) {
	stub := &stubEnrichment{itinerary: &response_models.EnrichedItinerary{
		ID:          "test-id",
		Destination: "Paris",
		HasPhotos:   true,
	}}

	recorder := performRequest(t, stub, `{
		"destination": "Paris",
		"start_date": "2024-06-01",
		"end_date": "2024-06-03",
		"interests": ["culture"],
		"budget_tier": "mid-range",
		"pace_tier": "active"
	}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var resp struct {
		Status string                            `json:"status"`
		Data   response_models.EnrichedItinerary `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != "success" || resp.Data.ID != "test-id" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if stub.gotReq.Destination != "Paris" || stub.gotReq.PaceTier != request_models.PaceTierActive {
		t.Errorf("request not passed through: %+v", stub.gotReq)
	}
}

func TestCreateItinerary_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"destination": `},
		{name: "missing destination", body: `{"start_date":"2024-06-01","end_date":"2024-06-02"}`},
		{name: "bad start date", body: `{"destination":"Paris","start_date":"June 1st","end_date":"2024-06-02"}`},
		{name: "end before start", body: `{"destination":"Paris","start_date":"2024-06-05","end_date":"2024-06-01"}`},
		{name: "unknown budget tier", body: `{"destination":"Paris","start_date":"2024-06-01","end_date":"2024-06-02","budget_tier":"lavish"}`},
		{name: "unknown pace tier", body: `{"destination":"Paris","start_date":"2024-06-01","end_date":"2024-06-02","pace_tier":"frantic"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubEnrichment{}
			recorder := performRequest(t, stub, tt.body)
			if recorder.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", recorder.Code, recorder.Body.String())
			}
			if stub.gotReq.Destination != "" {
				t.Error("pipeline must not run for invalid requests")
			}
		})
	}
}

func TestCreateItinerary_PipelineFailure(t *testing.T) {
	stub := &stubEnrichment{err: utils.ErrNoItinerary}

	recorder := performRequest(t, stub, `{"destination":"Paris","start_date":"2024-06-01","end_date":"2024-06-02"}`)
	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d: %s", recorder.Code, recorder.Body.String())
	}
}
