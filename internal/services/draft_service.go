package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/pkg/ratelim"
	"tripweaver/pkg/utils"
)

type DraftServiceInterface interface {
	// GenerateDraft produces an unsanitized multi-day plan. It never fails:
	// when the generative provider is unconfigured, rate limited, or returns
	// an unusable response, the deterministic mock generator takes over.
	GenerateDraft(ctx context.Context, subjectID string, req request_models.TripRequest) *response_models.RawDraft
}

type DraftService struct {
	generator utils.TextGeneratorInterface // nil when unconfigured
	limiter   *ratelim.RateLimiter
}

func NewDraftService(generator utils.TextGeneratorInterface, limiter *ratelim.RateLimiter) DraftServiceInterface {
	return &DraftService{
		generator: generator,
		limiter:   limiter,
	}
}

func (s *DraftService) GenerateDraft(ctx context.Context, subjectID string, req request_models.TripRequest) *response_models.RawDraft {
	days := requestedDays(req)

	if s.generator == nil {
		return s.mockDraft(req, days)
	}
	if !s.limiter.IsAllowed(subjectID) {
		log.Printf("generative call rate limited for subject %s, using mock draft", subjectID)
		return s.mockDraft(req, days)
	}

	raw, err := s.generator.GenerateText(ctx, buildDraftPrompt(req, days))
	if err != nil {
		log.Printf("generative draft failed: %v", err)
		return s.mockDraft(req, days)
	}

	draft, err := parseRawDraft(raw)
	if err != nil {
		log.Printf("generative response unusable: %v", err)
		return s.mockDraft(req, days)
	}
	return draft
}

func requestedDays(req request_models.TripRequest) int {
	start, err1 := utils.ParseDate(req.StartDate)
	end, err2 := utils.ParseDate(req.EndDate)
	if err1 != nil || err2 != nil || end.Before(start) {
		return 1
	}
	return utils.SpanDays(start, end)
}

// buildDraftPrompt asks for exactly dayCount day-groups. Dates are deliberately
// not requested; the model hallucinates them and the sanitizer derives real
// dates from the trip start anyway.
func buildDraftPrompt(req request_models.TripRequest, dayCount int) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Create a %d-day travel itinerary for %s. Return **JSON only** matching this schema exactly:\n", dayCount, req.Destination)
	prompt.WriteString(`{"days":[{"activities":[{"time":"09:00","activity":"...","location":"...","duration":"2 hours","cost":20,"notes":"..."}]}]}`)
	prompt.WriteString("\n\nHard constraints:\n")
	fmt.Fprintf(&prompt, "- Exactly %d entries in \"days\", in trip order. Do NOT include dates.\n", dayCount)
	fmt.Fprintf(&prompt, "- %d activities per day, times formatted HH:MM between 08:00 and 21:00.\n", req.ActivitiesPerDay())
	prompt.WriteString("- cost is an integer amount, 0 for free activities.\n")

	if len(req.Interests) > 0 {
		fmt.Fprintf(&prompt, "\nTraveler interests: %s.\n", strings.Join(req.Interests, ", "))
	}
	if req.BudgetTier != "" {
		fmt.Fprintf(&prompt, "Budget tier: %s.\n", req.BudgetTier)
	}
	if req.PaceTier != "" {
		fmt.Fprintf(&prompt, "Pace: %s.\n", req.PaceTier)
	}

	prompt.WriteString("\nReturn JSON only. No comments, no markdown.")
	return prompt.String()
}

// parseRawDraft defensively unwraps a generative response: strip markdown
// fences, extract the first balanced {...} span, then parse. Any failure is
// returned so the caller can fall back to the mock generator.
func parseRawDraft(raw string) (*response_models.RawDraft, error) {
	cleaned := extractJSONObject(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var draft response_models.RawDraft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		return nil, fmt.Errorf("malformed draft JSON: %w", err)
	}
	if draft.Days == nil {
		return nil, fmt.Errorf("draft missing days array")
	}
	return &draft, nil
}

// extractJSONObject removes markdown formatting and returns the first
// balanced top-level JSON object, or "" when none exists.
func extractJSONObject(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return ""
	}
	end := findMatchingBrace(response, start)
	if end == -1 {
		return ""
	}
	return response[start : end+1]
}

// findMatchingBrace finds the matching closing brace for an opening brace,
// skipping braces inside JSON strings.
func findMatchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// mockDraft is the deterministic offline fallback: pace-driven activity
// density, synthesized times, interest-keyed names and budget-scaled costs.
func (s *DraftService) mockDraft(req request_models.TripRequest, dayCount int) *response_models.RawDraft {
	perDay := req.ActivitiesPerDay()
	multiplier := req.BudgetMultiplier()

	days := make([]response_models.RawDay, dayCount)
	for d := 0; d < dayCount; d++ {
		activities := make([]response_models.RawActivity, perDay)
		for slot := 0; slot < perDay; slot++ {
			activities[slot] = response_models.RawActivity{
				Time:     defaultSlotTime(slot),
				Activity: defaultActivityName(req.Interests, d, slot),
				Location: defaultActivityLocation(req.Destination, d, slot),
				Duration: defaultDuration(req.PaceTier),
				Cost:     defaultSlotCost(slot, multiplier),
				Notes:    "Suggested when no generated plan was available",
			}
		}
		days[d] = response_models.RawDay{Activities: activities}
	}
	return &response_models.RawDraft{Days: days}
}
