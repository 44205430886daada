package services

import (
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/pkg/utils"
)

type SanitizerServiceInterface interface {
	// SanitizeDraft converts an untrusted raw draft into the canonical
	// ItineraryDraft: exactly one DayPlan per requested day, dates derived
	// from the trip start, fields validated and under-filled days padded.
	SanitizeDraft(raw *response_models.RawDraft, req request_models.TripRequest) (*response_models.ItineraryDraft, error)
}

type SanitizerService struct {
	rng *rand.Rand
}

func NewSanitizerService(rng *rand.Rand) SanitizerServiceInterface {
	return &SanitizerService{rng: rng}
}

const maxFieldLen = 200

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

var firstNumberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

func (s *SanitizerService) SanitizeDraft(raw *response_models.RawDraft, req request_models.TripRequest) (*response_models.ItineraryDraft, error) {
	if raw == nil || raw.Days == nil {
		return nil, utils.ErrInvalidDraft
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil || end.Before(start) {
		return nil, utils.ErrInvalidInput
	}

	dayCount := utils.SpanDays(start, end)
	minActivities := req.ActivitiesPerDay()
	multiplier := req.BudgetMultiplier()

	days := make([]response_models.DayPlan, dayCount)
	for i := 0; i < dayCount; i++ {
		// The date always comes from the request; anything the generative
		// source embedded is ignored.
		plan := response_models.DayPlan{Date: utils.DateAtIndex(start, i)}

		if i < len(raw.Days) {
			for slot, activity := range raw.Days[i].Activities {
				plan.Activities = append(plan.Activities, response_models.ActivitySlot{
					Time:     s.sanitizeTime(activity.Time, slot),
					Name:     sanitizeText(activity.Activity, "Explore the area"),
					Location: sanitizeText(activity.Location, req.Destination),
					Duration: sanitizeText(activity.Duration, defaultDuration(req.PaceTier)),
					Cost:     s.sanitizeCost(activity.Cost, multiplier),
					Notes:    sanitizeText(activity.Notes, ""),
				})
			}
		}

		// Pad under-filled days so every day meets the pace-tier minimum,
		// even from a partially valid generative response.
		for slot := len(plan.Activities); slot < minActivities; slot++ {
			plan.Activities = append(plan.Activities, response_models.ActivitySlot{
				Time:     defaultSlotTime(slot),
				Name:     defaultActivityName(req.Interests, i, slot),
				Location: defaultActivityLocation(req.Destination, i, slot),
				Duration: defaultDuration(req.PaceTier),
				Cost:     defaultSlotCost(slot, multiplier),
				Notes:    "",
			})
		}

		days[i] = plan
	}

	return &response_models.ItineraryDraft{
		Destination: req.Destination,
		Days:        days,
	}, nil
}

// sanitizeTime accepts HH:MM with hours 0-23 and minutes 0-59; anything else
// is replaced by a generated slot time.
func (s *SanitizerService) sanitizeTime(raw string, slotIndex int) string {
	raw = strings.TrimSpace(raw)
	if timePattern.MatchString(raw) {
		// Normalize "9:00" to "09:00".
		if len(raw) == 4 {
			return "0" + raw
		}
		return raw
	}
	return defaultSlotTime(slotIndex)
}

func sanitizeText(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	runes := []rune(raw)
	if len(runes) > maxFieldLen {
		return string(runes[:maxFieldLen])
	}
	return raw
}

// sanitizeCost normalizes any cost representation into a nonnegative integer.
// Numbers are rounded and floored at zero. Strings are scanned for free
// markers, then an embedded amount scaled by the budget multiplier, then
// variable markers mapping to a bounded pseudo-random value; anything else
// gets a bounded pseudo-random default.
func (s *SanitizerService) sanitizeCost(raw any, multiplier float64) int {
	switch v := raw.(type) {
	case float64:
		return clampCost(int(math.Round(v)))
	case int:
		return clampCost(v)
	case string:
		lower := strings.ToLower(strings.TrimSpace(v))
		if lower == "" {
			return 0
		}
		if lower == "0" || strings.Contains(lower, "free") || strings.Contains(lower, "no cost") {
			return 0
		}
		if match := firstNumberPattern.FindString(lower); match != "" {
			if amount, err := strconv.ParseFloat(match, 64); err == nil {
				return clampCost(int(math.Round(amount * multiplier)))
			}
		}
		if strings.Contains(lower, "varies") || strings.Contains(lower, "variable") {
			return 10 + s.rng.Intn(31)
		}
		return 15 + s.rng.Intn(26)
	default:
		return 0
	}
}

func clampCost(cost int) int {
	if cost < 0 {
		return 0
	}
	return cost
}
