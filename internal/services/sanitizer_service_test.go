package services

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/pkg/utils"
)

func newTestSanitizer() *SanitizerService {
	return &SanitizerService{rng: rand.New(rand.NewSource(1))}
}

func TestSanitizeDraft_DatesAlwaysRecomputed(t *testing.T) {
	req := request_models.TripRequest{
		Destination: "Paris",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-03",
		PaceTier:    request_models.PaceTierRelaxed,
	}

	// Raw draft supplies only two day groups; the third must be synthesized.
	raw := &response_models.RawDraft{
		Days: []response_models.RawDay{
			{Activities: []response_models.RawActivity{
				{Time: "09:00", Activity: "Louvre visit", Location: "Louvre Museum", Duration: "3 hours", Cost: float64(17), Notes: "book ahead"},
				{Time: "14:00", Activity: "Seine walk", Location: "Seine banks", Duration: "2 hours", Cost: "free"},
			}},
			{Activities: []response_models.RawActivity{
				{Time: "10:00", Activity: "Montmartre stroll", Location: "Montmartre", Duration: "2 hours", Cost: float64(0)},
			}},
		},
	}

	draft, err := newTestSanitizer().SanitizeDraft(raw, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(draft.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(draft.Days))
	}
	wantDates := []string{"2024-06-01", "2024-06-02", "2024-06-03"}
	for i, want := range wantDates {
		if draft.Days[i].Date != want {
			t.Errorf("day %d: expected date %s, got %s", i, want, draft.Days[i].Date)
		}
	}

	// Relaxed pace requires at least 2 activities per day, including the
	// empty trailing day.
	for i, day := range draft.Days {
		if len(day.Activities) < 2 {
			t.Errorf("day %d: expected >= 2 activities, got %d", i, len(day.Activities))
		}
	}
}

func TestSanitizeDraft_RejectsMissingDays(t *testing.T) {
	req := request_models.TripRequest{
		Destination: "Rome",
		StartDate:   "2024-05-01",
		EndDate:     "2024-05-02",
	}

	for _, raw := range []*response_models.RawDraft{nil, {}} {
		if _, err := newTestSanitizer().SanitizeDraft(raw, req); !errors.Is(err, utils.ErrInvalidDraft) {
			t.Errorf("expected ErrInvalidDraft for %+v, got %v", raw, err)
		}
	}
}

func TestSanitizeDraft_PaddingMinimums(t *testing.T) {
	tests := []struct {
		pace string
		want int
	}{
		{request_models.PaceTierRelaxed, 2},
		{request_models.PaceTierModerate, 3},
		{request_models.PaceTierActive, 4},
	}

	for _, tt := range tests {
		t.Run(tt.pace, func(t *testing.T) {
			req := request_models.TripRequest{
				Destination: "Lisbon",
				StartDate:   "2024-07-01",
				EndDate:     "2024-07-02",
				PaceTier:    tt.pace,
			}
			// Zero activities supplied for any day.
			raw := &response_models.RawDraft{Days: []response_models.RawDay{}}

			draft, err := newTestSanitizer().SanitizeDraft(raw, req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i, day := range draft.Days {
				if len(day.Activities) != tt.want {
					t.Errorf("day %d: expected %d activities, got %d", i, tt.want, len(day.Activities))
				}
			}
		})
	}
}

func TestSanitizeCost(t *testing.T) {
	tests := []struct {
		name       string
		input      any
		multiplier float64
		want       int
		wantMin    int
		wantMax    int
	}{
		{name: "number rounded", input: float64(45.4), multiplier: 1, want: 45},
		{name: "negative floored", input: float64(-5), multiplier: 1, want: 0},
		{name: "int passthrough", input: 30, multiplier: 1, want: 30},
		{name: "free text", input: "free guided walk", multiplier: 1, want: 0},
		{name: "no cost", input: "no cost", multiplier: 2.5, want: 0},
		{name: "literal zero", input: "0", multiplier: 1, want: 0},
		{name: "dollar amount", input: "$45", multiplier: 1, want: 45},
		{name: "amount scaled", input: "around 20 dollars", multiplier: 2.5, want: 50},
		{name: "varies bounded", input: "varies by season", multiplier: 1, wantMin: 10, wantMax: 40},
		{name: "garbage bounded", input: "ask at the counter", multiplier: 1, wantMin: 15, wantMax: 40},
		{name: "nil", input: nil, multiplier: 1, want: 0},
	}

	s := newTestSanitizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.sanitizeCost(tt.input, tt.multiplier)
			if got < 0 {
				t.Fatalf("cost must be nonnegative, got %d", got)
			}
			if tt.wantMax > 0 {
				if got < tt.wantMin || got > tt.wantMax {
					t.Errorf("expected cost in [%d,%d], got %d", tt.wantMin, tt.wantMax, got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSanitizeTime(t *testing.T) {
	tests := []struct {
		input string
		slot  int
		want  string
	}{
		{"25:99", 0, "09:00"},
		{"", 0, "09:00"},
		{"", 2, "13:00"},
		{"9:30", 0, "09:30"},
		{"23:59", 0, "23:59"},
		{"half past nine", 1, "11:00"},
	}

	s := newTestSanitizer()
	for _, tt := range tests {
		if got := s.sanitizeTime(tt.input, tt.slot); got != tt.want {
			t.Errorf("sanitizeTime(%q, %d): expected %s, got %s", tt.input, tt.slot, tt.want, got)
		}
	}
}

func TestSanitizeDraft_TruncatesOversizedFields(t *testing.T) {
	req := request_models.TripRequest{
		Destination: "Tokyo",
		StartDate:   "2024-09-01",
		EndDate:     "2024-09-01",
	}
	raw := &response_models.RawDraft{
		Days: []response_models.RawDay{
			{Activities: []response_models.RawActivity{
				{Time: "09:00", Activity: strings.Repeat("a", 250), Location: "", Cost: float64(10)},
			}},
		},
	}

	draft, err := newTestSanitizer().SanitizeDraft(raw, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slot := draft.Days[0].Activities[0]
	if len(slot.Name) != 200 {
		t.Errorf("expected name capped at 200 chars, got %d", len(slot.Name))
	}
	if slot.Location != "Tokyo" {
		t.Errorf("expected empty location replaced with destination, got %q", slot.Location)
	}
}
