package request_models

// Budget tiers control the cost-scaling multiplier applied to activity costs.
const (
	BudgetTierBudget   = "budget"
	BudgetTierMidRange = "mid-range"
	BudgetTierLuxury   = "luxury"
)

// Pace tiers control the minimum and target activity density per day.
const (
	PaceTierRelaxed  = "relaxed"
	PaceTierModerate = "moderate"
	PaceTierActive   = "active"
)

// TripRequest is the validated input the caller hands to the pipeline.
// Dates are calendar dates in "2006-01-02" form, end >= start.
type TripRequest struct {
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	Interests   []string `json:"interests"`
	BudgetTier  string   `json:"budget_tier"`
	PaceTier    string   `json:"pace_tier"`
}

// BudgetMultiplier returns the cost scaling factor for the request's budget tier.
func (r TripRequest) BudgetMultiplier() float64 {
	switch r.BudgetTier {
	case BudgetTierBudget:
		return 0.6
	case BudgetTierLuxury:
		return 2.5
	default:
		return 1.0
	}
}

// ActivitiesPerDay returns the minimum activity count for the request's pace tier.
func (r TripRequest) ActivitiesPerDay() int {
	switch r.PaceTier {
	case PaceTierRelaxed:
		return 2
	case PaceTierActive:
		return 4
	default:
		return 3
	}
}
