package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripweaver/internal/models/request_models"
	"tripweaver/internal/services"
	"tripweaver/pkg/utils"
)

type ItineraryController struct {
	enrichmentService services.EnrichmentServiceInterface
}

func NewItineraryController(enrichmentService services.EnrichmentServiceInterface) *ItineraryController {
	return &ItineraryController{
		enrichmentService: enrichmentService,
	}
}

// CreateItineraryHandler validates the trip request and runs the pipeline.
// The core assumes a validated TripRequest, so all boundary checks live here.
func (ic *ItineraryController) CreateItineraryHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if msg := validateTripRequest(req); msg != "" {
		utils.RespondError(c, http.StatusBadRequest, msg)
		return
	}

	itinerary, err := ic.enrichmentService.PlanItinerary(c.Request.Context(), c.ClientIP(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary created")
}

func validateTripRequest(req request_models.TripRequest) string {
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return "start_date must be formatted YYYY-MM-DD"
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return "end_date must be formatted YYYY-MM-DD"
	}
	if end.Before(start) {
		return "end_date must not be before start_date"
	}
	switch req.BudgetTier {
	case "", request_models.BudgetTierBudget, request_models.BudgetTierMidRange, request_models.BudgetTierLuxury:
	default:
		return "budget_tier must be budget, mid-range or luxury"
	}
	switch req.PaceTier {
	case "", request_models.PaceTierRelaxed, request_models.PaceTierModerate, request_models.PaceTierActive:
	default:
		return "pace_tier must be relaxed, moderate or active"
	}
	return ""
}
