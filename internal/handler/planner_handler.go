package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
	"github.com/Xvidddd/AI-Travel-Planner/internal/model"
	"github.com/Xvidddd/AI-Travel-Planner/internal/service"
)

// PlannerHandler handles HTTP requests for plan generation and saved itineraries
type PlannerHandler struct {
	plannerService service.PlannerService
}

// NewPlannerHandler creates a new planner handler
func NewPlannerHandler(plannerService service.PlannerService) *PlannerHandler {
	return &PlannerHandler{
		plannerService: plannerService,
	}
}

// GeneratePlan handles the POST /v1/plan endpoint
// @Summary Generate a raw itinerary
// @Description Generate a day-by-day itinerary for a trip request using the configured AI provider
// @Tags planner
// @Accept json
// @Produce json
// @Param request body domain.TripRequest true "Trip request"
// @Success 200 {object} domain.PlannerLLMResponse "Generated itinerary"
// @Failure 400 {object} model.ErrorResponse "Invalid input"
// @Failure 502 {object} model.ErrorResponse "Provider failure"
// @Router /v1/plan [post]
func (h *PlannerHandler) GeneratePlan(c *gin.Context) {
	var req domain.TripRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	response, err := h.plannerService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, response)
}

// DraftItinerary handles the POST /v1/itineraries/draft endpoint
// @Summary Generate a normalized itinerary draft
// @Description Generate an itinerary and reshape it into the persistable plan structure without saving it
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body domain.TripRequest true "Trip request"
// @Success 200 {object} domain.ItineraryPlan "Normalized plan"
// @Failure 400 {object} model.ErrorResponse "Invalid input"
// @Failure 502 {object} model.ErrorResponse "Provider failure"
// @Router /v1/itineraries/draft [post]
func (h *PlannerHandler) DraftItinerary(c *gin.Context) {
	var req domain.TripRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	response, err := h.plannerService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, service.NormalizePlan(response, req))
}

// SaveItinerary handles the POST /v1/itineraries endpoint
// @Summary Persist an itinerary
// @Description Save a normalized itinerary plan with its days and activities for the owning user
// @Tags itineraries
// @Accept json
// @Produce json
// @Param plan body domain.ItineraryPlan true "Itinerary plan"
// @Success 201 {object} model.SaveItineraryResponse "Itinerary saved"
// @Failure 400 {object} model.ErrorResponse "Invalid input"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/itineraries [post]
func (h *PlannerHandler) SaveItinerary(c *gin.Context) {
	var plan domain.ItineraryPlan
	if err := bindJSON(c, &plan); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	if plan.UserID == "" {
		plan.UserID = c.Query("userId")
	}

	itineraryID, err := h.plannerService.SavePlan(c.Request.Context(), &plan)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, model.SaveItineraryResponse{ItineraryID: itineraryID})
}

// GetItineraries handles the GET /v1/itineraries endpoint
// @Summary List or fetch itineraries
// @Description List the owner's saved itineraries, or return one full plan when itineraryId is given
// @Tags itineraries
// @Produce json
// @Param userId query string true "Owning user identifier"
// @Param itineraryId query string false "Itinerary identifier for a full plan"
// @Success 200 {object} model.ItineraryListResponse "Itinerary summaries"
// @Failure 401 {object} model.ErrorResponse "Missing user identity"
// @Failure 404 {object} model.ErrorResponse "Itinerary not found"
// @Router /v1/itineraries [get]
func (h *PlannerHandler) GetItineraries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if itineraryID := c.Query("itineraryId"); itineraryID != "" {
		plan, err := h.plannerService.GetPlan(c.Request.Context(), userID, itineraryID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		respondOK(c, plan)
		return
	}

	summaries, err := h.plannerService.ListPlans(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, model.ItineraryListResponse{Itineraries: summaries})
}

// DeleteItinerary handles the DELETE /v1/itineraries/:id endpoint
// @Summary Delete an itinerary
// @Description Delete a saved itinerary matched by id and owner
// @Tags itineraries
// @Produce json
// @Param id path string true "Itinerary identifier"
// @Param userId query string true "Owning user identifier"
// @Success 200 {object} map[string]bool "Deleted"
// @Failure 401 {object} model.ErrorResponse "Missing user identity"
// @Failure 404 {object} model.ErrorResponse "Itinerary not found"
// @Router /v1/itineraries/{id} [delete]
func (h *PlannerHandler) DeleteItinerary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	itineraryID := c.Param("id")
	if itineraryID == "" {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("id", "itinerary id is required"))
		return
	}

	if err := h.plannerService.DeletePlan(c.Request.Context(), userID, itineraryID); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"success": true})
}
