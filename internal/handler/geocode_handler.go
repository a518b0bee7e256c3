package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Xvidddd/AI-Travel-Planner/internal/geocode"
	"github.com/Xvidddd/AI-Travel-Planner/internal/model"
)

// GeocodeHandler handles HTTP requests for place-name resolution
type GeocodeHandler struct {
	client *geocode.Client
}

// NewGeocodeHandler creates a new geocode handler
func NewGeocodeHandler(client *geocode.Client) *GeocodeHandler {
	return &GeocodeHandler{
		client: client,
	}
}

// GeocodeBatch handles the POST /v1/geocode endpoint
// @Summary Resolve place names to coordinates
// @Description Resolve up to ten place-name queries to [lng, lat] pairs; unresolvable queries are listed in failed. With no explicit queries, place names are extracted from destination and text.
// @Tags geocode
// @Accept json
// @Produce json
// @Param request body model.GeocodeRequest true "Queries to resolve"
// @Success 200 {object} geocode.Result "Resolved coordinates and failed queries"
// @Failure 400 {object} model.ErrorResponse "Invalid input or missing API key"
// @Router /v1/geocode [post]
func (h *GeocodeHandler) GeocodeBatch(c *gin.Context) {
	var req model.GeocodeRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	if !h.client.Configured() {
		respondBadRequest(c, "Geocoding is not configured")
		return
	}

	queries := req.Queries
	if len(queries) == 0 && req.Query != "" {
		queries = []string{req.Query}
	}
	if len(queries) == 0 && req.Text != "" {
		queries = geocode.ExtractLocationQueries(req.Destination, req.Text)
	}
	if len(queries) == 0 {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("queries", "at least one query is required"))
		return
	}

	// Per-query failures are swallowed into Failed; the batch always succeeds.
	respondOK(c, h.client.GeocodeBatch(c.Request.Context(), queries))
}
