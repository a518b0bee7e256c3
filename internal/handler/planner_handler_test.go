package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
	"github.com/Xvidddd/AI-Travel-Planner/internal/llm"
	"github.com/Xvidddd/AI-Travel-Planner/internal/service"
)

func plannerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	plannerService := service.NewPlannerService(llm.NewMockGenerator(), nil)
	h := NewPlannerHandler(plannerService)

	router := gin.New()
	router.POST("/v1/plan", h.GeneratePlan)
	router.POST("/v1/itineraries/draft", h.DraftItinerary)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGeneratePlanWithMockProvider(t *testing.T) {
	router := plannerRouter()

	recorder := postJSON(t, router, "/v1/plan", domain.TripRequest{
		Destination: "东京",
		Days:        3,
		Budget:      15000,
		Personas:    []string{"家庭"},
		Preferences: []string{"亲子"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response domain.PlannerLLMResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "家庭 的 东京 3 天行程", response.Summary)
	assert.Len(t, response.Days, 3)
}

func TestGeneratePlanRejectsMissingDestination(t *testing.T) {
	router := plannerRouter()

	recorder := postJSON(t, router, "/v1/plan", domain.TripRequest{Days: 3})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "destination")
}

func TestGeneratePlanRejectsNonPositiveDays(t *testing.T) {
	router := plannerRouter()

	recorder := postJSON(t, router, "/v1/plan", domain.TripRequest{Destination: "东京"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "days")
}

func TestDraftItineraryNormalizes(t *testing.T) {
	router := plannerRouter()

	recorder := postJSON(t, router, "/v1/itineraries/draft", domain.TripRequest{
		Destination: "东京",
		Days:        2,
		Budget:      8000,
		Personas:    []string{"独行"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var plan domain.ItineraryPlan
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &plan))
	require.Len(t, plan.Itinerary, 2)
	require.Len(t, plan.Itinerary[0].Activities, 1)
	assert.Equal(t, "Day 1", plan.Itinerary[0].Activities[0].Time)
	assert.Equal(t, "Day 2", plan.Itinerary[1].Activities[0].Time)
}

func TestSaveItineraryWithoutPersistence(t *testing.T) {
	gin.SetMode(gin.TestMode)
	plannerService := service.NewPlannerService(llm.NewMockGenerator(), nil)
	h := NewPlannerHandler(plannerService)
	router := gin.New()
	router.POST("/v1/itineraries", h.SaveItinerary)

	recorder := postJSON(t, router, "/v1/itineraries", domain.ItineraryPlan{
		Destination: "东京",
		Days:        1,
		UserID:      "user-1",
	})

	// Nothing persisted: the save path reports its failure instead of
	// pretending the plan was stored.
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "not configured")
}
