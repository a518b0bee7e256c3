package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
	"github.com/Xvidddd/AI-Travel-Planner/internal/llm"
	"github.com/Xvidddd/AI-Travel-Planner/internal/model"
)

type stubIntentParser struct {
	plannerIntent *domain.PlannerIntent
	expenseIntent *domain.ExpenseIntent
	err           error
}

func (s *stubIntentParser) ParsePlannerIntent(_ context.Context, _ string) (*domain.PlannerIntent, error) {
	return s.plannerIntent, s.err
}

func (s *stubIntentParser) ParseExpenseIntent(_ context.Context, _ string) (*domain.ExpenseIntent, error) {
	return s.expenseIntent, s.err
}

func voiceRouter(parser IntentParser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewVoiceHandler(parser)

	router := gin.New()
	router.POST("/v1/voice/parse", h.ParsePlanner)
	router.POST("/v1/voice/expense", h.ParseExpense)
	return router
}

func TestParsePlannerReturnsIntent(t *testing.T) {
	days := 5
	budget := 20000.0
	router := voiceRouter(&stubIntentParser{
		plannerIntent: &domain.PlannerIntent{
			Destination: "东京",
			Days:        &days,
			Budget:      &budget,
		},
	})

	recorder := postJSON(t, router, "/v1/voice/parse", model.VoiceRequest{
		Transcript: "我想 5 天去东京，预算 2 万元",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response model.PlannerIntentResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotNil(t, response.Intent)
	assert.Equal(t, "东京", response.Intent.Destination)
	require.NotNil(t, response.Intent.Days)
	assert.Equal(t, 5, *response.Intent.Days)
	require.NotNil(t, response.Intent.Budget)
	assert.Equal(t, 20000.0, *response.Intent.Budget)
}

func TestParsePlannerRejectsBlankTranscript(t *testing.T) {
	router := voiceRouter(&stubIntentParser{})

	recorder := postJSON(t, router, "/v1/voice/parse", model.VoiceRequest{Transcript: "   "})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "transcript")
}

func TestParseExpenseReturnsIntent(t *testing.T) {
	amount := 120.0
	router := voiceRouter(&stubIntentParser{
		expenseIntent: &domain.ExpenseIntent{
			Amount:   &amount,
			Category: "餐饮",
			Note:     "午餐",
		},
	})

	recorder := postJSON(t, router, "/v1/voice/expense", model.VoiceRequest{
		Transcript: "午餐花了 120 块",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var response model.ExpenseIntentResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotNil(t, response.Intent)
	assert.Equal(t, "餐饮", response.Intent.Category)
}

func TestParseExpenseWithoutProvider(t *testing.T) {
	router := voiceRouter(&stubIntentParser{
		err: &llm.IntentParseError{Op: "parse_expense_intent", Err: llm.ErrNotConfigured},
	})

	recorder := postJSON(t, router, "/v1/voice/expense", model.VoiceRequest{
		Transcript: "午餐花了 120 块",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
