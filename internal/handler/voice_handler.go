package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
	"github.com/Xvidddd/AI-Travel-Planner/internal/model"
)

// IntentParser extracts sparse intents from speech transcripts
type IntentParser interface {
	ParsePlannerIntent(ctx context.Context, transcript string) (*domain.PlannerIntent, error)
	ParseExpenseIntent(ctx context.Context, transcript string) (*domain.ExpenseIntent, error)
}

// VoiceHandler handles HTTP requests for voice transcript parsing
type VoiceHandler struct {
	parser IntentParser
}

// NewVoiceHandler creates a new voice handler
func NewVoiceHandler(parser IntentParser) *VoiceHandler {
	return &VoiceHandler{
		parser: parser,
	}
}

// ParsePlanner handles the POST /v1/voice/parse endpoint
// @Summary Parse a trip transcript
// @Description Extract partial trip-form fields from a free-text speech transcript
// @Tags voice
// @Accept json
// @Produce json
// @Param request body model.VoiceRequest true "Speech transcript"
// @Success 200 {object} model.PlannerIntentResponse "Extracted trip intent"
// @Failure 400 {object} model.ErrorResponse "Missing transcript"
// @Failure 502 {object} model.ErrorResponse "Provider failure"
// @Router /v1/voice/parse [post]
func (h *VoiceHandler) ParsePlanner(c *gin.Context) {
	transcript, ok := bindTranscript(c)
	if !ok {
		return
	}

	intent, err := h.parser.ParsePlannerIntent(c.Request.Context(), transcript)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, model.PlannerIntentResponse{Intent: intent})
}

// ParseExpense handles the POST /v1/voice/expense endpoint
// @Summary Parse an expense transcript
// @Description Extract expense fields from a free-text speech transcript
// @Tags voice
// @Accept json
// @Produce json
// @Param request body model.VoiceRequest true "Speech transcript"
// @Success 200 {object} model.ExpenseIntentResponse "Extracted expense intent"
// @Failure 400 {object} model.ErrorResponse "Missing transcript"
// @Failure 502 {object} model.ErrorResponse "Provider failure"
// @Router /v1/voice/expense [post]
func (h *VoiceHandler) ParseExpense(c *gin.Context) {
	transcript, ok := bindTranscript(c)
	if !ok {
		return
	}

	intent, err := h.parser.ParseExpenseIntent(c.Request.Context(), transcript)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, model.ExpenseIntentResponse{Intent: intent})
}

// bindTranscript reads the transcript payload and rejects blank input
func bindTranscript(c *gin.Context) (string, bool) {
	var req model.VoiceRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return "", false
	}

	transcript := strings.TrimSpace(req.Transcript)
	if transcript == "" {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("transcript", "transcript is required"))
		return "", false
	}

	return transcript, true
}
