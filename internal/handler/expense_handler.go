package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
	"github.com/Xvidddd/AI-Travel-Planner/internal/model"
	"github.com/Xvidddd/AI-Travel-Planner/internal/service"
)

// ExpenseHandler handles HTTP requests for expense tracking
type ExpenseHandler struct {
	expenseService service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// CreateExpense handles the POST /v1/expenses endpoint
// @Summary Record an expense
// @Description Create a new expense entry for a user and itinerary
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body model.CreateExpenseRequest true "Expense data"
// @Success 201 {object} model.ExpenseResponse "Expense recorded"
// @Failure 400 {object} model.ErrorResponse "Invalid input"
// @Failure 401 {object} model.ErrorResponse "Missing user identity"
// @Router /v1/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var input model.CreateExpenseRequest
	if err := bindJSON(c, &input); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	if input.UserID == "" {
		respondUnauthorized(c, ErrMissingUser)
		return
	}

	entry := &domain.ExpenseEntry{
		UserID:      input.UserID,
		ItineraryID: input.ItineraryID,
		Category:    input.Category,
		Amount:      input.Amount,
		Note:        input.Note,
	}

	created, err := h.expenseService.AddExpense(c.Request.Context(), entry)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondCreated(c, model.ExpenseResponse{Expense: created})
}

// GetExpenses handles the GET /v1/expenses endpoint
// @Summary List expenses
// @Description List the newest expenses for a user and itinerary, with a budget snapshot when a budget is given
// @Tags expenses
// @Produce json
// @Param userId query string true "Owning user identifier"
// @Param itineraryId query string true "Itinerary identifier"
// @Param budget query number false "Total budget for the snapshot"
// @Success 200 {object} model.ExpenseListResponse "Expenses and snapshot"
// @Failure 400 {object} model.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} model.ErrorResponse "Missing user identity"
// @Router /v1/expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	itineraryID := c.Query("itineraryId")
	if itineraryID == "" {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("itineraryId", "itinerary id is required"))
		return
	}

	totalBudget, err := getQueryFloat(c, "budget", 0)
	if err != nil {
		respondBadRequest(c, err.Error(), newErrorDetail("budget", "must be a number"))
		return
	}

	expenses, snapshot, err := h.expenseService.ListExpenses(c.Request.Context(), userID, itineraryID, totalBudget)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response := model.ExpenseListResponse{Expenses: expenses}
	if c.Query("budget") != "" {
		response.Budget = &snapshot
	}

	respondOK(c, response)
}

// DeleteExpense handles the DELETE /v1/expenses/:id endpoint
// @Summary Delete an expense
// @Description Delete an expense entry matched by id, owner and itinerary
// @Tags expenses
// @Produce json
// @Param id path string true "Expense identifier"
// @Param userId query string true "Owning user identifier"
// @Param itineraryId query string true "Itinerary identifier"
// @Success 200 {object} map[string]bool "Deleted"
// @Failure 401 {object} model.ErrorResponse "Missing user identity"
// @Failure 404 {object} model.ErrorResponse "Expense not found"
// @Router /v1/expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	itineraryID := c.Query("itineraryId")
	if itineraryID == "" {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("itineraryId", "itinerary id is required"))
		return
	}

	expenseID := c.Param("id")
	if expenseID == "" {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("id", "expense id is required"))
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, itineraryID, expenseID); err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{"success": true})
}
