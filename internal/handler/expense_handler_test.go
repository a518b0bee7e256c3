package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
	"github.com/Xvidddd/AI-Travel-Planner/internal/model"
	"github.com/Xvidddd/AI-Travel-Planner/internal/repository"
	"github.com/Xvidddd/AI-Travel-Planner/internal/service"
)

// memoryExpenseRepository keeps entries in insertion order, newest first on list
type memoryExpenseRepository struct {
	entries []domain.ExpenseEntry
}

func (r *memoryExpenseRepository) Create(_ context.Context, entry *domain.ExpenseEntry) error {
	r.entries = append([]domain.ExpenseEntry{*entry}, r.entries...)
	return nil
}

func (r *memoryExpenseRepository) ListByItinerary(_ context.Context, userID, itineraryID string, limit int) ([]domain.ExpenseEntry, error) {
	var result []domain.ExpenseEntry
	for _, entry := range r.entries {
		if entry.UserID == userID && entry.ItineraryID == itineraryID {
			result = append(result, entry)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *memoryExpenseRepository) Delete(_ context.Context, userID, itineraryID, expenseID string) error {
	for i, entry := range r.entries {
		if entry.ID == expenseID && entry.UserID == userID && entry.ItineraryID == itineraryID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func expenseRouter(repo repository.ExpenseRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewExpenseHandler(service.NewExpenseService(repo))

	router := gin.New()
	router.POST("/v1/expenses", h.CreateExpense)
	router.GET("/v1/expenses", h.GetExpenses)
	router.DELETE("/v1/expenses/:id", h.DeleteExpense)
	return router
}

func TestCreateExpenseAssignsIdentity(t *testing.T) {
	router := expenseRouter(&memoryExpenseRepository{})

	recorder := postJSON(t, router, "/v1/expenses", model.CreateExpenseRequest{
		UserID:      "user-1",
		ItineraryID: "itin-1",
		Category:    "餐饮",
		Amount:      120,
		Note:        "午餐",
	})

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response model.ExpenseResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotNil(t, response.Expense)
	assert.NotEmpty(t, response.Expense.ID)
	assert.False(t, response.Expense.CreatedAt.IsZero())
}

func TestCreateExpenseRejectsUnknownCategory(t *testing.T) {
	router := expenseRouter(&memoryExpenseRepository{})

	recorder := postJSON(t, router, "/v1/expenses", model.CreateExpenseRequest{
		UserID:      "user-1",
		ItineraryID: "itin-1",
		Category:    "机票",
		Amount:      900,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "category")
}

func TestCreateExpenseRequiresUser(t *testing.T) {
	router := expenseRouter(&memoryExpenseRepository{})

	recorder := postJSON(t, router, "/v1/expenses", model.CreateExpenseRequest{
		ItineraryID: "itin-1",
		Category:    "交通",
		Amount:      45,
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetExpensesAttachesSnapshotWhenBudgetGiven(t *testing.T) {
	repo := &memoryExpenseRepository{}
	router := expenseRouter(repo)

	postJSON(t, router, "/v1/expenses", model.CreateExpenseRequest{
		UserID: "user-1", ItineraryID: "itin-1", Category: "餐饮", Amount: 150,
	})
	postJSON(t, router, "/v1/expenses", model.CreateExpenseRequest{
		UserID: "user-1", ItineraryID: "itin-1", Category: "交通", Amount: 50,
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/expenses?userId=user-1&itineraryId=itin-1&budget=1000", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response model.ExpenseListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Len(t, response.Expenses, 2)
	require.NotNil(t, response.Budget)
	assert.Equal(t, 200.0, response.Budget.Used)
	assert.Equal(t, 800.0, response.Budget.Remaining)
	assert.Equal(t, 20.0, response.Budget.UsagePercent)
}

func TestGetExpensesOmitsSnapshotWithoutBudget(t *testing.T) {
	router := expenseRouter(&memoryExpenseRepository{})

	req := httptest.NewRequest(http.MethodGet, "/v1/expenses?userId=user-1&itineraryId=itin-1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "usagePercent")
}

func TestDeleteExpenseNotFound(t *testing.T) {
	router := expenseRouter(&memoryExpenseRepository{})

	req := httptest.NewRequest(http.MethodDelete, "/v1/expenses/missing?userId=user-1&itineraryId=itin-1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteExpenseRemovesEntry(t *testing.T) {
	repo := &memoryExpenseRepository{}
	router := expenseRouter(repo)

	createRecorder := postJSON(t, router, "/v1/expenses", model.CreateExpenseRequest{
		UserID: "user-1", ItineraryID: "itin-1", Category: "购物", Amount: 300,
	})
	require.Equal(t, http.StatusCreated, createRecorder.Code)

	var created model.ExpenseResponse
	require.NoError(t, json.Unmarshal(createRecorder.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodDelete, "/v1/expenses/"+created.Expense.ID+"?userId=user-1&itineraryId=itin-1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, repo.entries)
}
