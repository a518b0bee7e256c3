package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Xvidddd/AI-Travel-Planner/internal/budget"
	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
	"github.com/Xvidddd/AI-Travel-Planner/internal/repository"
)

// expenseListLimit caps how many entries one listing returns
const expenseListLimit = 20

// ExpenseServiceError represents an error in the expense service
type ExpenseServiceError struct {
	Op  string
	Err error
}

func (e *ExpenseServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *ExpenseServiceError) Unwrap() error {
	return e.Err
}

// ExpenseService defines the interface for expense tracking business logic
type ExpenseService interface {
	// AddExpense validates and persists a new expense entry
	AddExpense(ctx context.Context, entry *domain.ExpenseEntry) (*domain.ExpenseEntry, error)

	// ListExpenses returns the itinerary's entries plus a snapshot derived
	// against totalBudget
	ListExpenses(ctx context.Context, userID, itineraryID string, totalBudget float64) ([]domain.ExpenseEntry, domain.BudgetSnapshot, error)

	// DeleteExpense removes an entry matched by id, owner and itinerary
	DeleteExpense(ctx context.Context, userID, itineraryID, expenseID string) error
}

// ExpenseServiceImpl implements the ExpenseService interface
type ExpenseServiceImpl struct {
	repository repository.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &ExpenseServiceImpl{
		repository: repo,
	}
}

// AddExpense assigns an id and timestamp and persists the entry
func (s *ExpenseServiceImpl) AddExpense(ctx context.Context, entry *domain.ExpenseEntry) (*domain.ExpenseEntry, error) {
	if entry.UserID == "" {
		return nil, &ValidationError{Field: "userId", Message: "owner identifier is required"}
	}
	if entry.ItineraryID == "" {
		return nil, &ValidationError{Field: "itineraryId", Message: "itinerary identifier is required"}
	}
	if !domain.ValidExpenseCategory(entry.Category) {
		return nil, &ValidationError{Field: "category", Message: "unknown expense category"}
	}
	if entry.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "amount must be positive"}
	}

	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()

	if s.repository == nil {
		return nil, &ExpenseServiceError{
			Op:  "add_expense",
			Err: fmt.Errorf("persistence is not configured"),
		}
	}

	if err := s.repository.Create(ctx, entry); err != nil {
		return nil, &ExpenseServiceError{
			Op:  "add_expense",
			Err: err,
		}
	}

	return entry, nil
}

// ListExpenses loads entries and derives a budget snapshot from the full list
func (s *ExpenseServiceImpl) ListExpenses(ctx context.Context, userID, itineraryID string, totalBudget float64) ([]domain.ExpenseEntry, domain.BudgetSnapshot, error) {
	if s.repository == nil {
		return nil, domain.BudgetSnapshot{}, &ExpenseServiceError{
			Op:  "list_expenses",
			Err: fmt.Errorf("persistence is not configured"),
		}
	}

	expenses, err := s.repository.ListByItinerary(ctx, userID, itineraryID, expenseListLimit)
	if err != nil {
		return nil, domain.BudgetSnapshot{}, &ExpenseServiceError{
			Op:  "list_expenses",
			Err: err,
		}
	}

	return expenses, budget.ComputeSnapshot(expenses, totalBudget), nil
}

// DeleteExpense removes an entry
func (s *ExpenseServiceImpl) DeleteExpense(ctx context.Context, userID, itineraryID, expenseID string) error {
	if s.repository == nil {
		return &ExpenseServiceError{
			Op:  "delete_expense",
			Err: fmt.Errorf("persistence is not configured"),
		}
	}

	if err := s.repository.Delete(ctx, userID, itineraryID, expenseID); err != nil {
		return &ExpenseServiceError{
			Op:  "delete_expense",
			Err: err,
		}
	}

	return nil
}
