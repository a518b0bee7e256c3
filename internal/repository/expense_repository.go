package repository

import (
	"context"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
)

// ExpenseRepository defines the interface for expense data operations,
// scoped by the owning user and itinerary
type ExpenseRepository interface {
	// Create persists an expense entry under its user and itinerary
	Create(ctx context.Context, entry *domain.ExpenseEntry) error

	// ListByItinerary returns the newest entries first, capped at limit
	ListByItinerary(ctx context.Context, userID, itineraryID string, limit int) ([]domain.ExpenseEntry, error)

	// Delete removes an entry matched by id, owner and itinerary
	Delete(ctx context.Context, userID, itineraryID, expenseID string) error
}
