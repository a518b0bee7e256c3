package repository

import (
	"context"
	"errors"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
)

// ErrNotFound is returned when a record does not exist or is owned by someone else
var ErrNotFound = errors.New("record not found")

// ItineraryRepository defines the interface for itinerary data operations.
// Every operation is scoped by the owning user identifier.
type ItineraryRepository interface {
	// Create persists a plan with its days and activities and returns the new id
	Create(ctx context.Context, plan *domain.ItineraryPlan) (string, error)

	// List returns the owner's saved plans, newest first
	List(ctx context.Context, userID string) ([]domain.ItinerarySummary, error)

	// GetByID reshapes the itinerary + days + activities join back into a plan
	GetByID(ctx context.Context, userID, itineraryID string) (*domain.ItineraryPlan, error)

	// Delete removes a plan matched by id and owner
	Delete(ctx context.Context, userID, itineraryID string) error
}
