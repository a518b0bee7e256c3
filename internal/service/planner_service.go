package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
	"github.com/Xvidddd/AI-Travel-Planner/internal/llm"
	"github.com/Xvidddd/AI-Travel-Planner/internal/planner"
	"github.com/Xvidddd/AI-Travel-Planner/internal/repository"
)

// PlannerServiceError represents an error in the planner service
type PlannerServiceError struct {
	Op  string
	Err error
}

func (e *PlannerServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *PlannerServiceError) Unwrap() error {
	return e.Err
}

// ValidationError rejects a request before any external call is made
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// PlannerService defines the interface for itinerary planning business logic
type PlannerService interface {
	// GeneratePlan produces the raw provider response for a trip request
	GeneratePlan(ctx context.Context, req domain.TripRequest) (*domain.PlannerLLMResponse, error)

	// SavePlan persists a normalized plan and returns its new id
	SavePlan(ctx context.Context, plan *domain.ItineraryPlan) (string, error)

	// GetPlan loads one saved plan for its owner
	GetPlan(ctx context.Context, userID, itineraryID string) (*domain.ItineraryPlan, error)

	// ListPlans lists the owner's saved plans
	ListPlans(ctx context.Context, userID string) ([]domain.ItinerarySummary, error)

	// DeletePlan removes a saved plan matched by id and owner
	DeletePlan(ctx context.Context, userID, itineraryID string) error
}

// PlannerServiceImpl implements the PlannerService interface
type PlannerServiceImpl struct {
	generator  llm.ItineraryGenerator
	repository repository.ItineraryRepository
}

// NewPlannerService creates a new PlannerService. repo may be nil when no
// database is configured; persistence operations then fail cleanly while
// plan generation keeps working.
func NewPlannerService(generator llm.ItineraryGenerator, repo repository.ItineraryRepository) PlannerService {
	return &PlannerServiceImpl{
		generator:  generator,
		repository: repo,
	}
}

// GeneratePlan validates the request and calls the configured generator
func (s *PlannerServiceImpl) GeneratePlan(ctx context.Context, req domain.TripRequest) (*domain.PlannerLLMResponse, error) {
	if err := validateTripRequest(req); err != nil {
		return nil, err
	}

	response, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, &PlannerServiceError{
			Op:  "generate_itinerary",
			Err: err,
		}
	}

	return response, nil
}

// NormalizePlan converts a raw provider response into the persisted plan shape
func NormalizePlan(raw *domain.PlannerLLMResponse, req domain.TripRequest) *domain.ItineraryPlan {
	return planner.Normalize(raw, req)
}

// SavePlan persists a plan for its owner
func (s *PlannerServiceImpl) SavePlan(ctx context.Context, plan *domain.ItineraryPlan) (string, error) {
	if s.repository == nil {
		return "", &PlannerServiceError{
			Op:  "save_itinerary",
			Err: fmt.Errorf("persistence is not configured"),
		}
	}
	if plan.UserID == "" {
		return "", &ValidationError{Field: "userId", Message: "owner identifier is required"}
	}

	itineraryID, err := s.repository.Create(ctx, plan)
	if err != nil {
		return "", &PlannerServiceError{
			Op:  "save_itinerary",
			Err: err,
		}
	}

	return itineraryID, nil
}

// GetPlan loads a saved plan
func (s *PlannerServiceImpl) GetPlan(ctx context.Context, userID, itineraryID string) (*domain.ItineraryPlan, error) {
	if s.repository == nil {
		return nil, &PlannerServiceError{
			Op:  "get_itinerary",
			Err: fmt.Errorf("persistence is not configured"),
		}
	}

	plan, err := s.repository.GetByID(ctx, userID, itineraryID)
	if err != nil {
		return nil, &PlannerServiceError{
			Op:  "get_itinerary",
			Err: err,
		}
	}

	return plan, nil
}

// ListPlans lists the owner's saved plans
func (s *PlannerServiceImpl) ListPlans(ctx context.Context, userID string) ([]domain.ItinerarySummary, error) {
	if s.repository == nil {
		return nil, &PlannerServiceError{
			Op:  "list_itineraries",
			Err: fmt.Errorf("persistence is not configured"),
		}
	}

	summaries, err := s.repository.List(ctx, userID)
	if err != nil {
		return nil, &PlannerServiceError{
			Op:  "list_itineraries",
			Err: err,
		}
	}

	return summaries, nil
}

// DeletePlan removes a saved plan
func (s *PlannerServiceImpl) DeletePlan(ctx context.Context, userID, itineraryID string) error {
	if s.repository == nil {
		return &PlannerServiceError{
			Op:  "delete_itinerary",
			Err: fmt.Errorf("persistence is not configured"),
		}
	}

	if err := s.repository.Delete(ctx, userID, itineraryID); err != nil {
		return &PlannerServiceError{
			Op:  "delete_itinerary",
			Err: err,
		}
	}

	return nil
}

// validateTripRequest rejects unusable trip requests before any provider call
func validateTripRequest(req domain.TripRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return &ValidationError{Field: "destination", Message: "destination is required"}
	}
	if req.Days <= 0 {
		return &ValidationError{Field: "days", Message: "days must be a positive integer"}
	}
	if req.Budget < 0 {
		return &ValidationError{Field: "budget", Message: "budget must not be negative"}
	}
	return nil
}
