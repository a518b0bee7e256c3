package model

import "github.com/Xvidddd/AI-Travel-Planner/internal/domain"

// ErrorDetail describes one field-level problem in a rejected request
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// SaveItineraryResponse carries the id of a newly persisted plan
type SaveItineraryResponse struct {
	ItineraryID string `json:"itineraryId"`
}

// ItineraryListResponse wraps the owner's saved plan summaries
type ItineraryListResponse struct {
	Itineraries []domain.ItinerarySummary `json:"itineraries"`
}

// VoiceRequest carries a speech transcript for intent extraction
type VoiceRequest struct {
	Transcript string `json:"transcript"`
}

// PlannerIntentResponse wraps an extracted trip intent
type PlannerIntentResponse struct {
	Intent *domain.PlannerIntent `json:"intent"`
}

// ExpenseIntentResponse wraps an extracted expense intent
type ExpenseIntentResponse struct {
	Intent *domain.ExpenseIntent `json:"intent"`
}

// GeocodeRequest carries one query or a batch of queries to resolve. When no
// explicit query is given, Destination and Text feed the place-extraction
// heuristic instead.
type GeocodeRequest struct {
	Query       string   `json:"query,omitempty"`
	Queries     []string `json:"queries,omitempty"`
	Destination string   `json:"destination,omitempty"`
	Text        string   `json:"text,omitempty"`
}

// CreateExpenseRequest is the payload for recording a spend
type CreateExpenseRequest struct {
	UserID      string  `json:"userId"`
	ItineraryID string  `json:"itineraryId"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Note        string  `json:"note,omitempty"`
}

// ExpenseResponse wraps one persisted expense entry
type ExpenseResponse struct {
	Expense *domain.ExpenseEntry `json:"expense"`
}

// ExpenseListResponse wraps an itinerary's expenses and the derived snapshot
type ExpenseListResponse struct {
	Expenses []domain.ExpenseEntry  `json:"expenses"`
	Budget   *domain.BudgetSnapshot `json:"budget,omitempty"`
}

// HealthResponse reports service identity and liveness
type HealthResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
