package domain

// TripRequest holds the user-specified trip parameters before AI expansion
type TripRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Budget      float64  `json:"budget"`
	Personas    []string `json:"personas"`
	Preferences []string `json:"preferences"`
}

// RawActivity is a single activity as returned by the LLM provider
type RawActivity struct {
	Title   string   `json:"title"`
	Detail  string   `json:"detail"`
	POI     string   `json:"poi,omitempty"`
	Address string   `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// RawDay is a single day as returned by the LLM provider
type RawDay struct {
	Day   int           `json:"day"`
	Focus string        `json:"focus"`
	Items []RawActivity `json:"items"`
}

// PlannerLLMResponse is the validated shape of a provider completion
type PlannerLLMResponse struct {
	Summary string   `json:"summary"`
	Days    []RawDay `json:"days"`
}

// ActivityItem is one scheduled activity inside a day plan
type ActivityItem struct {
	Title        string   `json:"title"`
	Detail       string   `json:"detail"`
	Time         string   `json:"time"`
	CostEstimate *float64 `json:"costEstimate,omitempty"`
	POI          string   `json:"poi,omitempty"`
	Address      string   `json:"address,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
}

// HasCoordinates reports whether the activity carries a usable coordinate pair
func (a ActivityItem) HasCoordinates() bool {
	return a.Lat != nil && a.Lng != nil
}

// HasPlaceMeta reports whether the activity carries place metadata for geocoding
func (a ActivityItem) HasPlaceMeta() bool {
	return a.POI != "" || a.Address != ""
}

// DayPlan is one day of an itinerary, day indexes are 1-based
type DayPlan struct {
	Day        int            `json:"day"`
	Summary    string         `json:"summary"`
	Activities []ActivityItem `json:"activities"`
}

// BudgetBreakdown is one category line of an optional plan-level budget split
type BudgetBreakdown struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// ItineraryPlan is the full generated or persisted trip plan.
// ID is empty until the plan has been saved.
type ItineraryPlan struct {
	ID           string            `json:"id,omitempty"`
	Destination  string            `json:"destination"`
	Days         int               `json:"days"`
	Budget       float64           `json:"budget"`
	Personas     []string          `json:"personas"`
	Preferences  []string          `json:"preferences"`
	Summary      string            `json:"summary"`
	Itinerary    []DayPlan         `json:"itinerary"`
	Currency     string            `json:"currency,omitempty"`
	Title        string            `json:"title,omitempty"`
	UserID       string            `json:"userId,omitempty"`
	BudgetDetail []BudgetBreakdown `json:"budgetDetail,omitempty"`
}

// ItinerarySummary is the list-view projection of a saved plan
type ItinerarySummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	Days        int     `json:"days"`
	Budget      float64 `json:"budget"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}
