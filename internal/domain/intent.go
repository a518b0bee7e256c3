package domain

// PlannerIntent is a sparse partial of TripRequest extracted from free text.
// Every field is optional; absent fields keep their zero value and are
// signalled through pointers so callers can tell "absent" from "zero".
type PlannerIntent struct {
	Destination string   `json:"destination,omitempty"`
	Days        *int     `json:"days,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	Personas    []string `json:"personas,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
}

// ExpenseIntent is a sparse expense record extracted from free text
type ExpenseIntent struct {
	Category string   `json:"category,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
	Note     string   `json:"note,omitempty"`
}
