package domain

import "time"

// ExpenseCategories is the closed set of accepted expense categories
var ExpenseCategories = []string{"餐饮", "交通", "住宿", "娱乐", "购物", "其他"}

// ValidExpenseCategory reports whether category is one of the six known buckets
func ValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ExpenseEntry is a single spend record scoped to a user and an itinerary
type ExpenseEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	ItineraryID string    `json:"-"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BudgetSnapshot is the derived view of spend against a total budget.
// It is recomputed from the full expense list on every mutation, never stored.
type BudgetSnapshot struct {
	Total        float64            `json:"total"`
	Used         float64            `json:"used"`
	Remaining    float64            `json:"remaining"`
	UsagePercent float64            `json:"usagePercent"`
	ByCategory   map[string]float64 `json:"byCategory"`
}
