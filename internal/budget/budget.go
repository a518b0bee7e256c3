// Package budget derives spend aggregates from expense lists.
package budget

import "github.com/Xvidddd/AI-Travel-Planner/internal/domain"

// ComputeSnapshot derives a BudgetSnapshot from the full expense list and the
// total budget. It is a pure function: every call re-derives the snapshot from
// scratch, which keeps mutations race-free at O(n) per call.
//
// All six category buckets are always present, even at zero. UsagePercent is
// clamped to [0,100] and is 0 whenever totalBudget <= 0. Remaining never goes
// negative: overspend is only visible through Used > Total.
func ComputeSnapshot(expenses []domain.ExpenseEntry, totalBudget float64) domain.BudgetSnapshot {
	byCategory := make(map[string]float64, len(domain.ExpenseCategories))
	for _, category := range domain.ExpenseCategories {
		byCategory[category] = 0
	}

	var used float64
	for _, expense := range expenses {
		used += expense.Amount
		byCategory[expense.Category] += expense.Amount
	}

	remaining := totalBudget - used
	if remaining < 0 {
		remaining = 0
	}

	var usagePercent float64
	if totalBudget > 0 {
		usagePercent = used / totalBudget * 100
		if usagePercent > 100 {
			usagePercent = 100
		}
	}

	return domain.BudgetSnapshot{
		Total:        totalBudget,
		Used:         used,
		Remaining:    remaining,
		UsagePercent: usagePercent,
		ByCategory:   byCategory,
	}
}
