package repository

import (
	"context"
	"fmt"

	"github.com/Xvidddd/AI-Travel-Planner/internal/database"
	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
)

// PostgresExpenseRepository implements ExpenseRepository using PostgreSQL
type PostgresExpenseRepository struct {
	db *database.PostgresDB
}

// NewPostgresExpenseRepository creates a new PostgreSQL expense repository
func NewPostgresExpenseRepository(db *database.PostgresDB) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{
		db: db,
	}
}

// Create persists an expense entry
func (r *PostgresExpenseRepository) Create(ctx context.Context, entry *domain.ExpenseEntry) error {
	var note *string
	if entry.Note != "" {
		note = &entry.Note
	}

	_, err := r.db.GetPool().Exec(ctx, `
		INSERT INTO expenses (id, user_id, itinerary_id, category, amount, note, inserted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.UserID, entry.ItineraryID, entry.Category, entry.Amount, note, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	return nil
}

// ListByItinerary retrieves the newest expenses for a user and itinerary
func (r *PostgresExpenseRepository) ListByItinerary(ctx context.Context, userID, itineraryID string, limit int) ([]domain.ExpenseEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.GetPool().Query(ctx, `
		SELECT id, category, amount, note, inserted_at
		FROM expenses
		WHERE user_id = $1 AND itinerary_id = $2
		ORDER BY inserted_at DESC
		LIMIT $3
	`, userID, itineraryID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.ExpenseEntry{}
	for rows.Next() {
		entry := domain.ExpenseEntry{
			UserID:      userID,
			ItineraryID: itineraryID,
		}
		var note *string
		if err := rows.Scan(&entry.ID, &entry.Category, &entry.Amount, &note, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if note != nil {
			entry.Note = *note
		}
		expenses = append(expenses, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

// Delete removes an expense matched by id, owner and itinerary
func (r *PostgresExpenseRepository) Delete(ctx context.Context, userID, itineraryID, expenseID string) error {
	commandTag, err := r.db.GetPool().Exec(ctx, `
		DELETE FROM expenses WHERE id = $1 AND user_id = $2 AND itinerary_id = $3
	`, expenseID, userID, itineraryID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, ErrNotFound)
	}

	return nil
}
