package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Xvidddd/AI-Travel-Planner/internal/database"
	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
)

// aiVersion tags every persisted day with the generator revision that produced it
const aiVersion = "aurora-beta"

// PostgresItineraryRepository implements ItineraryRepository using PostgreSQL
type PostgresItineraryRepository struct {
	db *database.PostgresDB
}

// NewPostgresItineraryRepository creates a new PostgreSQL itinerary repository
func NewPostgresItineraryRepository(db *database.PostgresDB) *PostgresItineraryRepository {
	return &PostgresItineraryRepository{
		db: db,
	}
}

// activityLocation is the JSONB shape stored in the activities.location column
type activityLocation struct {
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	POI     string   `json:"poi,omitempty"`
	Address string   `json:"address,omitempty"`
}

// Create saves a plan, its day rows and its activity rows inside one
// transaction, so a failure partway through leaves nothing behind.
func (r *PostgresItineraryRepository) Create(ctx context.Context, plan *domain.ItineraryPlan) (string, error) {
	title := plan.Title
	if title == "" {
		title = fmt.Sprintf("%s AI 行程", plan.Destination)
	}
	currency := plan.Currency
	if currency == "" {
		currency = "CNY"
	}

	var itineraryID string
	err := r.db.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO itineraries (user_id, title, destination, days, budget, currency, personas, preferences, summary, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'draft')
			RETURNING id
		`, plan.UserID, title, plan.Destination, plan.Days, plan.Budget, currency,
			plan.Personas, plan.Preferences, plan.Summary).Scan(&itineraryID)
		if err != nil {
			return fmt.Errorf("failed to insert itinerary: %w", err)
		}

		for _, day := range plan.Itinerary {
			var dayID string
			err = tx.QueryRow(ctx, `
				INSERT INTO itinerary_days (itinerary_id, day_index, focus, summary, ai_version)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id
			`, itineraryID, day.Day, day.Summary, day.Summary, aiVersion).Scan(&dayID)
			if err != nil {
				return fmt.Errorf("failed to insert itinerary day %d: %w", day.Day, err)
			}

			for _, activity := range day.Activities {
				activityType := "custom"
				if activity.HasPlaceMeta() {
					activityType = "poi"
				}

				var location []byte
				if activity.HasCoordinates() || activity.HasPlaceMeta() {
					loc := activityLocation{
						POI:     activity.POI,
						Address: activity.Address,
					}
					if activity.HasCoordinates() {
						loc.Lat = activity.Lat
						loc.Lng = activity.Lng
					}
					location, err = json.Marshal(loc)
					if err != nil {
						return fmt.Errorf("failed to marshal activity location: %w", err)
					}
				}

				_, err = tx.Exec(ctx, `
					INSERT INTO activities (day_id, type, title, detail, start_time, cost_estimate, location)
					VALUES ($1, $2, $3, $4, $5, $6, $7)
				`, dayID, activityType, activity.Title, activity.Detail, activity.Time, activity.CostEstimate, location)
				if err != nil {
					return fmt.Errorf("failed to insert activity: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	plan.ID = itineraryID
	return itineraryID, nil
}

// List retrieves the owner's itinerary summaries, newest first
func (r *PostgresItineraryRepository) List(ctx context.Context, userID string) ([]domain.ItinerarySummary, error) {
	rows, err := r.db.GetPool().Query(ctx, `
		SELECT id, title, destination, days, budget, currency, status, created_at
		FROM itineraries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query itineraries: %w", err)
	}
	defer rows.Close()

	summaries := []domain.ItinerarySummary{}
	for rows.Next() {
		var summary domain.ItinerarySummary
		var createdAt time.Time
		if err := rows.Scan(&summary.ID, &summary.Title, &summary.Destination, &summary.Days,
			&summary.Budget, &summary.Currency, &summary.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan itinerary: %w", err)
		}
		summary.CreatedAt = createdAt.Format(time.RFC3339)
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating itineraries: %w", err)
	}

	return summaries, nil
}

// GetByID retrieves one plan with its days and activities reshaped back into
// the ItineraryPlan structure
func (r *PostgresItineraryRepository) GetByID(ctx context.Context, userID, itineraryID string) (*domain.ItineraryPlan, error) {
	plan := &domain.ItineraryPlan{UserID: userID}
	err := r.db.GetPool().QueryRow(ctx, `
		SELECT id, title, destination, days, budget, currency, personas, preferences, summary
		FROM itineraries
		WHERE id = $1 AND user_id = $2
	`, itineraryID, userID).Scan(
		&plan.ID, &plan.Title, &plan.Destination, &plan.Days, &plan.Budget,
		&plan.Currency, &plan.Personas, &plan.Preferences, &plan.Summary,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("itinerary %s: %w", itineraryID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get itinerary: %w", err)
	}

	rows, err := r.db.GetPool().Query(ctx, `
		SELECT d.day_index, d.focus, a.title, a.detail, a.start_time, a.cost_estimate, a.location
		FROM itinerary_days d
		LEFT JOIN activities a ON a.day_id = d.id
		WHERE d.itinerary_id = $1
		ORDER BY d.day_index, a.id
	`, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query itinerary days: %w", err)
	}
	defer rows.Close()

	dayMap := make(map[int]*domain.DayPlan)
	var dayOrder []int
	for rows.Next() {
		var dayIndex int
		var focus string
		var title, detail, startTime *string
		var costEstimate *float64
		var location []byte
		if err := rows.Scan(&dayIndex, &focus, &title, &detail, &startTime, &costEstimate, &location); err != nil {
			return nil, fmt.Errorf("failed to scan itinerary day: %w", err)
		}

		dayPlan, ok := dayMap[dayIndex]
		if !ok {
			dayPlan = &domain.DayPlan{
				Day:        dayIndex,
				Summary:    focus,
				Activities: []domain.ActivityItem{},
			}
			dayMap[dayIndex] = dayPlan
			dayOrder = append(dayOrder, dayIndex)
		}

		// LEFT JOIN yields a null activity row for days without activities
		if title == nil {
			continue
		}

		activity := domain.ActivityItem{
			Title:        *title,
			CostEstimate: costEstimate,
		}
		if detail != nil {
			activity.Detail = *detail
		}
		if startTime != nil {
			activity.Time = *startTime
		}
		if len(location) > 0 {
			var loc activityLocation
			if err := json.Unmarshal(location, &loc); err == nil {
				activity.POI = loc.POI
				activity.Address = loc.Address
				activity.Lat = loc.Lat
				activity.Lng = loc.Lng
			}
		}
		dayPlan.Activities = append(dayPlan.Activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating itinerary days: %w", err)
	}

	plan.Itinerary = make([]domain.DayPlan, 0, len(dayOrder))
	for _, dayIndex := range dayOrder {
		plan.Itinerary = append(plan.Itinerary, *dayMap[dayIndex])
	}

	return plan, nil
}

// Delete removes an itinerary matched by id and owner. Whether days and
// activities go with it depends on the store's foreign-key configuration.
func (r *PostgresItineraryRepository) Delete(ctx context.Context, userID, itineraryID string) error {
	commandTag, err := r.db.GetPool().Exec(ctx, `
		DELETE FROM itineraries WHERE id = $1 AND user_id = $2
	`, itineraryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete itinerary: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("itinerary %s: %w", itineraryID, ErrNotFound)
	}

	return nil
}
