// Package planner converts raw provider itineraries into the persisted plan shape.
package planner

import (
	"fmt"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
)

// Normalize reshapes a raw LLM response into an ItineraryPlan for the trip
// request it was generated from. Day and item counts are preserved exactly.
// The display time is a synthetic "Day {n}" label, not a clock time.
func Normalize(raw *domain.PlannerLLMResponse, req domain.TripRequest) *domain.ItineraryPlan {
	plan := &domain.ItineraryPlan{
		Destination: req.Destination,
		Days:        req.Days,
		Budget:      req.Budget,
		Personas:    req.Personas,
		Preferences: req.Preferences,
		Summary:     raw.Summary,
		Itinerary:   make([]domain.DayPlan, 0, len(raw.Days)),
	}

	for _, day := range raw.Days {
		dayPlan := domain.DayPlan{
			Day:        day.Day,
			Summary:    day.Focus,
			Activities: make([]domain.ActivityItem, 0, len(day.Items)),
		}

		for index, item := range day.Items {
			activity := domain.ActivityItem{
				Title:   item.Title,
				Detail:  item.Detail,
				Time:    fmt.Sprintf("Day %d", day.Day),
				POI:     item.POI,
				Address: item.Address,
			}
			if activity.Title == "" {
				activity.Title = fmt.Sprintf("活动 %d", index+1)
			}
			if activity.Detail == "" {
				activity.Detail = item.Title
			}
			if activity.Detail == "" {
				activity.Detail = "AI 生成内容"
			}

			// Coordinates only travel as a pair; a lone lat or lng is dropped
			// and the activity keeps just its place metadata for geocoding.
			if item.Lat != nil && item.Lng != nil {
				activity.Lat = item.Lat
				activity.Lng = item.Lng
			}

			dayPlan.Activities = append(dayPlan.Activities, activity)
		}

		plan.Itinerary = append(plan.Itinerary, dayPlan)
	}

	return plan
}
