package planner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
)

func tripRequest() domain.TripRequest {
	return domain.TripRequest{
		Destination: "东京",
		Days:        2,
		Budget:      15000,
		Personas:    []string{"家庭"},
		Preferences: []string{"亲子"},
	}
}

func TestNormalizePreservesCounts(t *testing.T) {
	raw := &domain.PlannerLLMResponse{
		Summary: "test",
		Days: []domain.RawDay{
			{Day: 1, Focus: "城市漫步", Items: []domain.RawActivity{{Title: "a"}, {Title: "b"}, {Title: "c"}}},
			{Day: 2, Focus: "温泉", Items: []domain.RawActivity{{Title: "d"}}},
		},
	}

	plan := Normalize(raw, tripRequest())

	require.Len(t, plan.Itinerary, 2)
	assert.Len(t, plan.Itinerary[0].Activities, 3)
	assert.Len(t, plan.Itinerary[1].Activities, 1)
	assert.Equal(t, "东京", plan.Destination)
	assert.Equal(t, 2, plan.Days)
	assert.Equal(t, float64(15000), plan.Budget)
	assert.Equal(t, "test", plan.Summary)
}

func TestNormalizeTimeLabels(t *testing.T) {
	raw := &domain.PlannerLLMResponse{
		Days: []domain.RawDay{
			{Day: 3, Focus: "购物", Items: []domain.RawActivity{{Title: "银座"}}},
		},
	}

	plan := Normalize(raw, tripRequest())

	assert.Equal(t, "Day 3", plan.Itinerary[0].Activities[0].Time)
}

func TestNormalizeTitleDefaults(t *testing.T) {
	items := make([]domain.RawActivity, 3)
	raw := &domain.PlannerLLMResponse{
		Days: []domain.RawDay{{Day: 1, Items: items}},
	}

	plan := Normalize(raw, tripRequest())

	for i, activity := range plan.Itinerary[0].Activities {
		assert.Equal(t, fmt.Sprintf("活动 %d", i+1), activity.Title)
		assert.Equal(t, "AI 生成内容", activity.Detail)
	}
}

func TestNormalizeDetailPriority(t *testing.T) {
	raw := &domain.PlannerLLMResponse{
		Days: []domain.RawDay{{
			Day: 1,
			Items: []domain.RawActivity{
				{Title: "浅草寺", Detail: "清晨参拜"},
				{Title: "晴空塔"},
				{},
			},
		}},
	}

	plan := Normalize(raw, tripRequest())

	activities := plan.Itinerary[0].Activities
	assert.Equal(t, "清晨参拜", activities[0].Detail)
	assert.Equal(t, "晴空塔", activities[1].Detail)
	assert.Equal(t, "AI 生成内容", activities[2].Detail)
}

func TestNormalizeCoordinatesPairOnly(t *testing.T) {
	lat := 35.6586
	lng := 139.7454
	raw := &domain.PlannerLLMResponse{
		Days: []domain.RawDay{{
			Day: 1,
			Items: []domain.RawActivity{
				{Title: "东京塔", Lat: &lat, Lng: &lng},
				{Title: "只有纬度", Lat: &lat, POI: "未知地点"},
			},
		}},
	}

	plan := Normalize(raw, tripRequest())

	withCoords := plan.Itinerary[0].Activities[0]
	require.True(t, withCoords.HasCoordinates())
	assert.Equal(t, lat, *withCoords.Lat)
	assert.Equal(t, lng, *withCoords.Lng)

	// A lone lat is dropped; place metadata survives for geocoding
	withoutCoords := plan.Itinerary[0].Activities[1]
	assert.False(t, withoutCoords.HasCoordinates())
	assert.Nil(t, withoutCoords.Lat)
	assert.Equal(t, "未知地点", withoutCoords.POI)
}
