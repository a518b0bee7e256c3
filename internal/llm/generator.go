package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
)

// Placeholder texts used when the provider omits a field
const (
	defaultFocus  = "AI 行程亮点"
	defaultDetail = "AI 生成内容"
)

// ItineraryGenerator produces a raw day-by-day itinerary for a trip request.
// The variant (mock or chat-completion) is selected once at process start.
type ItineraryGenerator interface {
	Generate(ctx context.Context, req domain.TripRequest) (*domain.PlannerLLMResponse, error)
}

// MockGenerator returns a deterministic placeholder itinerary. It lets the
// rest of the application be exercised without any provider credentials.
type MockGenerator struct{}

// NewMockGenerator creates a mock itinerary generator
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate builds one placeholder activity per requested day
func (g *MockGenerator) Generate(_ context.Context, req domain.TripRequest) (*domain.PlannerLLMResponse, error) {
	days := make([]domain.RawDay, 0, req.Days)
	for i := 0; i < req.Days; i++ {
		days = append(days, domain.RawDay{
			Day:   i + 1,
			Focus: "探索城市 + 亲子活动",
			Items: []domain.RawActivity{
				{
					Title:  "AI 生成内容占位",
					Detail: "占位描述",
					POI:    req.Destination,
				},
			},
		})
	}

	return &domain.PlannerLLMResponse{
		Summary: fmt.Sprintf("%s 的 %s %d 天行程", strings.Join(req.Personas, "/"), req.Destination, req.Days),
		Days:    days,
	}, nil
}

const plannerSystemPrompt = `你是 AuroraVoyage 的 AI 旅行规划师，需要返回严格的 JSON，字段含义如下：
{
  "summary": string,
  "days": [
    {
      "day": number,
      "focus": string,
      "items": [
        {
          "title": string,
          "detail": string,
          "poi": string (必须是真实地点或景点名称),
          "address": string,
          "lat": number (可选，没有则留空),
          "lng": number (可选，没有则留空)
        }
      ]
    }
  ]
}
若无法提供精确经纬度，可留空 lat/lng，但必须提供可用于地图定位的 poi 或 address。`

// ChatCompletionGenerator builds itineraries through a chat-completion provider
type ChatCompletionGenerator struct {
	client *Client
}

// NewChatCompletionGenerator creates a provider-backed itinerary generator
func NewChatCompletionGenerator(client *Client) *ChatCompletionGenerator {
	return &ChatCompletionGenerator{client: client}
}

// Generate sends one completion request and validates the response shape
func (g *ChatCompletionGenerator) Generate(ctx context.Context, req domain.TripRequest) (*domain.PlannerLLMResponse, error) {
	userPrompt := fmt.Sprintf("目的地：%s\n出行天数：%d\n预算：%s\n同行角色：%s\n偏好：%s",
		req.Destination,
		req.Days,
		strconv.FormatFloat(req.Budget, 'f', -1, 64),
		strings.Join(req.Personas, ", "),
		strings.Join(req.Preferences, ", "),
	)

	content, err := g.client.Complete(ctx, plannerSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	return parsePlannerResponse(content)
}

// rawPlannerResponse mirrors the provider JSON before normalization. Lat/lng
// are decoded loosely because providers occasionally return them as strings.
type rawPlannerResponse struct {
	Summary string `json:"summary"`
	Days    []struct {
		Day   int    `json:"day"`
		Focus string `json:"focus"`
		Items []struct {
			Title   string      `json:"title"`
			Detail  string      `json:"detail"`
			POI     string      `json:"poi"`
			Address string      `json:"address"`
			Lat     interface{} `json:"lat"`
			Lng     interface{} `json:"lng"`
		} `json:"items"`
	} `json:"days"`
}

// parsePlannerResponse is the strict parse-then-validate boundary: nothing
// from the provider is trusted past this function.
func parsePlannerResponse(content string) (*domain.PlannerLLMResponse, error) {
	var raw rawPlannerResponse
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, &ParseError{
			Op:  "unmarshal_planner_content",
			Err: err,
		}
	}

	response := &domain.PlannerLLMResponse{
		Summary: raw.Summary,
		Days:    make([]domain.RawDay, 0, len(raw.Days)),
	}

	for dayIndex, day := range raw.Days {
		normalized := domain.RawDay{
			Day:   day.Day,
			Focus: day.Focus,
			Items: make([]domain.RawActivity, 0, len(day.Items)),
		}
		if normalized.Day == 0 {
			normalized.Day = dayIndex + 1
		}
		if normalized.Focus == "" {
			normalized.Focus = defaultFocus
		}

		for itemIndex, item := range day.Items {
			activity := domain.RawActivity{
				Title:   item.Title,
				Detail:  item.Detail,
				POI:     item.POI,
				Address: item.Address,
				Lat:     sanitizeNumber(item.Lat),
				Lng:     sanitizeNumber(item.Lng),
			}
			if activity.Title == "" {
				activity.Title = fmt.Sprintf("活动 %d", itemIndex+1)
			}
			if activity.Detail == "" {
				activity.Detail = item.Title
			}
			if activity.Detail == "" {
				activity.Detail = defaultDetail
			}
			normalized.Items = append(normalized.Items, activity)
		}

		response.Days = append(response.Days, normalized)
	}

	return response, nil
}

// sanitizeNumber coerces a loosely-typed coordinate to a finite float64,
// returning nil when the value is absent, non-numeric or non-finite
func sanitizeNumber(value interface{}) *float64 {
	var num float64
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		num = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		num = parsed
	default:
		return nil
	}

	if math.IsNaN(num) || math.IsInf(num, 0) {
		return nil
	}
	return &num
}
