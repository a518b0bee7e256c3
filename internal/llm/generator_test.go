package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
)

func TestMockGeneratorDeterministic(t *testing.T) {
	generator := NewMockGenerator()
	req := domain.TripRequest{
		Destination: "东京",
		Days:        3,
		Budget:      15000,
		Personas:    []string{"家庭"},
		Preferences: []string{"亲子"},
	}

	response, err := generator.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "家庭 的 东京 3 天行程", response.Summary)
	require.Len(t, response.Days, 3)
	for i, day := range response.Days {
		assert.Equal(t, i+1, day.Day)
		require.Len(t, day.Items, 1)
		assert.Equal(t, "东京", day.Items[0].POI)
	}
}

func TestMockGeneratorJoinsPersonas(t *testing.T) {
	generator := NewMockGenerator()
	req := domain.TripRequest{
		Destination: "大阪",
		Days:        1,
		Personas:    []string{"家庭", "孩子"},
	}

	response, err := generator.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "家庭/孩子 的 大阪 1 天行程", response.Summary)
}

// completionServer returns an httptest server that answers every chat
// completion with the given content string
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 0.35, payload["temperature"])

		response := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
}

func testClient(endpoint string) *Client {
	return NewClient(&Config{
		APIKey:   "test-key",
		Endpoint: endpoint,
		ModelID:  "deepseek-chat",
		Timeout:  5 * time.Second,
	})
}

func TestChatCompletionGeneratorParsesResponse(t *testing.T) {
	content := `{
		"summary": "东京之旅",
		"days": [
			{"day": 1, "focus": "城市", "items": [
				{"title": "浅草寺", "detail": "参拜", "poi": "浅草寺", "lat": 35.71, "lng": 139.79}
			]}
		]
	}`
	server := completionServer(t, content)
	defer server.Close()

	generator := NewChatCompletionGenerator(testClient(server.URL))
	response, err := generator.Generate(context.Background(), domain.TripRequest{Destination: "东京", Days: 1})
	require.NoError(t, err)

	assert.Equal(t, "东京之旅", response.Summary)
	require.Len(t, response.Days, 1)
	item := response.Days[0].Items[0]
	assert.Equal(t, "浅草寺", item.Title)
	require.NotNil(t, item.Lat)
	assert.Equal(t, 35.71, *item.Lat)
}

func TestChatCompletionGeneratorFillsDefaults(t *testing.T) {
	content := `{
		"summary": "s",
		"days": [
			{"items": [{"detail": ""}, {"title": "有标题"}]}
		]
	}`
	server := completionServer(t, content)
	defer server.Close()

	generator := NewChatCompletionGenerator(testClient(server.URL))
	response, err := generator.Generate(context.Background(), domain.TripRequest{Destination: "东京", Days: 1})
	require.NoError(t, err)

	day := response.Days[0]
	assert.Equal(t, 1, day.Day)
	assert.Equal(t, "AI 行程亮点", day.Focus)
	assert.Equal(t, "活动 1", day.Items[0].Title)
	assert.Equal(t, "AI 生成内容", day.Items[0].Detail)
	assert.Equal(t, "有标题", day.Items[1].Title)
	assert.Equal(t, "有标题", day.Items[1].Detail)
}

func TestChatCompletionGeneratorCoercesCoordinates(t *testing.T) {
	content := `{
		"summary": "s",
		"days": [
			{"day": 1, "focus": "f", "items": [
				{"title": "a", "lat": "35.5", "lng": "139.2"},
				{"title": "b", "lat": "not-a-number", "lng": 139.2},
				{"title": "c"}
			]}
		]
	}`
	server := completionServer(t, content)
	defer server.Close()

	generator := NewChatCompletionGenerator(testClient(server.URL))
	response, err := generator.Generate(context.Background(), domain.TripRequest{Destination: "东京", Days: 1})
	require.NoError(t, err)

	items := response.Days[0].Items
	require.NotNil(t, items[0].Lat)
	assert.Equal(t, 35.5, *items[0].Lat)
	assert.Nil(t, items[1].Lat)
	require.NotNil(t, items[1].Lng)
	assert.Nil(t, items[2].Lat)
	assert.Nil(t, items[2].Lng)
}

func TestChatCompletionGeneratorHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, "rate limited")
	}))
	defer server.Close()

	generator := NewChatCompletionGenerator(testClient(server.URL))
	_, err := generator.Generate(context.Background(), domain.TripRequest{Destination: "东京", Days: 1})

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "rate limited")
}

func TestChatCompletionGeneratorEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices": []}`)
	}))
	defer server.Close()

	generator := NewChatCompletionGenerator(testClient(server.URL))
	_, err := generator.Generate(context.Background(), domain.TripRequest{Destination: "东京", Days: 1})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestChatCompletionGeneratorParseError(t *testing.T) {
	server := completionServer(t, "这不是 JSON")
	defer server.Close()

	generator := NewChatCompletionGenerator(testClient(server.URL))
	_, err := generator.Generate(context.Background(), domain.TripRequest{Destination: "东京", Days: 1})

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestChatCompletionGeneratorNotConfigured(t *testing.T) {
	generator := NewChatCompletionGenerator(NewClient(&Config{}))
	_, err := generator.Generate(context.Background(), domain.TripRequest{Destination: "东京", Days: 1})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
