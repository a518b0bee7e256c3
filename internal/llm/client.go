package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// completionTemperature is fixed for all calls: the planner wants stable,
// reproducible JSON rather than creative prose.
const completionTemperature = 0.35

// Client is a minimal chat-completion client for DeepSeek-compatible APIs
type Client struct {
	apiKey     string
	endpoint   string
	modelID    string
	httpClient *http.Client
}

// Config holds configuration for the chat-completion client
type Config struct {
	APIKey   string
	Endpoint string
	ModelID  string
	Timeout  time.Duration
}

// DefaultConfig returns a default configuration for the chat-completion client
func DefaultConfig() *Config {
	return &Config{
		Endpoint: "https://api.deepseek.com/v1",
		ModelID:  "deepseek-chat",
		Timeout:  60 * time.Second,
	}
}

// NewClient creates a new chat-completion client
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	return &Client{
		apiKey:   config.APIKey,
		endpoint: strings.TrimRight(config.Endpoint, "/"),
		modelID:  config.ModelID,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Configured reports whether the client has credentials to call the provider
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionRequest struct {
	Model          string         `json:"model"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
	Messages       []chatMessage  `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a single non-streaming chat completion and returns the
// content of the first choice. The response_format constraint asks the
// provider for a strict JSON object.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	payload := completionRequest{
		Model:          c.modelID,
		Temperature:    completionTemperature,
		ResponseFormat: responseFormat{Type: "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	requestData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/chat/completions", bytes.NewBuffer(requestData))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send completion request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var completion completionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", &ParseError{
			Op:  "unmarshal_completion_envelope",
			Err: err,
		}
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return completion.Choices[0].Message.Content, nil
}
