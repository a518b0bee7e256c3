// Package geocode resolves place names to coordinates through the Amap
// web-service API. Resolution is best-effort map decoration: individual
// lookups may fail without failing the batch.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	amapGeocodeURL = "https://restapi.amap.com/v3/geocode/geo"

	// maxBatchQueries caps one batch; extra queries are silently dropped
	maxBatchQueries = 10
)

// Result is the outcome of one batch: resolved queries map to a
// [longitude, latitude] pair, unresolved ones are listed in Failed.
type Result struct {
	Resolved map[string][2]float64 `json:"coordinates"`
	Failed   []string              `json:"failed,omitempty"`
}

// Client calls the Amap geocoding API
type Client struct {
	key        string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new geocoding client
func NewClient(key string) *Client {
	return &Client{
		key:     key,
		baseURL: amapGeocodeURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Configured reports whether the client has an API key
func (c *Client) Configured() bool {
	return c != nil && c.key != ""
}

// amapResponse is the provider envelope; status "1" means success
type amapResponse struct {
	Status   string `json:"status"`
	Geocodes []struct {
		Location string `json:"location"`
	} `json:"geocodes"`
}

// GeocodeBatch resolves up to ten deduplicated, trimmed queries. Per-query
// failures (HTTP errors, provider failure status, malformed locations) are
// swallowed: the query simply lands in Failed. No retry, no backoff.
func (c *Client) GeocodeBatch(ctx context.Context, queries []string) *Result {
	result := &Result{
		Resolved: make(map[string][2]float64),
	}

	for _, query := range dedupeQueries(queries) {
		coordinates, err := c.geocodeOne(ctx, query)
		if err != nil {
			result.Failed = append(result.Failed, query)
			continue
		}
		result.Resolved[query] = coordinates
	}

	return result
}

// geocodeOne resolves a single address query
func (c *Client) geocodeOne(ctx context.Context, query string) ([2]float64, error) {
	var coordinates [2]float64

	requestURL := fmt.Sprintf("%s?key=%s&address=%s", c.baseURL, url.QueryEscape(c.key), url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return coordinates, fmt.Errorf("failed to create geocode request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return coordinates, fmt.Errorf("failed to send geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return coordinates, fmt.Errorf("geocode API returned status %d", resp.StatusCode)
	}

	var data amapResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return coordinates, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	if data.Status != "1" || len(data.Geocodes) == 0 {
		return coordinates, fmt.Errorf("geocode lookup failed for %q", query)
	}

	return parseLocation(data.Geocodes[0].Location)
}

// parseLocation splits an Amap "lng,lat" location string into a numeric pair
func parseLocation(location string) ([2]float64, error) {
	var coordinates [2]float64

	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return coordinates, fmt.Errorf("malformed location %q", location)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return coordinates, fmt.Errorf("malformed longitude in %q", location)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return coordinates, fmt.Errorf("malformed latitude in %q", location)
	}

	coordinates[0] = lng
	coordinates[1] = lat
	return coordinates, nil
}

// dedupeQueries trims queries, drops empties and duplicates, and caps the batch
func dedupeQueries(queries []string) []string {
	seen := make(map[string]struct{}, len(queries))
	var deduped []string
	for _, query := range queries {
		trimmed := strings.TrimSpace(query)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		deduped = append(deduped, trimmed)
		if len(deduped) == maxBatchQueries {
			break
		}
	}
	return deduped
}
