package geocode

import (
	"regexp"
	"strings"
)

// placeKeywords mark a text fragment as a likely geocodable place
var placeKeywords = []string{
	"公园", "公園", "古城", "古镇", "寺", "神社", "神宮", "寺庙",
	"博物馆", "美术馆", "美術館", "塔", "馆", "館",
	"酒店", "旅馆", "旅店", "温泉", "温泉乡", "海滩",
	"乐园", "乐園", "迪士尼", "商场", "百货", "百貨",
	"车站", "車站", "机场", "機場", "港", "湾", "灣", "桥", "橋", "街",
}

var segmentDelimiters = regexp.MustCompile(`[\s、，,。.!；;/\\]+`)

func looksLikePlace(text string) bool {
	if len([]rune(text)) < 2 {
		return false
	}
	for _, keyword := range placeKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// ExtractLocationQueries derives up to three geocoding queries from the trip
// destination and free-text activity segments. Segments are split on common
// delimiters; fragments that do not already mention the destination also get
// a destination-prefixed variant to help disambiguate the lookup.
func ExtractLocationQueries(destination string, segments ...string) []string {
	normalizedDestination := strings.TrimSpace(destination)

	var candidates []string
	if normalizedDestination != "" {
		candidates = append(candidates, normalizedDestination)
	}

	for _, text := range segments {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		candidates = append(candidates, trimmed)

		for _, segment := range segmentDelimiters.Split(trimmed, -1) {
			segment = strings.TrimSpace(segment)
			if len([]rune(segment)) <= 1 {
				continue
			}
			candidates = append(candidates, segment)
			if normalizedDestination != "" && !strings.Contains(segment, normalizedDestination) {
				candidates = append(candidates, normalizedDestination+" "+segment)
			}
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	var queries []string
	for _, candidate := range candidates {
		if !looksLikePlace(candidate) && len([]rune(candidate)) < 3 {
			continue
		}
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		queries = append(queries, candidate)
		if len(queries) == 3 {
			break
		}
	}

	return queries
}
