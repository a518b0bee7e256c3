package llm

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/Xvidddd/AI-Travel-Planner/internal/domain"
)

const plannerIntentPrompt = `你是旅行助手，需要从用户口述中提取旅行计划字段，返回严格的 JSON：
{
  "destination": string (可选),
  "days": number (可选，必须是整数),
  "budget": number (可选，必须是整数，单位人民币元),
  "personas": string[] (可选),
  "preferences": string[] (可选)
}
无法识别的字段直接省略，不要编造内容，只返回 JSON。`

const expenseIntentPrompt = `你是记账助手，需要从用户口述中提取一笔开销，返回严格的 JSON：
{
  "category": string (可选，必须是 餐饮/交通/住宿/娱乐/购物/其他 之一),
  "amount": number (可选，必须是整数，单位人民币元),
  "note": string (可选)
}
无法识别的字段直接省略，不要编造内容，只返回 JSON。`

// IntentParser extracts sparse planner or expense intents from transcripts.
// With no configured provider it degrades to a low-confidence heuristic for
// planner intents; expense intents require the provider.
type IntentParser struct {
	client *Client
}

// NewIntentParser creates an intent parser. client may be unconfigured.
func NewIntentParser(client *Client) *IntentParser {
	return &IntentParser{client: client}
}

// ParsePlannerIntent extracts trip-form fields from a free-text transcript
func (p *IntentParser) ParsePlannerIntent(ctx context.Context, transcript string) (*domain.PlannerIntent, error) {
	if !p.client.Configured() {
		return normalizePlannerIntent(fallbackPlannerIntent(transcript)), nil
	}

	content, err := p.client.Complete(ctx, plannerIntentPrompt, transcript)
	if err != nil {
		return nil, &IntentParseError{
			Op:  "complete_planner_intent",
			Err: err,
		}
	}

	var intent domain.PlannerIntent
	if err := json.Unmarshal([]byte(content), &intent); err != nil {
		return nil, &IntentParseError{
			Op:  "unmarshal_planner_intent",
			Err: err,
		}
	}

	return normalizePlannerIntent(&intent), nil
}

// ParseExpenseIntent extracts expense fields from a free-text transcript
func (p *IntentParser) ParseExpenseIntent(ctx context.Context, transcript string) (*domain.ExpenseIntent, error) {
	if !p.client.Configured() {
		return nil, &IntentParseError{
			Op:  "parse_expense_intent",
			Err: ErrNotConfigured,
		}
	}

	content, err := p.client.Complete(ctx, expenseIntentPrompt, transcript)
	if err != nil {
		return nil, &IntentParseError{
			Op:  "complete_expense_intent",
			Err: err,
		}
	}

	var intent domain.ExpenseIntent
	if err := json.Unmarshal([]byte(content), &intent); err != nil {
		return nil, &IntentParseError{
			Op:  "unmarshal_expense_intent",
			Err: err,
		}
	}

	return normalizeExpenseIntent(&intent), nil
}

// numberPattern matches an integer optionally followed by 万 (ten thousand)
var numberPattern = regexp.MustCompile(`(\d+)\s*(万)?`)

// fallbackPlannerIntent is a heuristic extractor used when no provider key is
// configured. It pattern-matches numbers out of the transcript: the largest
// value of at least 1000 becomes the budget candidate, the smallest positive
// value of at most 30 becomes the day-count candidate. It is not a language
// understanding system and callers must treat the result as low confidence.
func fallbackPlannerIntent(transcript string) *domain.PlannerIntent {
	intent := &domain.PlannerIntent{}

	var budget float64
	var days int
	for _, match := range numberPattern.FindAllStringSubmatch(transcript, -1) {
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		if match[2] == "万" {
			value *= 10000
		}

		if value >= 1000 && value > budget {
			budget = value
		}
		if value > 0 && value <= 30 {
			candidate := int(value)
			if days == 0 || candidate < days {
				days = candidate
			}
		}
	}

	if budget > 0 {
		intent.Budget = &budget
	}
	if days > 0 {
		intent.Days = &days
	}
	if strings.Contains(transcript, "日本") {
		intent.Destination = "日本"
	}

	return intent
}

// normalizePlannerIntent trims strings and drops invalid values so no field
// in the returned intent is present but unusable
func normalizePlannerIntent(intent *domain.PlannerIntent) *domain.PlannerIntent {
	normalized := &domain.PlannerIntent{
		Destination: strings.TrimSpace(intent.Destination),
	}

	if intent.Days != nil && *intent.Days > 0 {
		normalized.Days = intent.Days
	}
	if intent.Budget != nil && *intent.Budget > 0 {
		normalized.Budget = intent.Budget
	}
	normalized.Personas = trimNonEmpty(intent.Personas)
	normalized.Preferences = trimNonEmpty(intent.Preferences)

	return normalized
}

// normalizeExpenseIntent trims strings and drops non-positive amounts
func normalizeExpenseIntent(intent *domain.ExpenseIntent) *domain.ExpenseIntent {
	normalized := &domain.ExpenseIntent{
		Category: strings.TrimSpace(intent.Category),
		Note:     strings.TrimSpace(intent.Note),
	}

	if intent.Amount != nil && *intent.Amount > 0 {
		normalized.Amount = intent.Amount
	}

	return normalized
}

// trimNonEmpty trims every entry and drops the ones that end up empty
func trimNonEmpty(values []string) []string {
	var result []string
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
