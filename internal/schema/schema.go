// Package schema defines the structural contract a generated plan must
// satisfy. The same contract is used twice: rendered as a strict JSON
// schema and handed to the model as a response_format constraint, and
// re-checked here once the response text is parsed, since a constraint
// passed to an external model is advisory until the payload is
// actually validated.
package schema

import (
	"fmt"

	"fit-trainer/internal/dateutil"
	"fit-trainer/internal/model"
)

// DefaultPlanDays is the plan length. One constant drives both the
// generation constraint and the validator, so the schema bound and
// the accepted calendar length cannot drift apart.
const DefaultPlanDays = 28

// PlanDays bounds accepted by ValidatePlanDays.
const (
	minPlanDays = 7
	maxPlanDays = 56
)

var mealNames = []string{"Breakfast", "Lunch", "Dinner"}

// ValidatePlanDays rejects a configured plan length outside [7, 56].
// Checked once at startup so a bad config fails the process, not the
// first request.
func ValidatePlanDays(days int) error {
	if days < minPlanDays || days > maxPlanDays {
		return fmt.Errorf("plan days %d out of range [%d, %d]", days, minPlanDays, maxPlanDays)
	}
	return nil
}

// ResponseFormat builds the response_format body sent with every
// completion request: a strict schema (no undeclared fields anywhere)
// for a plan of exactly days entries.
func ResponseFormat(days int) map[string]any {
	workout := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			// nullable so the key stays present even without a value
			"duration": map[string]any{"type": []string{"integer", "null"}, "minimum": 5, "maximum": 180},
			"items":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 0},
		},
		"required": []string{"duration", "items"},
	}
	meal := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":  map[string]any{"type": "string", "enum": mealNames},
			"items": map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 0},
		},
		"required": []string{"name", "items"},
	}
	day := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"date":    map[string]any{"type": "string", "format": "date"},
			"type":    map[string]any{"type": []string{"string", "null"}, "enum": []string{"rest", "training"}},
			"workout": workout,
			"meals":   map[string]any{"type": "array", "items": meal, "minItems": 3, "maxItems": 3},
		},
		"required": []string{"date", "type", "workout", "meals"},
	}
	return map[string]any{
		"type": "json_schema",
		"json_schema": map[string]any{
			"name":   "fitness_plan",
			"strict": true,
			"schema": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"meta": map[string]any{
						"type":                 "object",
						"additionalProperties": false,
						"properties": map[string]any{
							"startDate": map[string]any{"type": "string", "format": "date"},
						},
						"required": []string{"startDate"},
					},
					"calendar":         map[string]any{"type": "array", "minItems": days, "maxItems": days, "items": day},
					"overridesSummary": map[string]any{"type": []string{"string", "null"}},
				},
				"required": []string{"meta", "calendar", "overridesSummary"},
			},
		},
	}
}

// Validate checks a parsed calendar against the contract: a parseable
// start date, exactly days entries, valid day types, durations in
// range and exactly three meals per day covering Breakfast, Lunch and
// Dinner in any order.
func Validate(cal *model.Calendar, days int) error {
	if cal == nil {
		return fmt.Errorf("nil calendar")
	}
	if _, err := dateutil.ParseDate(cal.Meta.StartDate); err != nil {
		return fmt.Errorf("meta.startDate: %w", err)
	}
	if len(cal.Calendar) != days {
		return fmt.Errorf("calendar has %d days, want %d", len(cal.Calendar), days)
	}
	for i, d := range cal.Calendar {
		if err := validateDay(d); err != nil {
			return fmt.Errorf("day %d: %w", i, err)
		}
	}
	return nil
}

func validateDay(d model.DayPlan) error {
	if _, err := dateutil.ParseDate(d.Date); err != nil {
		return err
	}
	switch d.Type {
	case "", "rest", "training":
	default:
		return fmt.Errorf("bad day type %q", d.Type)
	}
	if dur := d.Workout.Duration; dur != nil && (*dur < 5 || *dur > 180) {
		return fmt.Errorf("workout duration %d out of range [5, 180]", *dur)
	}
	if len(d.Meals) != 3 {
		return fmt.Errorf("%d meals, want 3", len(d.Meals))
	}
	seen := map[string]bool{}
	for _, m := range d.Meals {
		seen[m.Name] = true
	}
	for _, name := range mealNames {
		if !seen[name] {
			return fmt.Errorf("missing meal %q", name)
		}
	}
	return nil
}
