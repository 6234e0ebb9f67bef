package schema

import (
	"encoding/json"
	"fmt"
	"testing"

	"fit-trainer/internal/model"
)

func intPtr(v int) *int { return &v }

func validCalendar(days int) *model.Calendar {
	cal := &model.Calendar{Meta: model.PlanMeta{StartDate: "2025-09-01"}}
	for i := 0; i < days; i++ {
		day := model.DayPlan{
			Date: fmt.Sprintf("2025-09-%02d", (i%28)+1),
			Type: "training",
			Workout: model.Workout{
				Duration: intPtr(45),
				Items:    []string{"3x10 squats"},
			},
			Meals: []model.Meal{
				{Name: "Breakfast", Items: []string{"oats"}},
				{Name: "Lunch", Items: []string{"chicken salad"}},
				{Name: "Dinner", Items: []string{"salmon, rice"}},
			},
		}
		cal.Calendar = append(cal.Calendar, day)
	}
	return cal
}

func TestValidateAccepts(t *testing.T) {
	if err := Validate(validCalendar(DefaultPlanDays), DefaultPlanDays); err != nil {
		t.Fatalf("valid calendar rejected: %v", err)
	}
}

func TestValidateLength(t *testing.T) {
	if err := Validate(validCalendar(27), DefaultPlanDays); err == nil {
		t.Error("27-day calendar accepted")
	}
	if err := Validate(validCalendar(31), DefaultPlanDays); err == nil {
		t.Error("31-day calendar accepted against a 28-day rule")
	}
	if err := Validate(nil, DefaultPlanDays); err == nil {
		t.Error("nil calendar accepted")
	}
}

func TestValidateMeals(t *testing.T) {
	cal := validCalendar(DefaultPlanDays)
	cal.Calendar[3].Meals = cal.Calendar[3].Meals[:2]
	if err := Validate(cal, DefaultPlanDays); err == nil {
		t.Error("two-meal day accepted")
	}

	cal = validCalendar(DefaultPlanDays)
	cal.Calendar[0].Meals[1].Name = "Brunch"
	if err := Validate(cal, DefaultPlanDays); err == nil {
		t.Error("unknown meal name accepted")
	}

	// order doesn't matter as long as all three names are present
	cal = validCalendar(DefaultPlanDays)
	cal.Calendar[0].Meals[0], cal.Calendar[0].Meals[2] = cal.Calendar[0].Meals[2], cal.Calendar[0].Meals[0]
	if err := Validate(cal, DefaultPlanDays); err != nil {
		t.Errorf("reordered meals rejected: %v", err)
	}
}

func TestValidateDayFields(t *testing.T) {
	cal := validCalendar(DefaultPlanDays)
	cal.Calendar[0].Type = "cardio"
	if err := Validate(cal, DefaultPlanDays); err == nil {
		t.Error("bad day type accepted")
	}

	cal = validCalendar(DefaultPlanDays)
	cal.Calendar[0].Workout.Duration = intPtr(300)
	if err := Validate(cal, DefaultPlanDays); err == nil {
		t.Error("duration 300 accepted")
	}

	cal = validCalendar(DefaultPlanDays)
	cal.Calendar[0].Workout.Duration = nil
	cal.Calendar[0].Type = "rest"
	if err := Validate(cal, DefaultPlanDays); err != nil {
		t.Errorf("rest day without duration rejected: %v", err)
	}

	cal = validCalendar(DefaultPlanDays)
	cal.Calendar[0].Date = "09/01/2025"
	if err := Validate(cal, DefaultPlanDays); err == nil {
		t.Error("bad date format accepted")
	}
}

func TestValidatePlanDays(t *testing.T) {
	if err := ValidatePlanDays(DefaultPlanDays); err != nil {
		t.Errorf("default plan length rejected: %v", err)
	}
	for _, d := range []int{0, 6, 57, -1} {
		if err := ValidatePlanDays(d); err == nil {
			t.Errorf("ValidatePlanDays(%d) should fail", d)
		}
	}
}

func TestResponseFormatShape(t *testing.T) {
	rf := ResponseFormat(DefaultPlanDays)

	// must serialize cleanly into a request body
	data, err := json.Marshal(rf)
	if err != nil {
		t.Fatalf("marshal response format: %v", err)
	}

	var decoded struct {
		Type       string `json:"type"`
		JSONSchema struct {
			Name   string `json:"name"`
			Strict bool   `json:"strict"`
			Schema struct {
				Properties struct {
					Calendar struct {
						MinItems int `json:"minItems"`
						MaxItems int `json:"maxItems"`
					} `json:"calendar"`
				} `json:"properties"`
				Required []string `json:"required"`
			} `json:"schema"`
		} `json:"json_schema"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal response format: %v", err)
	}
	if decoded.Type != "json_schema" || !decoded.JSONSchema.Strict {
		t.Error("response format must be a strict json_schema")
	}
	if decoded.JSONSchema.Schema.Properties.Calendar.MinItems != DefaultPlanDays ||
		decoded.JSONSchema.Schema.Properties.Calendar.MaxItems != DefaultPlanDays {
		t.Errorf("calendar bounds %d..%d, want exactly %d",
			decoded.JSONSchema.Schema.Properties.Calendar.MinItems,
			decoded.JSONSchema.Schema.Properties.Calendar.MaxItems, DefaultPlanDays)
	}
	if len(decoded.JSONSchema.Schema.Required) != 3 {
		t.Errorf("top-level required = %v", decoded.JSONSchema.Schema.Required)
	}
}
