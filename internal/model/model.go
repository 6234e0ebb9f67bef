package model

// UserProfile is the single client profile the plan is generated for.
// It is replaced wholesale on each /api/plan/generate request.
type UserProfile struct {
	StartDate      string   `json:"startDate"`
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	HeightIn       float64  `json:"heightIn"`
	WeightLb       float64  `json:"weightLb"`
	TargetWeightLb float64  `json:"targetWeightLb"`
	ActivityLevel  string   `json:"activityLevel"`
	HoursPerWeek   float64  `json:"hoursPerWeek"`
	RestDays       []string `json:"restDays"`
	TrainDays      []string `json:"trainDays"`
	Goals          []string `json:"goals"`
}

// Message is one turn of the trainer conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Calendar is the structured plan returned by the model. The array
// index is the authoritative day position: calendar[i] covers
// meta.startDate + i days, whatever each entry's date field says.
type Calendar struct {
	Meta             PlanMeta  `json:"meta"`
	Calendar         []DayPlan `json:"calendar"`
	OverridesSummary string    `json:"overridesSummary,omitempty"`
}

type PlanMeta struct {
	StartDate string `json:"startDate"`
}

// DayPlan is one day's rest/training classification, workout and meals.
type DayPlan struct {
	Date    string  `json:"date"`
	Type    string  `json:"type"` // "rest", "training" or empty
	Workout Workout `json:"workout"`
	Meals   []Meal  `json:"meals"`
}

type Workout struct {
	Duration *int     `json:"duration"` // minutes, 5..180, nil when unset
	Items    []string `json:"items"`
}

type Meal struct {
	Name  string   `json:"name"` // Breakfast, Lunch or Dinner
	Items []string `json:"items"`
}

// CalendarEvent is the front-end calendar record projected from a
// DayPlan. Timed events carry RFC3339 instants, all-day events carry
// plain dates.
type CalendarEvent struct {
	ID     string         `json:"id"`
	Title  string         `json:"title"`
	AllDay bool           `json:"allDay"`
	Start  string         `json:"start"`
	End    string         `json:"end"`
	Color  string         `json:"color"`
	Type   string         `json:"type"` // "workout" or "meal"
	Meta   map[string]any `json:"meta"`
}

type OverrideRequest struct {
	Input string `json:"input"`
}

type OverrideResponse struct {
	Messages []Message `json:"messages"`
}

type EventsResponse struct {
	Events []CalendarEvent `json:"events"`
}
