package service

import (
	"fmt"
	"time"

	"fit-trainer/internal/dateutil"
	"fit-trainer/internal/model"
)

const (
	workoutColor     = "#22c55e"
	mealColor        = "#f59e0b"
	workoutStartHour = 7
)

// ProjectEvents maps the day-based plan into independent calendar
// event records. Day i of the array lands on startDate + i days; each
// day yields a workout event (timed on training days, all-day
// "Rest / Recovery" on rest days) plus an all-day meal event carrying
// the full meal list.
func ProjectEvents(cal *model.Calendar) ([]model.CalendarEvent, error) {
	if cal == nil {
		return nil, nil
	}
	base, err := dateutil.ParseDate(cal.Meta.StartDate)
	if err != nil {
		return nil, fmt.Errorf("project events: %w", err)
	}

	var events []model.CalendarEvent
	counter := 1
	for i, day := range cal.Calendar {
		date := dateutil.AddDays(base, i)
		iso := dateutil.FormatDate(date)
		isRest := day.Type == "rest"

		if isRest {
			events = append(events, model.CalendarEvent{
				ID:     fmt.Sprintf("w-%d", counter),
				Title:  "Rest / Recovery",
				AllDay: true,
				Start:  iso,
				End:    iso,
				Color:  workoutColor,
				Type:   "workout",
				Meta:   map[string]any{},
			})
			counter++
		} else if day.Workout.Duration != nil || len(day.Workout.Items) > 0 {
			minutes := 60
			if day.Workout.Duration != nil {
				minutes = dateutil.ClampInt(*day.Workout.Duration, 5, 180)
			}
			start := time.Date(date.Year(), date.Month(), date.Day(), workoutStartHour, 0, 0, 0, date.Location())
			end := dateutil.AddMinutes(start, minutes)
			events = append(events, model.CalendarEvent{
				ID:     fmt.Sprintf("w-%d", counter),
				Title:  "Workout",
				AllDay: false,
				Start:  start.Format(time.RFC3339),
				End:    end.Format(time.RFC3339),
				Color:  workoutColor,
				Type:   "workout",
				Meta:   map[string]any{"items": day.Workout.Items, "duration": minutes},
			})
			counter++
		}

		events = append(events, model.CalendarEvent{
			ID:     fmt.Sprintf("m-%d", counter),
			Title:  "Meal Plan",
			AllDay: true,
			Start:  iso,
			End:    iso,
			Color:  mealColor,
			Type:   "meal",
			Meta:   map[string]any{"meals": day.Meals},
		})
		counter++
	}
	return events, nil
}

// EventsForMonth filters projected events down to the ones whose range
// intersects the given month.
func EventsForMonth(events []model.CalendarEvent, year, month int) []model.CalendarEvent {
	out := make([]model.CalendarEvent, 0, len(events))
	for _, e := range events {
		if dateutil.OverlapsMonth(e.AllDay, e.Start, e.End, year, month) {
			out = append(out, e)
		}
	}
	return out
}
