package service

import (
	"fmt"
	"strings"

	"fit-trainer/internal/model"
)

// clientLines renders the profile facts shared by both prompts.
func clientLines(p model.UserProfile) []string {
	goals := defaultGoals
	if len(p.Goals) > 0 {
		goals = strings.Join(p.Goals, ", ")
	}
	return []string{
		fmt.Sprintf("Client: %s, age %d, gender %s,", p.Name, p.Age, p.Gender),
		fmt.Sprintf("height %g inches, weight %g, target weight %g lbs.", p.HeightIn, p.WeightLb, p.TargetWeightLb),
		fmt.Sprintf("Activity level: %s, %g hours/week.", p.ActivityLevel, p.HoursPerWeek),
		fmt.Sprintf("Rest days: %s Training days: %s", strings.Join(p.RestDays, ", "), strings.Join(p.TrainDays, ", ")),
		fmt.Sprintf("Goals: %s.", goals),
		fmt.Sprintf("StartDate: %s", p.StartDate),
	}
}

// generatePrompt is the full-plan instruction payload. The guideline
// lines are part of the product behavior: weekday alignment from a
// startDate that need not be a Monday, the client's declared rest and
// training days, macro detail scaled to current vs target weight, and
// week-to-week variety.
func generatePrompt(p model.UserProfile, planDays int) string {
	lines := []string{
		fmt.Sprintf("Create a %d-day workout + nutrition plan as JSON. Start the first-day plan on the startDate.", planDays),
	}
	lines = append(lines, clientLines(p)...)
	lines = append(lines,
		"Basic Guidelines:",
		fmt.Sprintf("- Calendar array must contain %d elements.", planDays),
		"- Calculate day of the week correctly for each day. First day may or may not be a Monday. It depends on the StartDate",
		"- Use the client's rest/training days above.",
		"- Add specific workout items/exercises for each workout day. This should be detailed and have a mix of different workouts with different numbers of reps.",
		"- Meals should be detailed and goal-aligned. Include portion sizes and macronutrient information for each meal item that factor the current weight and target weight",
		"- Each week must contain a unique meal plan and workout schedule",
		fmt.Sprintf("- Plan MUST contain %d days starting with today as the startDate.", planDays),
	)
	return strings.Join(lines, "\n")
}

// overridePrompt is the incremental-update payload: same guidelines,
// scoped to future days only, with the latest user instruction as the
// final directive line.
func overridePrompt(p model.UserProfile, planDays int, instruction string) string {
	lines := []string{
		"Update the existing workout plan + nutrition plan as JSON. Start the first-day plan on the startDate.",
	}
	lines = append(lines, clientLines(p)...)
	lines = append(lines,
		"Basic Guidelines:",
		fmt.Sprintf("- Calendar array must contain %d elements.", planDays),
		"- Calculate day of the week correctly for each day. First day may or may not be a Monday. It depends on the StartDate",
		"- Use the client's rest/training days above.",
		"- Keep workouts durations-only (no clock times).",
		"- Meals should be realistic and goal-aligned. Include macronutrient information for each meal",
		fmt.Sprintf("- Plan must contain %d days starting with today as the startDate", planDays),
		"- Each week must contain a unique mealplan and workout schedule.",
		"User Overrides:",
		"- Only update the schedule for the future dates/days",
		instruction,
	)
	return strings.Join(lines, "\n")
}
