package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"fit-trainer/internal/dateutil"
	"fit-trainer/internal/logger"
	"fit-trainer/internal/model"
	"fit-trainer/internal/oracle"
	"fit-trainer/internal/schema"
)

// ErrEmptyInstruction rejects blank override input before any state
// mutation or model call.
var ErrEmptyInstruction = errors.New("instruction is empty")

// ErrBadPlan wraps parse or contract failures on the model's output.
var ErrBadPlan = errors.New("model returned an invalid plan")

const (
	defaultStartDate = "2025-09-01"
	defaultGoals     = "Build strength, Better shape / tone"
	overrideFallback = "Check the updated schedule."
)

// PlanService owns the single-user session state: the profile, the
// current calendar and the trainer conversation. All operations
// serialize on one mutex, so a generate and an override racing each
// other cannot interleave their reads and writes.
type PlanService struct {
	llm      oracle.Client
	history  *HistoryService // nil when no database is attached
	planDays int
	now      func() time.Time

	mu       sync.Mutex
	profile  model.UserProfile
	calendar *model.Calendar
	messages []model.Message
}

func NewPlanService(llm oracle.Client, history *HistoryService, planDays int) *PlanService {
	return &PlanService{
		llm:      llm,
		history:  history,
		planDays: planDays,
		now:      time.Now,
		profile:  defaultProfile(),
	}
}

func defaultProfile() model.UserProfile {
	return model.UserProfile{
		StartDate:      defaultStartDate,
		Name:           "Hello World!",
		Age:            40,
		Gender:         "Male",
		HeightIn:       65,
		WeightLb:       150,
		TargetWeightLb: 175,
		ActivityLevel:  "moderate",
		HoursPerWeek:   12,
		RestDays:       []string{"Tuesday"},
		TrainDays:      []string{"Sunday"},
		Goals:          []string{"endurance"},
	}
}

// Profile returns the current user profile.
func (s *PlanService) Profile() model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Messages returns a copy of the trainer conversation.
func (s *PlanService) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Message(nil), s.messages...)
}

// Calendar returns the stored calendar, nil before the first
// successful generation.
func (s *PlanService) Calendar() *model.Calendar {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calendar
}

// Generate builds a fresh plan for the given profile. On success the
// stored profile and calendar are replaced and the conversation is
// reset; on any failure the prior state is left untouched.
func (s *PlanService) Generate(ctx context.Context, profile model.UserProfile) (*model.Calendar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.StartDate == "" {
		profile.StartDate = defaultStartDate
	}

	msgs := []oracle.Message{
		{Role: "system", Content: "You are a fitness coach and nutritionist."},
		{Role: "user", Content: generatePrompt(profile, s.planDays)},
	}
	cal, err := s.complete(ctx, msgs)
	if err != nil {
		return nil, err
	}

	s.profile = profile
	s.calendar = cal
	s.messages = nil
	s.snapshot(ctx, "generate", cal)
	return cal, nil
}

// ApplyOverride merges a free-text instruction into the stored
// calendar. The model is asked to rewrite only future days; days
// strictly before today are additionally repaired from the prior
// calendar before the result is accepted. Returns the conversation,
// which is the override endpoint's visible result.
func (s *PlanService) ApplyOverride(ctx context.Context, instruction string) ([]model.Message, error) {
	if strings.TrimSpace(instruction) == "" {
		return nil, ErrEmptyInstruction
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := []oracle.Message{
		{Role: "system", Content: "You are a fitness planner."},
		{Role: "user", Content: overridePrompt(s.profile, s.planDays, instruction)},
	}
	if s.calendar != nil {
		current, _ := json.Marshal(s.calendar)
		msgs = append(msgs, oracle.Message{
			Role:    "user",
			Content: "Schedule currently stands as below:\n" + string(current),
		})
	}
	cal, err := s.complete(ctx, msgs)
	if err != nil {
		return nil, err
	}
	s.repairPastDays(cal)

	reply := cal.OverridesSummary
	if reply == "" {
		reply = overrideFallback
	}
	s.calendar = cal
	s.messages = append(s.messages,
		model.Message{Role: "user", Content: instruction},
		model.Message{Role: "assistant", Content: reply},
	)
	s.snapshot(ctx, "override", cal)
	return append([]model.Message(nil), s.messages...), nil
}

// complete is the single suspension point: one model call, then
// extraction, parse and contract validation.
func (s *PlanService) complete(ctx context.Context, msgs []oracle.Message) (*model.Calendar, error) {
	text, err := s.llm.Complete(ctx, msgs, schema.ResponseFormat(s.planDays))
	if err != nil {
		return nil, err
	}
	var cal model.Calendar
	if err := json.Unmarshal([]byte(text), &cal); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPlan, err)
	}
	if err := schema.Validate(&cal, s.planDays); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPlan, err)
	}
	return &cal, nil
}

// repairPastDays copies the prior calendar's entries over any day that
// already passed, so the model cannot rewrite history. Only applies
// when the new plan keeps the prior start date.
func (s *PlanService) repairPastDays(cal *model.Calendar) {
	prev := s.calendar
	if prev == nil || prev.Meta.StartDate != cal.Meta.StartDate {
		return
	}
	start, err := dateutil.ParseDate(cal.Meta.StartDate)
	if err != nil {
		return
	}
	today := dateutil.FormatDate(s.now())
	for i := range cal.Calendar {
		if i >= len(prev.Calendar) {
			break
		}
		if dateutil.FormatDate(dateutil.AddDays(start, i)) < today {
			cal.Calendar[i] = prev.Calendar[i]
		}
	}
}

// snapshot persists the accepted plan when a database is attached.
// History is best effort and never fails the request.
func (s *PlanService) snapshot(ctx context.Context, source string, cal *model.Calendar) {
	if s.history == nil {
		return
	}
	if err := s.history.Save(ctx, source, cal); err != nil {
		logger.Warn("plan snapshot failed", "source", source, "err", err)
	}
}
