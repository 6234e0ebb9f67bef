package service

import (
	"context"
	"encoding/json"
	"fmt"

	"fit-trainer/internal/model"

	"gorm.io/gorm"
)

// HistoryService persists accepted plan snapshots so past calendars
// survive a restart. The live session state stays in memory; this is
// an audit trail, not the source of truth.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService { return &HistoryService{db: db} }

func (s *HistoryService) Save(ctx context.Context, source string, cal *model.Calendar) error {
	plan, err := json.Marshal(cal)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	snap := model.PlanSnapshot{
		Source:    source,
		StartDate: cal.Meta.StartDate,
		Days:      len(cal.Calendar),
		Summary:   cal.OverridesSummary,
		Plan:      string(plan),
	}
	if err := s.db.WithContext(ctx).Create(&snap).Error; err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// Recent lists the latest snapshots, newest first, without the plan
// payload column.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]model.PlanSnapshot, error) {
	var snaps []model.PlanSnapshot
	err := s.db.WithContext(ctx).
		Select("id", "source", "start_date", "days", "summary", "created_at").
		Order("id DESC").Limit(limit).Find(&snaps).Error
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	return snaps, nil
}
