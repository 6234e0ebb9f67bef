package model

import "time"

// PlanSnapshot is one accepted calendar, persisted for history. The
// full plan is kept as JSON; the columns alongside it are what the
// history listing needs.
type PlanSnapshot struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Source    string    `gorm:"default:generate" json:"source"` // generate | override
	StartDate string    `gorm:"type:date" json:"start_date"`
	Days      int       `json:"days"`
	Summary   string    `json:"summary"`
	Plan      string    `gorm:"type:longtext" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (PlanSnapshot) TableName() string { return "plan_snapshots" }
