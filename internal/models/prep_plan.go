package models

import (
	"time"

	"github.com/google/uuid"
)

// PrepPlan is keyed by (SessionID, Days): generating twice for the same pair
// returns the stored plan instead of calling the provider again.
type PrepPlan struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID      string    `gorm:"type:text;index:idx_prep_plans_session_days;not null" json:"session_id"`
	Days           int       `gorm:"index:idx_prep_plans_session_days;not null" json:"days"`
	ResumeText     string    `gorm:"type:text;not null" json:"-"`
	JobDescription string    `gorm:"type:text;not null" json:"-"`
	PlanText       string    `gorm:"type:text;not null" json:"plan_text"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (PrepPlan) TableName() string {
	return "prep_plans"
}
