package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Analysis struct {
	ID                      uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID               string                      `gorm:"type:text;uniqueIndex;not null" json:"session_id"`
	ResumeText              string                      `gorm:"type:text;not null" json:"-"`
	JobDescription          string                      `gorm:"type:text;not null" json:"-"`
	OverallScore            int                         `gorm:"not null" json:"overall_score"`
	SemanticScore           int                         `gorm:"not null" json:"semantic_score"`
	SkillScore              int                         `gorm:"not null" json:"skill_score"`
	Feedback                string                      `gorm:"type:text" json:"feedback"`
	SoftSkillsRequired      datatypes.JSONSlice[string] `json:"soft_skills_required"`
	SoftSkillsPresent       datatypes.JSONSlice[string] `json:"soft_skills_present"`
	TechnicalSkillsRequired datatypes.JSONSlice[string] `json:"technical_skills_required"`
	TechnicalSkillsPresent  datatypes.JSONSlice[string] `json:"technical_skills_present"`
	Recommendations         datatypes.JSONSlice[string] `json:"recommendations"`
	CreatedAt               time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt               time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}
