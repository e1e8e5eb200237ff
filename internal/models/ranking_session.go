package models

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionArchived  SessionStatus = "archived"
)

// RankingSession tracks one recruiter ranking run per session. TotalCandidates
// mirrors the number of live Candidate rows for the session right after a run.
type RankingSession struct {
	ID              uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID       string        `gorm:"type:text;uniqueIndex;not null" json:"session_id"`
	JobDescription  string        `gorm:"type:text;not null" json:"-"`
	TotalCandidates int           `gorm:"not null;default:0" json:"total_candidates"`
	Status          SessionStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	LastActivityAt  time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"last_activity_at"`
	CreatedAt       time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (RankingSession) TableName() string {
	return "ranking_sessions"
}
