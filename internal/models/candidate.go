package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CandidateStatus string

const (
	CandidatePending     CandidateStatus = "pending"
	CandidateReviewed    CandidateStatus = "reviewed"
	CandidateShortlisted CandidateStatus = "shortlisted"
	CandidateRejected    CandidateStatus = "rejected"
	CandidateHired       CandidateStatus = "hired"
)

// ValidCandidateStatus reports whether s is one of the workflow statuses.
func ValidCandidateStatus(s CandidateStatus) bool {
	switch s {
	case CandidatePending, CandidateReviewed, CandidateShortlisted, CandidateRejected, CandidateHired:
		return true
	}
	return false
}

type Candidate struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID     string                      `gorm:"type:text;index;not null" json:"session_id"`
	FileName      string                      `gorm:"type:text;not null" json:"file_name"`
	ResumeText    string                      `gorm:"type:text" json:"-"`
	CandidateName string                      `gorm:"type:text;default:'Unknown Candidate'" json:"candidate_name"`
	Rank          int                         `gorm:"not null" json:"rank"`
	FitScore      int                         `gorm:"not null" json:"fit_score"`
	Strengths     datatypes.JSONSlice[string] `json:"strengths"`
	MissingSkills datatypes.JSONSlice[string] `json:"missing_skills"`
	Justification string                      `gorm:"type:text" json:"justification"`
	Status        CandidateStatus             `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt     time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}
