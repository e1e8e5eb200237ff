package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"atscribe/resume-analyzer/internal/models"
)

type RankingSessionRepository interface {
	Upsert(sessionID, jobDescription string, totalCandidates int) error
	FindBySessionID(sessionID string) (*models.RankingSession, error)
	TouchActivity(sessionID string) error
}

type rankingSessionRepository struct {
	db *gorm.DB
}

func NewRankingSessionRepository(db *gorm.DB) RankingSessionRepository {
	return &rankingSessionRepository{db: db}
}

// Upsert implements RankingSessionRepository. A re-run refreshes the job
// description, candidate count and activity timestamp on the existing row.
func (r *rankingSessionRepository) Upsert(sessionID, jobDescription string, totalCandidates int) error {
	var existing models.RankingSession
	err := r.db.Where("session_id = ?", sessionID).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			session := models.RankingSession{
				SessionID:       sessionID,
				JobDescription:  jobDescription,
				TotalCandidates: totalCandidates,
				Status:          models.SessionActive,
				LastActivityAt:  time.Now(),
			}
			if err := r.db.Create(&session).Error; err != nil {
				return fmt.Errorf("failed to create ranking session: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to look up ranking session: %w", err)
	}

	updates := map[string]interface{}{
		"job_description":  jobDescription,
		"total_candidates": totalCandidates,
		"status":           models.SessionActive,
		"last_activity_at": time.Now(),
		"updated_at":       time.Now(),
	}
	if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update ranking session: %w", err)
	}

	return nil
}

// FindBySessionID implements RankingSessionRepository.
func (r *rankingSessionRepository) FindBySessionID(sessionID string) (*models.RankingSession, error) {
	var session models.RankingSession
	if err := r.db.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ranking session not found")
		}
		return nil, fmt.Errorf("failed to find ranking session: %w", err)
	}

	return &session, nil
}

// TouchActivity implements RankingSessionRepository.
func (r *rankingSessionRepository) TouchActivity(sessionID string) error {
	result := r.db.Model(&models.RankingSession{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"last_activity_at": time.Now(),
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to touch ranking session: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("ranking session not found")
	}

	return nil
}
