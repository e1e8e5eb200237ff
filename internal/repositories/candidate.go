package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"atscribe/resume-analyzer/internal/models"
)

type CandidateRepository interface {
	ReplaceForSession(sessionID string, candidates []models.Candidate) error
	FindBySession(sessionID string) ([]models.Candidate, error)
	FindByID(id uuid.UUID) (*models.Candidate, error)
	UpdateStatus(id uuid.UUID, status models.CandidateStatus) error
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// ReplaceForSession implements CandidateRepository. A ranking run fully owns
// its session's candidate set, so the previous rows are deleted and the new
// ones inserted in one transaction.
func (r *candidateRepository) ReplaceForSession(sessionID string, candidates []models.Candidate) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&models.Candidate{}).Error; err != nil {
			return fmt.Errorf("failed to delete previous candidates: %w", err)
		}
		if len(candidates) == 0 {
			return nil
		}
		if err := tx.Create(&candidates).Error; err != nil {
			return fmt.Errorf("failed to create candidates: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace candidates: %w", err)
	}

	return nil
}

// FindBySession implements CandidateRepository. Results come back in rank
// order.
func (r *candidateRepository) FindBySession(sessionID string) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("rank ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find candidates: %w", err)
	}

	return candidates, nil
}

// FindByID implements CandidateRepository.
func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("candidate not found")
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	return &candidate, nil
}

// UpdateStatus implements CandidateRepository. Only the workflow status
// changes; rank and scores stay untouched.
func (r *candidateRepository) UpdateStatus(id uuid.UUID, status models.CandidateStatus) error {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update candidate status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate not found")
	}

	return nil
}
