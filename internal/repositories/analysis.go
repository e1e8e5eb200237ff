package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"atscribe/resume-analyzer/internal/models"
)

type AnalysisRepository interface {
	UpsertBySessionID(analysis *models.Analysis) error
	FindBySessionID(sessionID string) (*models.Analysis, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// UpsertBySessionID implements AnalysisRepository. Re-analyzing a session
// replaces the stored row wholesale; the session keeps one analysis at most.
func (r *analysisRepository) UpsertBySessionID(analysis *models.Analysis) error {
	var existing models.Analysis
	err := r.db.Where("session_id = ?", analysis.SessionID).First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			if err := r.db.Create(analysis).Error; err != nil {
				return fmt.Errorf("failed to create analysis: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to look up analysis: %w", err)
	}

	analysis.ID = existing.ID
	analysis.CreatedAt = existing.CreatedAt
	if err := r.db.Model(&existing).Select("*").Omit("id", "created_at").Updates(analysis).Error; err != nil {
		return fmt.Errorf("failed to update analysis: %w", err)
	}

	return nil
}

// FindBySessionID implements AnalysisRepository.
func (r *analysisRepository) FindBySessionID(sessionID string) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := r.db.Where("session_id = ?", sessionID).First(&analysis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("analysis not found")
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}

	return &analysis, nil
}
