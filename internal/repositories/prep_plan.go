package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"atscribe/resume-analyzer/internal/models"
)

type PrepPlanRepository interface {
	Create(plan *models.PrepPlan) error
	FindBySessionAndDays(sessionID string, days int) (*models.PrepPlan, error)
	ListBySession(sessionID string) ([]models.PrepPlan, error)
}

type prepPlanRepository struct {
	db *gorm.DB
}

func NewPrepPlanRepository(db *gorm.DB) PrepPlanRepository {
	return &prepPlanRepository{db: db}
}

// Create implements PrepPlanRepository.
func (r *prepPlanRepository) Create(plan *models.PrepPlan) error {
	if err := r.db.Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create prep plan: %w", err)
	}

	return nil
}

// FindBySessionAndDays implements PrepPlanRepository. ErrRecordNotFound is
// passed through so the caller can distinguish cache miss from failure.
func (r *prepPlanRepository) FindBySessionAndDays(sessionID string, days int) (*models.PrepPlan, error) {
	var plan models.PrepPlan
	err := r.db.Where("session_id = ? AND days = ?", sessionID, days).First(&plan).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find prep plan: %w", err)
	}

	return &plan, nil
}

// ListBySession implements PrepPlanRepository.
func (r *prepPlanRepository) ListBySession(sessionID string) ([]models.PrepPlan, error) {
	var plans []models.PrepPlan
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list prep plans: %w", err)
	}

	return plans, nil
}
