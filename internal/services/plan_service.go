package services

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"atscribe/resume-analyzer/internal/models"
	"atscribe/resume-analyzer/internal/repositories"
)

type PlanService interface {
	GeneratePlan(ctx context.Context, sessionID string, days int) (string, error)
	ListPlans(sessionID string) ([]models.PrepPlan, error)
}

type planService struct {
	gateway      ReasoningGateway
	analysisRepo repositories.AnalysisRepository
	planRepo     repositories.PrepPlanRepository
}

func NewPlanService(
	gateway ReasoningGateway,
	analysisRepo repositories.AnalysisRepository,
	planRepo repositories.PrepPlanRepository,
) PlanService {
	return &planService{
		gateway:      gateway,
		analysisRepo: analysisRepo,
		planRepo:     planRepo,
	}
}

// GeneratePlan implements PlanService. Plans are idempotent per (session,
// days): a second request for the same pair returns the stored plan without
// another provider call. A plan requires a completed analysis for the session.
func (s *planService) GeneratePlan(ctx context.Context, sessionID string, days int) (string, error) {
	if cached, err := s.planRepo.FindBySessionAndDays(sessionID, days); err == nil {
		log.Printf("📋 Returning cached %d-day plan for session %s", days, sessionID)
		return cached.PlanText, nil
	} else if err != gorm.ErrRecordNotFound {
		return "", err
	}

	analysis, err := s.analysisRepo.FindBySessionID(sessionID)
	if err != nil {
		return "", ErrNotFound
	}

	missingTechnical := MissingSkills(analysis.TechnicalSkillsRequired, analysis.TechnicalSkillsPresent)
	missingSoft := MissingSkills(analysis.SoftSkillsRequired, analysis.SoftSkillsPresent)

	log.Printf("🤖 Generating %d-day plan for session %s", days, sessionID)
	planText, err := s.gateway.GeneratePlan(
		ctx,
		analysis.ResumeText,
		analysis.JobDescription,
		days,
		missingTechnical,
		missingSoft,
		analysis.SkillScore,
	)
	if err != nil {
		return "", err
	}

	plan := &models.PrepPlan{
		SessionID:      sessionID,
		Days:           days,
		ResumeText:     analysis.ResumeText,
		JobDescription: analysis.JobDescription,
		PlanText:       planText,
	}
	// The stored plan is what makes repeat requests idempotent; if it cannot
	// be saved the operation fails rather than hand out an uncacheable plan.
	if err := s.planRepo.Create(plan); err != nil {
		return "", fmt.Errorf("failed to persist plan: %w", err)
	}
	log.Printf("💾 Plan saved for session %s (%d days)", sessionID, days)

	return planText, nil
}

// ListPlans implements PlanService.
func (s *planService) ListPlans(sessionID string) ([]models.PrepPlan, error) {
	return s.planRepo.ListBySession(sessionID)
}
