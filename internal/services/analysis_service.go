package services

import (
	"context"
	"fmt"
	"log"

	"gorm.io/datatypes"

	"atscribe/resume-analyzer/internal/models"
	"atscribe/resume-analyzer/internal/repositories"
)

type AnalysisService interface {
	Analyze(ctx context.Context, sessionID, resumeText, jobDescription string) (*models.AnalysisData, error)
	GetBySession(sessionID string) (*models.Analysis, error)
}

type analysisService struct {
	validator    DocumentValidator
	gateway      ReasoningGateway
	analysisRepo repositories.AnalysisRepository
}

func NewAnalysisService(
	validator DocumentValidator,
	gateway ReasoningGateway,
	analysisRepo repositories.AnalysisRepository,
) AnalysisService {
	return &analysisService{
		validator:    validator,
		gateway:      gateway,
		analysisRepo: analysisRepo,
	}
}

// Analyze implements AnalysisService. The resume is validated before the job
// description; the first rejection short-circuits and nothing is persisted
// unless the provider call succeeds.
func (s *analysisService) Analyze(ctx context.Context, sessionID, resumeText, jobDescription string) (*models.AnalysisData, error) {
	if verdict := s.validator.ValidateResume(resumeText); !verdict.Valid {
		return nil, &InputRejectedError{Document: "resume", Verdict: verdict}
	}

	if verdict := s.validator.ValidateJobDescription(jobDescription); !verdict.Valid {
		return nil, &InputRejectedError{Document: "job description", Verdict: verdict}
	}

	log.Printf("🤖 Analyzing fit for session %s", sessionID)
	result, err := s.gateway.AnalyzeFit(ctx, resumeText, jobDescription)
	if err != nil {
		return nil, err
	}

	analysis := &models.Analysis{
		SessionID:               sessionID,
		ResumeText:              resumeText,
		JobDescription:          jobDescription,
		OverallScore:            result.OverallScore,
		SemanticScore:           result.SemanticScore,
		SkillScore:              result.SkillScore,
		Feedback:                result.Feedback,
		SoftSkillsRequired:      datatypes.NewJSONSlice(result.SoftSkillsRequired),
		SoftSkillsPresent:       datatypes.NewJSONSlice(result.SoftSkillsPresent),
		TechnicalSkillsRequired: datatypes.NewJSONSlice(result.TechnicalSkillsRequired),
		TechnicalSkillsPresent:  datatypes.NewJSONSlice(result.TechnicalSkillsPresent),
		Recommendations:         datatypes.NewJSONSlice(result.Recommendations),
	}

	// The analysis must be retrievable afterwards (plans and re-reads depend
	// on it), so a failed save fails the whole operation.
	if err := s.analysisRepo.UpsertBySessionID(analysis); err != nil {
		return nil, fmt.Errorf("failed to persist analysis: %w", err)
	}
	log.Printf("💾 Analysis saved for session %s", sessionID)

	return &models.AnalysisData{
		OverallScore:            result.OverallScore,
		SemanticScore:           result.SemanticScore,
		SkillScore:              result.SkillScore,
		Feedback:                result.Feedback,
		SoftSkillsRequired:      result.SoftSkillsRequired,
		SoftSkillsPresent:       result.SoftSkillsPresent,
		TechnicalSkillsRequired: result.TechnicalSkillsRequired,
		TechnicalSkillsPresent:  result.TechnicalSkillsPresent,
		Recommendations:         result.Recommendations,
	}, nil
}

// GetBySession implements AnalysisService.
func (s *analysisService) GetBySession(sessionID string) (*models.Analysis, error) {
	analysis, err := s.analysisRepo.FindBySessionID(sessionID)
	if err != nil {
		return nil, ErrNotFound
	}

	return analysis, nil
}
