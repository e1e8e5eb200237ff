package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"atscribe/resume-analyzer/internal/models"
	"atscribe/resume-analyzer/internal/repositories"
)

type RankingService interface {
	RankResumes(ctx context.Context, sessionID, jobDescription string, resumes []ResumeFile) ([]RankedCandidate, error)
	GetCandidates(sessionID string) ([]models.Candidate, error)
	UpdateCandidateStatus(id uuid.UUID, status models.CandidateStatus) error
	GetSession(sessionID string) (*models.RankingSession, error)
	GenerateAssignments(ctx context.Context, jobDescription string) ([]models.Assignment, error)
}

type rankingService struct {
	validator     DocumentValidator
	gateway       ReasoningGateway
	sessionRepo   repositories.RankingSessionRepository
	candidateRepo repositories.CandidateRepository
}

func NewRankingService(
	validator DocumentValidator,
	gateway ReasoningGateway,
	sessionRepo repositories.RankingSessionRepository,
	candidateRepo repositories.CandidateRepository,
) RankingService {
	return &rankingService{
		validator:     validator,
		gateway:       gateway,
		sessionRepo:   sessionRepo,
		candidateRepo: candidateRepo,
	}
}

// RankResumes implements RankingService. Validation is all-or-nothing: if any
// resume in the batch fails, the whole batch is rejected with the full list of
// offenders so the recruiter can fix everything in one pass.
func (s *rankingService) RankResumes(ctx context.Context, sessionID, jobDescription string, resumes []ResumeFile) ([]RankedCandidate, error) {
	if verdict := s.validator.ValidateJobDescription(jobDescription); !verdict.Valid {
		return nil, &InputRejectedError{Document: "job description", Verdict: verdict}
	}

	var invalid []models.InvalidFile
	for _, resume := range resumes {
		if verdict := s.validator.ValidateResume(resume.Text); !verdict.Valid {
			invalid = append(invalid, models.InvalidFile{
				FileName: resume.FileName,
				Reason:   verdict.Message,
			})
		}
	}
	if len(invalid) > 0 {
		return nil, &BatchRejectedError{Files: invalid}
	}

	log.Printf("🤖 Ranking %d resumes for session %s", len(resumes), sessionID)
	ranked, err := s.gateway.RankCandidates(ctx, jobDescription, resumes)
	if err != nil {
		return nil, err
	}

	s.persistRanking(sessionID, jobDescription, resumes, ranked)

	return ranked, nil
}

// persistRanking stores the session and its candidate set. Best-effort: the
// ranking was already produced, so database failures are logged and suppressed
// rather than surfaced to the caller.
func (s *rankingService) persistRanking(sessionID, jobDescription string, resumes []ResumeFile, ranked []RankedCandidate) {
	textByFile := make(map[string]string, len(resumes))
	for _, r := range resumes {
		textByFile[r.FileName] = r.Text
	}

	candidates := make([]models.Candidate, 0, len(ranked))
	for _, c := range ranked {
		candidates = append(candidates, models.Candidate{
			SessionID:     sessionID,
			FileName:      c.FileName,
			ResumeText:    textByFile[c.FileName],
			CandidateName: c.Name,
			Rank:          c.Rank,
			FitScore:      c.FitScore,
			Strengths:     datatypes.NewJSONSlice(c.Strengths),
			MissingSkills: datatypes.NewJSONSlice(c.MissingSkills),
			Justification: c.Justification,
			Status:        models.CandidatePending,
		})
	}

	if err := s.sessionRepo.Upsert(sessionID, jobDescription, len(candidates)); err != nil {
		log.Printf("⚠️ Failed to persist ranking session %s: %v", sessionID, err)
	}
	if err := s.candidateRepo.ReplaceForSession(sessionID, candidates); err != nil {
		log.Printf("⚠️ Failed to persist candidates for session %s: %v", sessionID, err)
		return
	}
	log.Printf("💾 Ranking saved for session %s (%d candidates)", sessionID, len(candidates))
}

// GetCandidates implements RankingService.
func (s *rankingService) GetCandidates(sessionID string) ([]models.Candidate, error) {
	candidates, err := s.candidateRepo.FindBySession(sessionID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNotFound
	}

	return candidates, nil
}

// UpdateCandidateStatus implements RankingService.
func (s *rankingService) UpdateCandidateStatus(id uuid.UUID, status models.CandidateStatus) error {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		return ErrNotFound
	}

	if err := s.candidateRepo.UpdateStatus(id, status); err != nil {
		return err
	}

	if err := s.sessionRepo.TouchActivity(candidate.SessionID); err != nil {
		log.Printf("⚠️ Failed to touch ranking session %s: %v", candidate.SessionID, err)
	}

	return nil
}

// GetSession implements RankingService.
func (s *rankingService) GetSession(sessionID string) (*models.RankingSession, error) {
	session, err := s.sessionRepo.FindBySessionID(sessionID)
	if err != nil {
		return nil, ErrNotFound
	}

	return session, nil
}

// GenerateAssignments implements RankingService. The job description only
// needs to exist; assignment generation works from partial descriptions too.
func (s *rankingService) GenerateAssignments(ctx context.Context, jobDescription string) ([]models.Assignment, error) {
	return s.gateway.GenerateAssignments(ctx, jobDescription)
}
