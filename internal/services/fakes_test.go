package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"atscribe/resume-analyzer/internal/models"
)

// fakeGateway is a canned ReasoningGateway for service tests. Call counters
// let tests assert how many provider round-trips a flow costs.
type fakeGateway struct {
	fitResult   *FitResult
	fitErr      error
	ranked      []RankedCandidate
	rankErr     error
	reply       string
	replyErr    error
	planText    string
	planErr     error
	assignments []models.Assignment
	assignErr   error

	analyzeCalls int
	rankCalls    int
	chatCalls    int
	planCalls    int

	lastHistory          []models.ChatMessage
	lastMessage          string
	lastDays             int
	lastMissingTechnical []string
	lastMissingSoft      []string
}

func (f *fakeGateway) AnalyzeFit(ctx context.Context, resumeText, jobDescription string) (*FitResult, error) {
	f.analyzeCalls++
	if f.fitErr != nil {
		return nil, f.fitErr
	}
	return f.fitResult, nil
}

func (f *fakeGateway) RankCandidates(ctx context.Context, jobDescription string, resumes []ResumeFile) ([]RankedCandidate, error) {
	f.rankCalls++
	if f.rankErr != nil {
		return nil, f.rankErr
	}
	return f.ranked, nil
}

func (f *fakeGateway) ChatReply(ctx context.Context, resumeText string, history []models.ChatMessage, message string) (string, error) {
	f.chatCalls++
	f.lastHistory = append([]models.ChatMessage(nil), history...)
	f.lastMessage = message
	if f.replyErr != nil {
		return "", f.replyErr
	}
	return f.reply, nil
}

func (f *fakeGateway) GeneratePlan(ctx context.Context, resumeText, jobDescription string, days int, missingTechnical, missingSoft []string, skillScore int) (string, error) {
	f.planCalls++
	f.lastDays = days
	f.lastMissingTechnical = missingTechnical
	f.lastMissingSoft = missingSoft
	if f.planErr != nil {
		return "", f.planErr
	}
	return f.planText, nil
}

func (f *fakeGateway) GenerateAssignments(ctx context.Context, jobDescription string) ([]models.Assignment, error) {
	if f.assignErr != nil {
		return nil, f.assignErr
	}
	return f.assignments, nil
}

type fakeAnalysisRepo struct {
	bySession map[string]*models.Analysis
	upsertErr error
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{bySession: make(map[string]*models.Analysis)}
}

func (f *fakeAnalysisRepo) UpsertBySessionID(analysis *models.Analysis) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.bySession[analysis.SessionID] = analysis
	return nil
}

func (f *fakeAnalysisRepo) FindBySessionID(sessionID string) (*models.Analysis, error) {
	analysis, ok := f.bySession[sessionID]
	if !ok {
		return nil, fmt.Errorf("analysis not found")
	}
	return analysis, nil
}

type fakeCandidateRepo struct {
	bySession    map[string][]models.Candidate
	replaceCalls int
	replaceErr   error
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{bySession: make(map[string][]models.Candidate)}
}

func (f *fakeCandidateRepo) ReplaceForSession(sessionID string, candidates []models.Candidate) error {
	f.replaceCalls++
	if f.replaceErr != nil {
		return f.replaceErr
	}
	stored := make([]models.Candidate, len(candidates))
	copy(stored, candidates)
	for i := range stored {
		if stored[i].ID == uuid.Nil {
			stored[i].ID = uuid.New()
		}
	}
	f.bySession[sessionID] = stored
	return nil
}

func (f *fakeCandidateRepo) FindBySession(sessionID string) ([]models.Candidate, error) {
	return f.bySession[sessionID], nil
}

func (f *fakeCandidateRepo) FindByID(id uuid.UUID) (*models.Candidate, error) {
	for _, candidates := range f.bySession {
		for i := range candidates {
			if candidates[i].ID == id {
				return &candidates[i], nil
			}
		}
	}
	return nil, fmt.Errorf("candidate not found")
}

func (f *fakeCandidateRepo) UpdateStatus(id uuid.UUID, status models.CandidateStatus) error {
	for session, candidates := range f.bySession {
		for i := range candidates {
			if candidates[i].ID == id {
				f.bySession[session][i].Status = status
				return nil
			}
		}
	}
	return fmt.Errorf("candidate not found")
}

type fakeSessionRepo struct {
	bySession map[string]*models.RankingSession
	upsertErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{bySession: make(map[string]*models.RankingSession)}
}

func (f *fakeSessionRepo) Upsert(sessionID, jobDescription string, totalCandidates int) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.bySession[sessionID] = &models.RankingSession{
		SessionID:       sessionID,
		JobDescription:  jobDescription,
		TotalCandidates: totalCandidates,
		Status:          models.SessionActive,
	}
	return nil
}

func (f *fakeSessionRepo) FindBySessionID(sessionID string) (*models.RankingSession, error) {
	session, ok := f.bySession[sessionID]
	if !ok {
		return nil, fmt.Errorf("ranking session not found")
	}
	return session, nil
}

func (f *fakeSessionRepo) TouchActivity(sessionID string) error {
	if _, ok := f.bySession[sessionID]; !ok {
		return fmt.Errorf("ranking session not found")
	}
	return nil
}

type fakeChatRepo struct {
	bySession map[string]*models.Chat
	saveErr   error
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{bySession: make(map[string]*models.Chat)}
}

func (f *fakeChatRepo) UpsertBySessionID(chat *models.Chat) error {
	f.bySession[chat.SessionID] = chat
	return nil
}

func (f *fakeChatRepo) FindBySessionID(sessionID string) (*models.Chat, error) {
	chat, ok := f.bySession[sessionID]
	if !ok {
		return nil, fmt.Errorf("chat not found")
	}
	return chat, nil
}

func (f *fakeChatRepo) SaveMessages(sessionID string, messages []models.ChatMessage) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	chat, ok := f.bySession[sessionID]
	if !ok {
		return fmt.Errorf("chat not found")
	}
	chat.Messages = datatypes.NewJSONSlice(messages)
	return nil
}

type fakePlanRepo struct {
	plans     []models.PrepPlan
	createErr error
}

func (f *fakePlanRepo) Create(plan *models.PrepPlan) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.plans = append(f.plans, *plan)
	return nil
}

func (f *fakePlanRepo) FindBySessionAndDays(sessionID string, days int) (*models.PrepPlan, error) {
	for i := range f.plans {
		if f.plans[i].SessionID == sessionID && f.plans[i].Days == days {
			return &f.plans[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePlanRepo) ListBySession(sessionID string) ([]models.PrepPlan, error) {
	var out []models.PrepPlan
	for _, p := range f.plans {
		if p.SessionID == sessionID {
			out = append(out, p)
		}
	}
	return out, nil
}
