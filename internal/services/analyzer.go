package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"atscribe/resume-analyzer/internal/models"
)

// ResumeFile is one uploaded resume after text extraction.
type ResumeFile struct {
	FileName string
	Text     string
}

// FitResult is the canonical shape of a single-candidate analysis. Scores are
// provider-asserted 0-100 values and are stored as returned, without clamping.
type FitResult struct {
	OverallScore            int
	SemanticScore           int
	SkillScore              int
	Feedback                string
	SoftSkillsRequired      []string
	SoftSkillsPresent       []string
	TechnicalSkillsRequired []string
	TechnicalSkillsPresent  []string
	Recommendations         []string
}

type RankedCandidate struct {
	Rank          int
	FileName      string
	Name          string
	FitScore      int
	Strengths     []string
	MissingSkills []string
	Justification string
}

type ReasoningGateway interface {
	AnalyzeFit(ctx context.Context, resumeText, jobDescription string) (*FitResult, error)
	RankCandidates(ctx context.Context, jobDescription string, resumes []ResumeFile) ([]RankedCandidate, error)
	ChatReply(ctx context.Context, resumeText string, history []models.ChatMessage, message string) (string, error)
	GeneratePlan(ctx context.Context, resumeText, jobDescription string, days int, missingTechnical, missingSoft []string, skillScore int) (string, error)
	GenerateAssignments(ctx context.Context, jobDescription string) ([]models.Assignment, error)
}

type reasoningGateway struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	maxRetries    int
	initialDelay  time.Duration
}

func NewReasoningGateway(generator TextGenerator, maxRetries int, initialDelay time.Duration) ReasoningGateway {
	return &reasoningGateway{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
		initialDelay:  initialDelay,
	}
}

// fitPayload mirrors the loose provider JSON; it is mapped into FitResult with
// explicit default-filling so field drift never leaks past this file.
type fitPayload struct {
	ResumeValid             *bool    `json:"resume_valid"`
	Reason                  string   `json:"reason"`
	OverallScore            float64  `json:"overall_score"`
	SemanticScore           float64  `json:"semantic_score"`
	SkillScore              float64  `json:"skill_score"`
	Feedback                string   `json:"feedback"`
	SoftSkillsRequired      []string `json:"soft_skills_required"`
	SoftSkillsPresent       []string `json:"soft_skills_present"`
	TechnicalSkillsRequired []string `json:"technical_skills_required"`
	TechnicalSkillsPresent  []string `json:"technical_skills_present"`
	Recommendations         []string `json:"recommendations"`
}

type rankingPayload struct {
	RankedCandidates []struct {
		Rank          int      `json:"rank"`
		FileName      string   `json:"fileName"`
		Name          string   `json:"name"`
		FitScore      float64  `json:"fitScore"`
		Strengths     []string `json:"strengths"`
		MissingSkills []string `json:"missingSkills"`
		Justification string   `json:"justification"`
	} `json:"rankedCandidates"`
}

type assignmentsPayload struct {
	Assignments []struct {
		Title              string `json:"title"`
		Description        string `json:"description"`
		EvaluationCriteria string `json:"evaluationCriteria"`
		EstimatedTime      string `json:"estimatedTime"`
	} `json:"assignments"`
}

// AnalyzeFit implements ReasoningGateway.
func (g *reasoningGateway) AnalyzeFit(ctx context.Context, resumeText, jobDescription string) (*FitResult, error) {
	prompt := g.promptBuilder.BuildAnalysisPrompt(resumeText, jobDescription)

	raw, err := g.generate(ctx, prompt, 0.7)
	if err != nil {
		return nil, err
	}

	var payload fitPayload
	if err := parseJSONResponse(raw, &payload); err != nil {
		return nil, err
	}

	// The provider gets the final say on whether the text is a resume; its
	// rejection is a tagged variant, not a half-filled result.
	if payload.ResumeValid != nil && !*payload.ResumeValid {
		return nil, &ProviderRejectedError{Reason: payload.Reason}
	}

	return &FitResult{
		OverallScore:            int(payload.OverallScore),
		SemanticScore:           int(payload.SemanticScore),
		SkillScore:              int(payload.SkillScore),
		Feedback:                payload.Feedback,
		SoftSkillsRequired:      orEmpty(payload.SoftSkillsRequired),
		SoftSkillsPresent:       orEmpty(payload.SoftSkillsPresent),
		TechnicalSkillsRequired: orEmpty(payload.TechnicalSkillsRequired),
		TechnicalSkillsPresent:  orEmpty(payload.TechnicalSkillsPresent),
		Recommendations:         orEmpty(payload.Recommendations),
	}, nil
}

// RankCandidates implements ReasoningGateway. The provider is instructed to
// return candidates sorted by descending fitScore; the order is passed through
// as-is.
func (g *reasoningGateway) RankCandidates(ctx context.Context, jobDescription string, resumes []ResumeFile) ([]RankedCandidate, error) {
	prompt := g.promptBuilder.BuildRankingPrompt(jobDescription, resumes)

	raw, err := g.generate(ctx, prompt, 0.7)
	if err != nil {
		return nil, err
	}

	var payload rankingPayload
	if err := parseJSONResponse(raw, &payload); err != nil {
		return nil, err
	}

	ranked := make([]RankedCandidate, 0, len(payload.RankedCandidates))
	for i, c := range payload.RankedCandidates {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Candidate %d", c.Rank)
		}
		fileName := c.FileName
		if fileName == "" && i < len(resumes) {
			fileName = resumes[i].FileName
		}
		ranked = append(ranked, RankedCandidate{
			Rank:          c.Rank,
			FileName:      fileName,
			Name:          name,
			FitScore:      int(c.FitScore),
			Strengths:     orEmpty(c.Strengths),
			MissingSkills: orEmpty(c.MissingSkills),
			Justification: c.Justification,
		})
	}

	return ranked, nil
}

// ChatReply implements ReasoningGateway. The history passed in is already
// bounded by the caller; the new message is appended as the last user turn.
func (g *reasoningGateway) ChatReply(ctx context.Context, resumeText string, history []models.ChatMessage, message string) (string, error) {
	systemPrompt := g.promptBuilder.BuildChatSystemPrompt(resumeText)

	turns := make([]models.ChatMessage, 0, len(history)+1)
	turns = append(turns, history...)
	turns = append(turns, models.ChatMessage{Role: models.RoleUser, Content: message})

	reply, err := RetryWithBackoff(ctx, func() (string, error) {
		return g.generator.GenerateChat(ctx, systemPrompt, turns, 0.7)
	}, g.maxRetries, g.initialDelay)
	if err != nil {
		return "", err
	}

	return reply, nil
}

// GeneratePlan implements ReasoningGateway.
func (g *reasoningGateway) GeneratePlan(ctx context.Context, resumeText, jobDescription string, days int, missingTechnical, missingSoft []string, skillScore int) (string, error) {
	prompt := g.promptBuilder.BuildPlanPrompt(resumeText, jobDescription, days, missingTechnical, missingSoft, skillScore)

	planText, err := g.generate(ctx, prompt, 0.7)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(planText), nil
}

// GenerateAssignments implements ReasoningGateway.
func (g *reasoningGateway) GenerateAssignments(ctx context.Context, jobDescription string) ([]models.Assignment, error) {
	prompt := g.promptBuilder.BuildAssignmentsPrompt(jobDescription)

	raw, err := g.generate(ctx, prompt, 0.8)
	if err != nil {
		return nil, err
	}

	var payload assignmentsPayload
	if err := parseJSONResponse(raw, &payload); err != nil {
		return nil, err
	}

	assignments := make([]models.Assignment, 0, len(payload.Assignments))
	for _, a := range payload.Assignments {
		assignments = append(assignments, models.Assignment{
			Title:              a.Title,
			Description:        a.Description,
			EvaluationCriteria: a.EvaluationCriteria,
			EstimatedTime:      a.EstimatedTime,
		})
	}

	return assignments, nil
}

func (g *reasoningGateway) generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	return RetryWithBackoff(ctx, func() (string, error) {
		return g.generator.GenerateText(ctx, prompt, temperature)
	}, g.maxRetries, g.initialDelay)
}

// parseJSONResponse extracts the first brace-delimited JSON object from a
// provider response that may be wrapped in prose or markdown fences. A failure
// is a MalformedResponseError carrying the raw text; it is never retried.
func parseJSONResponse(response string, target interface{}) error {
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return &MalformedResponseError{Raw: response, Err: err}
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or
// other formatting around it.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}

// orEmpty applies the uniform default policy for optional list fields.
func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
