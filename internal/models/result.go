package models

type ErrorResponse struct {
	Error        string        `json:"error"`
	Message      string        `json:"message,omitempty"`
	InvalidFiles []InvalidFile `json:"invalid_files,omitempty"`
}

type InvalidFile struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

type AnalysisData struct {
	OverallScore            int      `json:"overall_score"`
	SemanticScore           int      `json:"semantic_score"`
	SkillScore              int      `json:"skill_score"`
	Feedback                string   `json:"feedback"`
	SoftSkillsRequired      []string `json:"soft_skills_required"`
	SoftSkillsPresent       []string `json:"soft_skills_present"`
	TechnicalSkillsRequired []string `json:"technical_skills_required"`
	TechnicalSkillsPresent  []string `json:"technical_skills_present"`
	Recommendations         []string `json:"recommendations"`
}

type AnalyzeResponse struct {
	Success   bool         `json:"success"`
	SessionID string       `json:"session_id"`
	Data      AnalysisData `json:"data"`
}

type RankedCandidateData struct {
	Rank          int      `json:"rank"`
	FileName      string   `json:"file_name"`
	Name          string   `json:"name"`
	FitScore      int      `json:"fit_score"`
	Strengths     []string `json:"strengths"`
	MissingSkills []string `json:"missing_skills"`
	Justification string   `json:"justification"`
}

type RankResponse struct {
	Success          bool                  `json:"success"`
	SessionID        string                `json:"session_id"`
	RankedCandidates []RankedCandidateData `json:"ranked_candidates"`
}

type CandidateStatusRequest struct {
	Status string `json:"status"`
}

type ChatInitResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatMessageResponse struct {
	Success  bool          `json:"success"`
	Response string        `json:"response"`
	Messages []ChatMessage `json:"messages"`
}

type PlanRequest struct {
	SessionID string `json:"session_id"`
	Days      int    `json:"days"`
}

type PlanResponse struct {
	Success  bool   `json:"success"`
	PlanText string `json:"plan_text"`
}

type PlanSummary struct {
	Days      int    `json:"days"`
	PlanText  string `json:"plan_text"`
	CreatedAt string `json:"created_at"`
}

type AssignmentsRequest struct {
	JobDescription string `json:"job_description"`
}

type Assignment struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	EvaluationCriteria string `json:"evaluation_criteria"`
	EstimatedTime      string `json:"estimated_time"`
}

type AssignmentsResponse struct {
	Success     bool         `json:"success"`
	Assignments []Assignment `json:"assignments"`
}
