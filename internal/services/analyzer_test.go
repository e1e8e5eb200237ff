package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atscribe/resume-analyzer/internal/models"
)

// scriptedGenerator replays a fixed sequence of responses/errors, one per
// provider call.
type scriptedGenerator struct {
	responses []string
	errs      []error
	calls     int
}

func (s *scriptedGenerator) next() (string, error) {
	i := s.calls
	s.calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	if err != nil {
		return "", err
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", errors.New("no scripted response left")
}

func (s *scriptedGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	return s.next()
}

func (s *scriptedGenerator) GenerateChat(ctx context.Context, systemPrompt string, history []models.ChatMessage, temperature float32) (string, error) {
	return s.next()
}

func newTestGateway(gen TextGenerator) ReasoningGateway {
	return NewReasoningGateway(gen, 3, time.Millisecond)
}

func TestExtractJSON(t *testing.T) {
	t.Run("plain object passes through", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, extractJSON(`{"a":1}`))
	})

	t.Run("strips markdown fences", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	})

	t.Run("ignores surrounding prose", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, extractJSON("Here is the result:\n{\"a\":1}\nHope that helps!"))
	})

	t.Run("keeps nested braces intact", func(t *testing.T) {
		assert.Equal(t, `{"a":{"b":2}}`, extractJSON(`prefix {"a":{"b":2}} suffix`))
	})
}

func TestAnalyzeFit(t *testing.T) {
	t.Run("parses a fenced response and fills missing lists", func(t *testing.T) {
		gen := &scriptedGenerator{responses: []string{"```json\n" + `{
			"resume_valid": true,
			"overall_score": 72,
			"semantic_score": 68,
			"skill_score": 80,
			"feedback": "STRENGTHS\n- solid Go background",
			"technical_skills_required": ["Go", "SQL"],
			"technical_skills_present": ["Go"]
		}` + "\n```"}}

		result, err := newTestGateway(gen).AnalyzeFit(context.Background(), "resume", "jd")
		require.NoError(t, err)
		assert.Equal(t, 72, result.OverallScore)
		assert.Equal(t, 68, result.SemanticScore)
		assert.Equal(t, 80, result.SkillScore)
		assert.Equal(t, []string{"Go", "SQL"}, result.TechnicalSkillsRequired)
		// Omitted lists come back empty, never nil.
		assert.NotNil(t, result.SoftSkillsRequired)
		assert.Empty(t, result.SoftSkillsRequired)
		assert.NotNil(t, result.Recommendations)
		assert.Empty(t, result.Recommendations)
	})

	t.Run("out-of-range scores are stored as returned", func(t *testing.T) {
		gen := &scriptedGenerator{responses: []string{`{"resume_valid": true, "overall_score": 120, "semantic_score": -5, "skill_score": 0}`}}

		result, err := newTestGateway(gen).AnalyzeFit(context.Background(), "resume", "jd")
		require.NoError(t, err)
		assert.Equal(t, 120, result.OverallScore)
		assert.Equal(t, -5, result.SemanticScore)
	})

	t.Run("provider rejection becomes a typed error", func(t *testing.T) {
		gen := &scriptedGenerator{responses: []string{`{"resume_valid": false, "reason": "This is a shopping list"}`}}

		_, err := newTestGateway(gen).AnalyzeFit(context.Background(), "resume", "jd")
		var rejected *ProviderRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "This is a shopping list", rejected.Reason)
	})

	t.Run("malformed response keeps the raw payload", func(t *testing.T) {
		raw := "I'm sorry, I can't produce JSON today."
		gen := &scriptedGenerator{responses: []string{raw}}

		_, err := newTestGateway(gen).AnalyzeFit(context.Background(), "resume", "jd")
		var malformed *MalformedResponseError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, raw, malformed.Raw)
		// Exactly one provider call: malformed output is never retried.
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("rate limits are retried", func(t *testing.T) {
		gen := &scriptedGenerator{
			errs:      []error{errors.New("provider returned status 429: rate limited"), nil},
			responses: []string{"", `{"resume_valid": true, "overall_score": 50}`},
		}

		result, err := newTestGateway(gen).AnalyzeFit(context.Background(), "resume", "jd")
		require.NoError(t, err)
		assert.Equal(t, 50, result.OverallScore)
		assert.Equal(t, 2, gen.calls)
	})
}

func TestRankCandidates(t *testing.T) {
	t.Run("passes provider order through unchanged", func(t *testing.T) {
		// Deliberately not sorted by fitScore: ordering is the provider's call.
		gen := &scriptedGenerator{responses: []string{`{
			"rankedCandidates": [
				{"rank": 1, "fileName": "b.pdf", "name": "Bea", "fitScore": 60, "justification": "ok"},
				{"rank": 2, "fileName": "a.pdf", "name": "Al", "fitScore": 85, "justification": "great"}
			]
		}`}}

		resumes := []ResumeFile{{FileName: "a.pdf", Text: "a"}, {FileName: "b.pdf", Text: "b"}}
		ranked, err := newTestGateway(gen).RankCandidates(context.Background(), "jd", resumes)
		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.Equal(t, "b.pdf", ranked[0].FileName)
		assert.Equal(t, 60, ranked[0].FitScore)
		assert.Equal(t, "a.pdf", ranked[1].FileName)
		assert.NotNil(t, ranked[0].Strengths)
		assert.NotNil(t, ranked[0].MissingSkills)
	})

	t.Run("fills missing names and file names", func(t *testing.T) {
		gen := &scriptedGenerator{responses: []string{`{
			"rankedCandidates": [{"rank": 1, "fitScore": 70}]
		}`}}

		ranked, err := newTestGateway(gen).RankCandidates(context.Background(), "jd", []ResumeFile{{FileName: "only.pdf", Text: "x"}})
		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, "Candidate 1", ranked[0].Name)
		assert.Equal(t, "only.pdf", ranked[0].FileName)
	})
}

func TestGenerateAssignments(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{`{
		"assignments": [
			{"title": "API design task", "description": "Design a REST API.", "evaluationCriteria": "clarity", "estimatedTime": "2 hours"}
		]
	}`}}

	assignments, err := newTestGateway(gen).GenerateAssignments(context.Background(), "jd")
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "API design task", assignments[0].Title)
	assert.Equal(t, "2 hours", assignments[0].EstimatedTime)
}
