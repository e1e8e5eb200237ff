package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillMatches(t *testing.T) {
	t.Run("exact match ignoring case", func(t *testing.T) {
		assert.True(t, SkillMatches("Python", []string{"python"}))
	})

	t.Run("required contained in present", func(t *testing.T) {
		assert.True(t, SkillMatches("React", []string{"ReactJS"}))
	})

	t.Run("present contained in required", func(t *testing.T) {
		assert.True(t, SkillMatches("ReactJS", []string{"React"}))
	})

	t.Run("no overlap", func(t *testing.T) {
		assert.False(t, SkillMatches("Kubernetes", []string{"Go", "SQL"}))
	})

	t.Run("empty present never matches", func(t *testing.T) {
		assert.False(t, SkillMatches("Go", nil))
	})

	t.Run("short strings can false-positive", func(t *testing.T) {
		// "R" is contained in "HR"; that is the documented trade-off.
		assert.True(t, SkillMatches("R", []string{"HR"}))
	})
}

func TestCoverage(t *testing.T) {
	t.Run("empty required is fully covered", func(t *testing.T) {
		report := Coverage(nil, []string{"Go"})
		assert.Equal(t, 0, report.RequiredCount)
		assert.Equal(t, float64(100), report.CoveragePercent)
		assert.NotNil(t, report.Unmatched)
		assert.Empty(t, report.Unmatched)
	})

	t.Run("a list covers itself", func(t *testing.T) {
		skills := []string{"Go", "SQL", "Docker"}
		report := Coverage(skills, skills)
		assert.Equal(t, 3, report.MatchedCount)
		assert.Equal(t, float64(100), report.CoveragePercent)
		assert.Empty(t, report.Unmatched)
	})

	t.Run("partial coverage preserves order of unmatched", func(t *testing.T) {
		report := Coverage([]string{"Go", "Terraform", "SQL", "Rust"}, []string{"Golang", "PostgreSQL and SQL"})
		assert.Equal(t, 2, report.MatchedCount)
		assert.InDelta(t, 50.0, report.CoveragePercent, 0.001)
		assert.Equal(t, []string{"Terraform", "Rust"}, report.Unmatched)
	})

	t.Run("no present skills", func(t *testing.T) {
		report := Coverage([]string{"Go"}, nil)
		assert.Equal(t, 0, report.MatchedCount)
		assert.Equal(t, float64(0), report.CoveragePercent)
		assert.Equal(t, []string{"Go"}, report.Unmatched)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		required := []string{"Go", "SQL"}
		present := []string{"Python"}
		Coverage(required, present)
		assert.Equal(t, []string{"Go", "SQL"}, required)
		assert.Equal(t, []string{"Python"}, present)
	})
}

func TestMissingSkills(t *testing.T) {
	missing := MissingSkills([]string{"Go", "Kafka", "SQL"}, []string{"Go", "MySQL"})
	assert.Equal(t, []string{"Kafka"}, missing)
}
