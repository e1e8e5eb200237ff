package services

import "strings"

// CoverageReport is derived on demand from a required/present skill pair; it is
// never persisted.
type CoverageReport struct {
	RequiredCount   int      `json:"required_count"`
	PresentCount    int      `json:"present_count"`
	MatchedCount    int      `json:"matched_count"`
	CoveragePercent float64  `json:"coverage_percent"`
	Unmatched       []string `json:"unmatched"`
}

// SkillMatches reports whether required is covered by any entry of present.
// Containment is bidirectional and case-insensitive: "ReactJS" covers "React"
// and vice versa. Short strings can false-positive (required "R" matches
// present "HR"); that trade-off is intentional.
func SkillMatches(required string, present []string) bool {
	lowerRequired := strings.ToLower(required)
	for _, p := range present {
		lowerPresent := strings.ToLower(p)
		if strings.Contains(lowerRequired, lowerPresent) || strings.Contains(lowerPresent, lowerRequired) {
			return true
		}
	}
	return false
}

// Coverage computes how much of required is covered by present. An empty
// required list is vacuously fully covered (100%). Inputs are not mutated and
// Unmatched preserves the order of required.
func Coverage(required, present []string) CoverageReport {
	report := CoverageReport{
		RequiredCount: len(required),
		PresentCount:  len(present),
		Unmatched:     []string{},
	}

	for _, r := range required {
		if SkillMatches(r, present) {
			report.MatchedCount++
		} else {
			report.Unmatched = append(report.Unmatched, r)
		}
	}

	if report.RequiredCount == 0 {
		report.CoveragePercent = 100
	} else {
		report.CoveragePercent = float64(report.MatchedCount) / float64(report.RequiredCount) * 100
	}

	return report
}

// MissingSkills returns the required skills with no fuzzy match in present.
func MissingSkills(required, present []string) []string {
	return Coverage(required, present).Unmatched
}
