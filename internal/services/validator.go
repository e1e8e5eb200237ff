package services

import (
	"regexp"
	"strings"
)

// Verdict is the result of one classification pass over a submitted document.
type Verdict struct {
	Valid      bool   `json:"valid"`
	ReasonCode string `json:"reason_code,omitempty"`
	Message    string `json:"message,omitempty"`
}

const (
	ReasonTooShort           = "too_short"
	ReasonLooksLikePosting   = "looks_like_posting"
	ReasonInsufficientSignal = "insufficient_signal"
	ReasonNoContactInfo      = "no_contact_info"
	ReasonRepetitiveText     = "repetitive_text"
	ReasonEchoedError        = "echoed_error"
	ReasonTooBrief           = "too_brief"
)

type DocumentValidator interface {
	ValidateResume(text string) Verdict
	ValidateJobDescription(text string) Verdict
}

type documentValidator struct{}

func NewDocumentValidator() DocumentValidator {
	return &documentValidator{}
}

// Keywords that typically appear in resumes.
var resumeKeywords = []string{
	"experience", "education", "skills", "work", "projects", "university",
	"college", "degree", "bachelor", "master", "certification", "certified",
	"employed", "developed", "managed", "led", "designed", "implemented",
	"achieved", "responsibilities", "accomplishments", "profile", "summary",
	"objective", "career", "professional", "intern", "internship", "volunteer",
	"award", "achievement", "technical", "competencies", "expertise",
}

// Phrases that signal a job posting rather than a resume.
var jobPostingKeywords = []string{
	"we are looking", "we are hiring", "join our team", "apply now",
	"job description", "job requirements", "required qualifications",
	"preferred qualifications", "what we offer", "benefits package",
	"equal opportunity employer", "salary range", "compensation package",
	"about the company", "company culture", "our mission", "our vision",
	"company benefits", "hiring for", "positions available",
}

var jdKeywords = []string{
	"responsibilities", "requirements", "qualifications", "skills",
	"experience", "role", "position", "job", "candidate", "must have",
	"should have", "required", "preferred", "looking for", "seeking",
	"duties", "tasks", "company", "team", "work", "bachelor", "degree",
	"years of experience", "knowledge of", "expertise in", "proficient",
	"familiar with", "ability to", "strong", "excellent", "responsible for",
	"will be", "about the role", "what you", "collaborate", "develop",
}

// Fragments of our own rejection messages, to catch a user pasting a previous
// error back in as the job description.
var echoedErrorFragments = []string{
	"doesn't appear to be",
	"please include job requirements",
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

func countKeywordHits(lowerText string, keywords []string) int {
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(lowerText, keyword) {
			hits++
		}
	}
	return hits
}

// ValidateResume implements DocumentValidator.
//
// Matching is case-insensitive substring containment, not word-boundary, so
// partial overlaps count ("requirement" inside "requirements"). Recall over
// precision; the thresholds and check order are load-bearing for the messages
// users see.
func (v *documentValidator) ValidateResume(text string) Verdict {
	if len(strings.TrimSpace(text)) < 100 {
		return Verdict{
			Valid:      false,
			ReasonCode: ReasonTooShort,
			Message:    "Resume file appears to be empty or too short. Please upload a proper resume PDF.",
		}
	}

	lowerText := strings.ToLower(text)

	// Job posting indicators are a red flag and checked first.
	if countKeywordHits(lowerText, jobPostingKeywords) >= 2 {
		return Verdict{
			Valid:      false,
			ReasonCode: ReasonLooksLikePosting,
			Message:    "This appears to be a job posting, not a resume. Please upload your actual resume PDF.",
		}
	}

	// Need at least 4 resume keywords to be considered valid.
	if countKeywordHits(lowerText, resumeKeywords) < 4 {
		return Verdict{
			Valid:      false,
			ReasonCode: ReasonInsufficientSignal,
			Message:    "This does not appear to be a valid resume. Please upload a proper resume with your experience, education, and skills.",
		}
	}

	// A resume should have at least an email or phone.
	if !emailPattern.MatchString(text) && !phonePattern.MatchString(text) {
		return Verdict{
			Valid:      false,
			ReasonCode: ReasonNoContactInfo,
			Message:    "Resume appears incomplete. A valid resume should contain contact information (email or phone number).",
		}
	}

	return Verdict{Valid: true}
}

// ValidateJobDescription implements DocumentValidator.
func (v *documentValidator) ValidateJobDescription(text string) Verdict {
	trimmedText := strings.TrimSpace(text)
	if len(trimmedText) < 50 {
		return Verdict{
			Valid:      false,
			ReasonCode: ReasonTooShort,
			Message:    "Job description appears to be empty or too short. Please provide a proper job description (minimum 50 characters).",
		}
	}

	lowerText := strings.ToLower(text)

	// Catch degenerate repeated input like "ai ai ai ai ai ai".
	words := strings.Fields(strings.ToLower(trimmedText))
	if len(words) > 5 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		if float64(len(unique))/float64(len(words)) < 0.3 {
			return Verdict{
				Valid:      false,
				ReasonCode: ReasonRepetitiveText,
				Message:    "Job description appears to contain repetitive text. Please provide a genuine job description with requirements and responsibilities.",
			}
		}
	}

	for _, fragment := range echoedErrorFragments {
		if strings.Contains(lowerText, fragment) {
			return Verdict{
				Valid:      false,
				ReasonCode: ReasonEchoedError,
				Message:    "Please enter a real job description, not an error message or placeholder text.",
			}
		}
	}

	if countKeywordHits(lowerText, jdKeywords) < 4 {
		return Verdict{
			Valid:      false,
			ReasonCode: ReasonInsufficientSignal,
			Message:    "This does not appear to be a valid job description. A job description should include requirements, responsibilities, qualifications, or skills needed for the role.",
		}
	}

	if len(strings.Fields(trimmedText)) < 30 {
		return Verdict{
			Valid:      false,
			ReasonCode: ReasonTooBrief,
			Message:    "Job description is too brief. Please provide a detailed job description (minimum 30 words) with role requirements and responsibilities.",
		}
	}

	return Verdict{Valid: true}
}
