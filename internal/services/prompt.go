package services

import (
	"fmt"
	"strings"
)

// Truncation bounds keep prompts inside provider context windows. Design
// parameters, not tuning knobs.
const (
	analysisTextLimit = 4000
	rankingTextLimit  = 3000
	planTextLimit     = 1500
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}

// BuildAnalysisPrompt creates the single-candidate fit analysis prompt.
func (pb *PromptBuilder) BuildAnalysisPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert AI resume evaluator with deep knowledge of industry-specific skills and job requirements.

Resume Text:
%s

Job Description:
%s

**CRITICAL INSTRUCTIONS:**

1. **First, validate if this is a resume:**
   - If the text is NOT a resume (e.g., job posting, blank doc, random text), respond ONLY with:
   {
     "resume_valid": false,
     "reason": "Brief explanation why it's not a resume"
   }

2. **DOMAIN MATCH ANALYSIS - BE STRICT:**
   - Identify the JOB DOMAIN from the job description (software, hardware, consulting, finance, marketing, data, design, HR).
   - Identify the RESUME DOMAIN from education, job titles, projects and skills.
   - If the domains are COMPLETELY DIFFERENT (e.g., hardware resume for a consulting job), overall_score must be 15-35, skill_score 10-30, semantic_score 10-35, and the feedback must clearly state the domain mismatch as the PRIMARY weakness.
   - If the domains overlap partially, score in the 40-70 range on actual skill matches.
   - If the domains align well, score in the 50-95 range on experience level and skill depth.

3. **SCORING RULES - BE REALISTIC AND STRICT:**
   - overall_score (0-100): 0-20 wrong field entirely, 21-40 different domain with transferable skills, 41-60 same domain but junior or different specialization, 61-80 good match with gaps, 81-100 excellent match.
   - skill_score (0-100): count ACTUAL matching skills between resume and job description; no credit for unrelated skills.
   - semantic_score (0-100): contextual and industry alignment between the candidate's experience and the role.

4. **Technical Skills - BE DOMAIN-AWARE:**
   - Extract technical skills explicitly mentioned in the job description and infer industry-standard skills from the job title.

5. **Recommendations - BE HONEST:**
   - Write 6-8 personalized, actionable recommendations. If a domain mismatch exists, state it clearly as the top recommendation. Use natural, conversational language.

6. **Qualitative Feedback - STRUCTURED AND HONEST:**
   - Format with STRENGTHS, WEAKNESSES/GAPS, OPPORTUNITIES and RECOMMENDATIONS sections, 3-4 bullet points each. If a domain mismatch exists, make it the FIRST weakness.

**OUTPUT FORMAT (JSON only, no markdown):**

{
  "resume_valid": true,
  "overall_score": number (0-100),
  "semantic_score": number (0-100),
  "skill_score": number (0-100),
  "feedback": "STRENGTHS\n- Point 1\n\nWEAKNESSES/GAPS\n- Point 1\n\nOPPORTUNITIES\n- Point 1\n\nRECOMMENDATIONS\n- Point 1",
  "soft_skills_required": ["Communication", "Teamwork"],
  "soft_skills_present": ["Leadership", "Collaboration"],
  "technical_skills_required": ["SQL", "Python"],
  "technical_skills_present": ["Java", "React"],
  "recommendations": ["Recommendation 1", "Recommendation 2"]
}`,
		truncate(resumeText, analysisTextLimit), truncate(jobDescription, analysisTextLimit))
}

// BuildRankingPrompt creates the multi-resume ranking prompt. The provider is
// instructed to return candidates pre-sorted by descending fitScore.
func (pb *PromptBuilder) BuildRankingPrompt(jobDescription string, resumes []ResumeFile) string {
	var resumeSection strings.Builder
	for i, r := range resumes {
		resumeSection.WriteString(fmt.Sprintf("\nResume %d (%s):\n%s\n---\n", i+1, r.FileName, truncate(r.Text, rankingTextLimit)))
	}

	return fmt.Sprintf(`You are an expert AI recruiter with deep knowledge of industry-specific skills and job requirements.

Job Description:
%s

Resumes:
%s

**INTELLIGENT RANKING INSTRUCTIONS:**

1. **DOMAIN MATCH ANALYSIS - BE CRITICAL:** identify the job domain from the job description and, for EACH resume, identify its domain from education, job titles, projects and primary skills. State any domain mismatch clearly in the justification.

2. **Infer required skills** from the job title and role (e.g., "Data Analyst" -> SQL, Excel, Power BI, Python, Tableau).

3. **Evaluate each resume STRICTLY on:** domain alignment first, then skills match, experience relevance and depth, education alignment, and quantifiable achievements.

4. **fitScore - BE REALISTIC:** 15-35 wrong domain, 35-55 different domain with transferable skills, 55-75 same domain but different specialization or junior, 75-90 strong match with minor gaps, 90-100 excellent match.

5. **Strengths - BE HONEST:** call out exact matching skills only when domain-relevant; mention relevant certifications, education and quantifiable achievements.

6. **Missing Skills - BE DOMAIN-AWARE:** list the critical skills for the ACTUAL job domain that the candidate lacks.

7. **Justification - BE FRANK:** explain why the score is low or high, including any domain mismatch.

**OUTPUT FORMAT (JSON only, no markdown):**

{
  "rankedCandidates": [
    {
      "rank": 1,
      "fileName": "resume_name.pdf",
      "name": "Candidate Name (extract from resume, or 'Candidate X')",
      "fitScore": number (15-100),
      "strengths": ["Specific strength 1", "Specific strength 2"],
      "missingSkills": ["Critical domain skill 1", "Critical domain skill 2"],
      "justification": "Honest assessment of the candidate's fit for this role."
    }
  ]
}

**CRITICAL:** Rank from highest to lowest fitScore. BE STRICT about domain alignment.`,
		jobDescription, resumeSection.String())
}

// BuildChatSystemPrompt creates the system prompt that pins chat answers to the
// uploaded resume.
func (pb *PromptBuilder) BuildChatSystemPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an AI assistant that gives **detailed, step-by-step, professional answers**
based only on the given resume.

Resume:
"""
%s
"""

Rules:
1. Always analyze the question before answering.
2. Provide at least 3-5 sentences per answer (structured and professional).
3. Only answer based on the resume.
4. If unrelated to resume, reply: "I can only answer based on the resume."
5. Use formatting (bullet points, numbered steps) if it improves clarity.`, resumeText)
}

// BuildPlanPrompt creates the preparation plan prompt. Missing skills are
// computed locally from the stored analysis skill sets before the call.
func (pb *PromptBuilder) BuildPlanPrompt(resumeText, jobDescription string, days int, missingTechnical, missingSoft []string, skillScore int) string {
	return fmt.Sprintf(`Resume: %s
Job Description: %s

The candidate has %d days to prepare.

Missing Technical Skills: %s

Missing Soft Skills: %s

Current Skill Match Score: %d%%

Create a comprehensive, structured %d-day preparation plan that includes:

1. **Overview**: Brief assessment of current state vs. target
2. **Phase Breakdown**: Divide the %d days into logical phases (e.g., fundamentals, intermediate, advanced)
3. **Daily Schedule**: Specific daily tasks with time allocations
4. **Skill Focus Areas**: Prioritize missing skills and weak areas
5. **Resources**: Suggest specific learning materials, courses, practice platforms
6. **Milestones**: Weekly checkpoints and goals
7. **Mock Interviews**: Schedule practice sessions
8. **Resume Updates**: When and how to update resume as skills improve

Make it actionable, realistic, and tailored to the candidate's current level and the job requirements.
Format with clear headers, bullet points, and numbered lists for easy readability.`,
		truncate(resumeText, planTextLimit), truncate(jobDescription, planTextLimit),
		days, strings.Join(missingTechnical, ", "), strings.Join(missingSoft, ", "),
		skillScore, days, days)
}

// BuildAssignmentsPrompt creates the candidate assessment assignment prompt.
func (pb *PromptBuilder) BuildAssignmentsPrompt(jobDescription string) string {
	return fmt.Sprintf(`You are an expert recruiter and talent assessment specialist. Based on the following job description, generate 3-5 practical assignment ideas that can help assess candidates' skills.

Job Description:
%s

Generate assignment ideas that:
1. Test real-world problem-solving skills mentioned in the JD
2. Are achievable within realistic timeframes (1-4 hours)
3. Cover both technical and analytical abilities
4. Are practical and relevant to the actual job role
5. Have clear evaluation criteria

Return output strictly in JSON format:
{
  "assignments": [
    {
      "title": "Assignment Title",
      "description": "Detailed description of what candidates need to do (2-3 sentences)",
      "evaluationCriteria": "What you'll evaluate (e.g., code quality, analytical thinking, clarity)",
      "estimatedTime": "X hours"
    }
  ]
}

Generate 3-5 varied assignments covering different skill aspects from the JD.`, jobDescription)
}
