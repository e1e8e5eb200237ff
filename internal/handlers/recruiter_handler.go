package handlers

import (
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"atscribe/resume-analyzer/internal/models"
	"atscribe/resume-analyzer/internal/services"
)

type RecruiterHandler struct {
	pdfParser      services.PDFParserService
	rankingService services.RankingService
	maxResumes     int
	maxFileSize    int64
}

func NewRecruiterHandler(
	pdfParser services.PDFParserService,
	rankingService services.RankingService,
	maxResumes int,
	maxFileSize int64,
) *RecruiterHandler {
	return &RecruiterHandler{
		pdfParser:      pdfParser,
		rankingService: rankingService,
		maxResumes:     maxResumes,
		maxFileSize:    maxFileSize,
	}
}

// HandleRankResumes handles POST /recruiter/rank-resumes
func (h *RecruiterHandler) HandleRankResumes(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "failed to parse multipart form",
		})
	}

	files := form.File["resumes"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "At least one resume file is required",
		})
	}
	if len(files) > h.maxResumes {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("Too many resumes. Maximum is %d per batch", h.maxResumes),
		})
	}
	for _, fh := range files {
		if fh.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Error: fmt.Sprintf("File too large: %s", fh.Filename),
			})
		}
	}

	jobDescription, err := resolveJobDescription(c, h.pdfParser)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Could not read the job description PDF. Please upload a text-based PDF.",
		})
	}
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "jobDescription or jobDescriptionFile is required",
		})
	}

	sessionID := c.FormValue("sessionId")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	// Extraction fans out per file; unreadable files are collected, not
	// short-circuited, so the whole batch can be reported back at once.
	resumes := make([]services.ResumeFile, len(files))
	var (
		mu      sync.Mutex
		invalid []models.InvalidFile
	)

	var g errgroup.Group
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			text, err := readPDFText(fh, h.pdfParser)
			if err != nil {
				mu.Lock()
				invalid = append(invalid, models.InvalidFile{
					FileName: fh.Filename,
					Reason:   "Could not extract text from this PDF",
				})
				mu.Unlock()
				return nil
			}
			resumes[i] = services.ResumeFile{FileName: fh.Filename, Text: text}
			return nil
		})
	}
	g.Wait()

	if len(invalid) > 0 {
		return respondError(c, &services.BatchRejectedError{Files: invalid})
	}

	ranked, err := h.rankingService.RankResumes(c.Context(), sessionID, jobDescription, resumes)
	if err != nil {
		return respondError(c, err)
	}

	response := models.RankResponse{
		Success:          true,
		SessionID:        sessionID,
		RankedCandidates: make([]models.RankedCandidateData, 0, len(ranked)),
	}
	for _, candidate := range ranked {
		response.RankedCandidates = append(response.RankedCandidates, models.RankedCandidateData{
			Rank:          candidate.Rank,
			FileName:      candidate.FileName,
			Name:          candidate.Name,
			FitScore:      candidate.FitScore,
			Strengths:     candidate.Strengths,
			MissingSkills: candidate.MissingSkills,
			Justification: candidate.Justification,
		})
	}

	return c.JSON(response)
}

// HandleGetCandidates handles GET /recruiter/candidates/:sessionId
func (h *RecruiterHandler) HandleGetCandidates(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	candidates, err := h.rankingService.GetCandidates(sessionID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"session_id": sessionID,
		"candidates": candidates,
	})
}

// HandleUpdateCandidateStatus handles PATCH /recruiter/candidates/:id/status
func (h *RecruiterHandler) HandleUpdateCandidateStatus(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid candidate ID format",
		})
	}

	var req models.CandidateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	status := models.CandidateStatus(req.Status)
	if !models.ValidCandidateStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid status. Must be one of: pending, reviewed, shortlisted, rejected, hired",
		})
	}

	if err := h.rankingService.UpdateCandidateStatus(candidateID, status); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"status":  string(status),
	})
}

// HandleGenerateAssignments handles POST /recruiter/generate-assignments
func (h *RecruiterHandler) HandleGenerateAssignments(c *fiber.Ctx) error {
	var req models.AssignmentsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	if req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "job_description is required",
		})
	}

	assignments, err := h.rankingService.GenerateAssignments(c.Context(), req.JobDescription)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.AssignmentsResponse{
		Success:     true,
		Assignments: assignments,
	})
}
