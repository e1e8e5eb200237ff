package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"atscribe/resume-analyzer/internal/models"
	"atscribe/resume-analyzer/internal/services"
)

type AnalysisHandler struct {
	pdfParser       services.PDFParserService
	analysisService services.AnalysisService
	maxFileSize     int64
}

func NewAnalysisHandler(
	pdfParser services.PDFParserService,
	analysisService services.AnalysisService,
	maxFileSize int64,
) *AnalysisHandler {
	return &AnalysisHandler{
		pdfParser:       pdfParser,
		analysisService: analysisService,
		maxFileSize:     maxFileSize,
	}
}

// HandleAnalyze handles POST /analysis/analyze
func (h *AnalysisHandler) HandleAnalyze(c *fiber.Ctx) error {
	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "resume file is required",
		})
	}

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Resume file too large",
		})
	}

	resumeText, err := readPDFText(resumeFile, h.pdfParser)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Could not read the resume PDF. Please upload a text-based PDF.",
		})
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

	data, err := h.analysisService.Analyze(c.Context(), sessionID, resumeText, jobDescription)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.AnalyzeResponse{
		Success:   true,
		SessionID: sessionID,
		Data:      *data,
	})
}

// HandleGetAnalysis handles GET /analysis/:sessionId
func (h *AnalysisHandler) HandleGetAnalysis(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	analysis, err := h.analysisService.GetBySession(sessionID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.AnalyzeResponse{
		Success:   true,
		SessionID: analysis.SessionID,
		Data: models.AnalysisData{
			OverallScore:            analysis.OverallScore,
			SemanticScore:           analysis.SemanticScore,
			SkillScore:              analysis.SkillScore,
			Feedback:                analysis.Feedback,
			SoftSkillsRequired:      analysis.SoftSkillsRequired,
			SoftSkillsPresent:       analysis.SoftSkillsPresent,
			TechnicalSkillsRequired: analysis.TechnicalSkillsRequired,
			TechnicalSkillsPresent:  analysis.TechnicalSkillsPresent,
			Recommendations:         analysis.Recommendations,
		},
	})
}
