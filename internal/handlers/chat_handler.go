package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"atscribe/resume-analyzer/internal/models"
	"atscribe/resume-analyzer/internal/services"
)

type ChatHandler struct {
	pdfParser   services.PDFParserService
	chatService services.ChatService
	maxFileSize int64
}

func NewChatHandler(
	pdfParser services.PDFParserService,
	chatService services.ChatService,
	maxFileSize int64,
) *ChatHandler {
	return &ChatHandler{
		pdfParser:   pdfParser,
		chatService: chatService,
		maxFileSize: maxFileSize,
	}
}

// HandleInit handles POST /chat/init
func (h *ChatHandler) HandleInit(c *fiber.Ctx) error {
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

	sessionID := c.FormValue("sessionId")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if err := h.chatService.InitChat(sessionID, resumeText); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.ChatInitResponse{
		Success:   true,
		SessionID: sessionID,
		Message:   "Chat initialized. Ask me anything about this resume.",
	})
}

// HandleMessage handles POST /chat/message
func (h *ChatHandler) HandleMessage(c *fiber.Ctx) error {
	var req models.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	if req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "session_id is required",
		})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "message is required",
		})
	}

	reply, messages, err := h.chatService.SendMessage(c.Context(), req.SessionID, req.Message)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.ChatMessageResponse{
		Success:  true,
		Response: reply,
		Messages: messages,
	})
}

// HandleHistory handles GET /chat/:sessionId
func (h *ChatHandler) HandleHistory(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	messages, err := h.chatService.History(sessionID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"session_id": sessionID,
		"messages":   messages,
	})
}

// HandleClear handles DELETE /chat/:sessionId
func (h *ChatHandler) HandleClear(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	if err := h.chatService.ClearChat(sessionID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Chat history cleared",
	})
}
