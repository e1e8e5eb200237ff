package handlers

import (
	"github.com/gofiber/fiber/v2"

	"atscribe/resume-analyzer/internal/models"
	"atscribe/resume-analyzer/internal/services"
)

const (
	minPlanDays = 1
	maxPlanDays = 365
)

type PlanHandler struct {
	planService services.PlanService
}

func NewPlanHandler(planService services.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// HandleGenerate handles POST /prep-plan/generate
func (h *PlanHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.PlanRequest
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
	if req.Days < minPlanDays || req.Days > maxPlanDays {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "days must be between 1 and 365",
		})
	}

	planText, err := h.planService.GeneratePlan(c.Context(), req.SessionID, req.Days)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.PlanResponse{
		Success:  true,
		PlanText: planText,
	})
}

// HandleList handles GET /prep-plan/:sessionId
func (h *PlanHandler) HandleList(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	plans, err := h.planService.ListPlans(sessionID)
	if err != nil {
		return respondError(c, err)
	}

	summaries := make([]models.PlanSummary, 0, len(plans))
	for _, plan := range plans {
		summaries = append(summaries, models.PlanSummary{
			Days:      plan.Days,
			PlanText:  plan.PlanText,
			CreatedAt: plan.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"session_id": sessionID,
		"plans":      summaries,
	})
}
