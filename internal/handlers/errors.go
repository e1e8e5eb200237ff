package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"atscribe/resume-analyzer/internal/models"
	"atscribe/resume-analyzer/internal/services"
)

// respondError maps service-layer errors onto HTTP responses. Validation and
// provider rejections are the user's problem (400), malformed provider output
// is upstream's (502), exhausted rate limits pass through as 429.
func respondError(c *fiber.Ctx, err error) error {
	var rejected *services.InputRejectedError
	if errors.As(err, &rejected) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   rejected.Verdict.Message,
			Message: rejected.Verdict.ReasonCode,
		})
	}

	var batch *services.BatchRejectedError
	if errors.As(err, &batch) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:        "Some resume files are invalid",
			InvalidFiles: batch.Files,
		})
	}

	var providerRejected *services.ProviderRejectedError
	if errors.As(err, &providerRejected) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "The uploaded file doesn't appear to be a resume",
			Message: providerRejected.Reason,
		})
	}

	var malformed *services.MalformedResponseError
	if errors.As(err, &malformed) {
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse{
			Error: "The AI service returned an unreadable response. Please try again.",
		})
	}

	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Error: "Not found",
		})
	}

	if services.IsRateLimitError(err) {
		return c.Status(fiber.StatusTooManyRequests).JSON(models.ErrorResponse{
			Error: "The AI service is currently overloaded. Please try again in a moment.",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error: "Internal server error",
	})
}
