package handlers

import (
	"errors"
	"log/slog"

	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/dto"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/services"
	"github.com/gofiber/fiber/v2"
)

// respondError maps service failure classes onto HTTP statuses. Anything
// unclassified is a persistence failure: logged, surfaced as a generic 500,
// and never retried here because moderation actions must not be silently
// duplicated.
func respondError(c *fiber.Ctx, err error) error {
	var status int
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrPostLocked):
		status = fiber.StatusLocked
	case errors.Is(err, services.ErrConflict):
		status = fiber.StatusConflict
	default:
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
