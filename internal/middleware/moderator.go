package middleware

import (
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/dto"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/identity"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/permissions"
	"github.com/gofiber/fiber/v2"
)

// ModeratorRequired gates the moderation panel routes on CanModerate,
// resolved fresh from the request's role claims. Individual mutations
// re-check their specific capability in the service layer; this guard only
// keeps non-moderators out of the panel surface.
func ModeratorRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		caps := permissions.Resolve(identity.FromContext(c))
		if !caps.CanModerate {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Moderator access required",
			})
		}
		return c.Next()
	}
}
