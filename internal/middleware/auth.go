package middleware

import (
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/config"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected validates the identity provider's token. Claims land in
// c.Locals("user") for identity.FromContext.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}
