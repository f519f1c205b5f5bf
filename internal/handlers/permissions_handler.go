package handlers

import (
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/identity"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/permissions"
	"github.com/gofiber/fiber/v2"
)

type PermissionsHandler struct{}

func NewPermissionsHandler() *PermissionsHandler {
	return &PermissionsHandler{}
}

// Get returns the caller's capability set so the presentation layer can
// decide which controls to show. The server re-checks on every mutation
// regardless; this is display guidance, not authorization.
func (h *PermissionsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(permissions.Resolve(identity.FromContext(c)))
}
