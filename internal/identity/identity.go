package identity

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the authenticated caller as asserted by the identity provider.
// The zero value is the anonymous caller.
type Identity struct {
	ID            uuid.UUID
	Name          string
	Roles         []string
	Authenticated bool
}

// Anonymous returns the unauthenticated identity.
func Anonymous() Identity {
	return Identity{}
}

// FromContext builds an Identity from the validated JWT stored in Fiber
// context locals. Missing or malformed claims yield the anonymous identity,
// not an error; authorization decisions happen downstream.
func FromContext(c *fiber.Ctx) Identity {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Anonymous()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Anonymous()
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return Anonymous()
	}

	ident := Identity{ID: id, Authenticated: true}
	ident.Name, _ = claims["name"].(string)

	if raw, ok := claims["roles"].([]interface{}); ok {
		for _, r := range raw {
			if role, ok := r.(string); ok && role != "" {
				ident.Roles = append(ident.Roles, role)
			}
		}
	}
	return ident
}
