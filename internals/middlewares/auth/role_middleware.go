package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRoles permite el acceso solo a los roles indicados.
// El mensaje se construye con los helpers de constants (RoleErrorEducator, etc).
func OnlyRoles(message string, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing role")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return fiber.NewError(fiber.StatusForbidden, message)
	}
}
