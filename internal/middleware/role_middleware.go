package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/selimacar/studiofoto-backend/internal/models"
)

// RequireAdmin, AuthMiddleware'den sonra çalışır ve admin olmayan
// istekleri 403 ile keser.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(models.UserRole)
		if !ok || role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Admin access required"))
		}
		return c.Next()
	}
}
