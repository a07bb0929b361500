package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/selimacar/studiofoto-backend/internal/models"
	jwtPkg "github.com/selimacar/studiofoto-backend/pkg/jwt"
)

func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Authorization header is required",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid authorization header format",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid token",
			})
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid user ID in token",
			})
		}

		userEmail, ok := claims["email"].(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid email in token",
			})
		}

		role, ok := claims["role"].(string)
		if !ok {
			role = string(models.RoleClient)
		}

		c.Locals("userID", uint(userIDFloat))
		c.Locals("userEmail", userEmail)
		c.Locals("userRole", models.UserRole(role))

		return c.Next()
	}
}

// OptionalAuthMiddleware, token varsa kimliği context'e yazar; yoksa misafir
// olarak devam eder. Misafir rezervasyon endpoint'i için kullanılır.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Next()
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			return c.Next()
		}

		if userIDFloat, ok := claims["user_id"].(float64); ok {
			c.Locals("userID", uint(userIDFloat))
		}
		if userEmail, ok := claims["email"].(string); ok {
			c.Locals("userEmail", userEmail)
		}
		if role, ok := claims["role"].(string); ok {
			c.Locals("userRole", models.UserRole(role))
		}

		return c.Next()
	}
}
