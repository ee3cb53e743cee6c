package middleware

import (
	"strings"

	"trivia-api/internal/logger"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	SubjectKey          = "subject" // fiber.Ctx locals key holding the token subject
)

// Protected requires a valid admin JWT in the Authorization header.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if !strings.HasPrefix(authHeader, BearerSchema) {
			logger.Get().Debug("Rejecting request without bearer token", zap.String("path", c.Path()))
			return WriteError(c, fiber.StatusUnauthorized)
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return WriteError(c, fiber.StatusUnauthorized)
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			return WriteError(c, fiber.StatusUnauthorized)
		}

		c.Locals(SubjectKey, claims.Subject)
		return c.Next()
	}
}
