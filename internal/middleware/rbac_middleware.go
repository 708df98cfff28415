package middleware

import (
	"errors"

	"auth-service/internal/config/metrics"
	"auth-service/internal/service"
	"auth-service/internal/utils/apperrors"

	"github.com/gofiber/fiber/v2"
)

// RoleRequired lets the request through only when the user resolved by
// AuthMiddleware holds every role in names.
func RoleRequired(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := service.AuthorizeRoles(GetUser(c), names...)
		if errors.Is(err, apperrors.ErrPermissions) {
			metrics.AccessDeniedTotal.WithLabelValues(c.Path()).Inc()
		}
		if err != nil {
			return err
		}
		return c.Next()
	}
}
