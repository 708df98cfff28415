package route

import (
	"auth-service/internal/config/metrics"
	"auth-service/internal/constant"
	"auth-service/internal/controller"
	"auth-service/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RouteConfig handles route registration
type RouteConfig struct {
	App *fiber.App
}

// NewRouteConfig initializes the router
func NewRouteConfig(app *fiber.App) *RouteConfig {
	return &RouteConfig{app}
}

// RegisterOpsRoutes exposes health and Prometheus endpoints.
func (r *RouteConfig) RegisterOpsRoutes(healthController *controller.HealthController) {
	r.App.Get("/health", healthController.Check)
	r.App.Get("/metrics", metrics.Handler())
}

// RegisterAuthRoutes defines the credential endpoints
func (r *RouteConfig) RegisterAuthRoutes(authController *controller.AuthController) {
	r.App.Post("/login", authController.Login)
	r.App.Post("/signup", authController.Signup)
	r.App.Post("/logout", authController.Logout)
}

// RegisterUserRoutes defines routes that need an identity cookie
func (r *RouteConfig) RegisterUserRoutes(userController *controller.UserController, authMiddleware fiber.Handler) {
	r.App.Get("/me", authMiddleware, userController.Me)
	r.App.Get("/protected", authMiddleware, middleware.RoleRequired(constant.RoleAdministrator), userController.Protected)
}

func (r *RouteConfig) RegisterMediaRoutes(mediaController *controller.MediaController) {
	r.App.Get("/media/*", mediaController.Serve)
}

// RegisterRoleRoutes exposes the role catalogue to administrators.
func (r *RouteConfig) RegisterRoleRoutes(roleController *controller.RoleController, authMiddleware fiber.Handler) {
	r.App.Get("/roles", authMiddleware, middleware.RoleRequired(constant.RoleAdministrator), roleController.List)
}
