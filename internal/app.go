package app

import (
	"fmt"

	"auth-service/internal/config/env"
	"auth-service/internal/config/validation"
	"auth-service/internal/controller"
	"auth-service/internal/middleware"
	"auth-service/internal/repository"
	"auth-service/internal/route"
	"auth-service/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BootstrapConfig carries the process-wide dependencies built once in main.
// redis may be nil when the profile cache is disabled.
type BootstrapConfig struct {
	db         *gorm.DB
	web        *fiber.App
	log        *logrus.Logger
	config     *env.Config
	validation *validation.Validation
	redis      *redis.Client
}

func NewApp(log *logrus.Logger, config *env.Config, db *gorm.DB, web *fiber.App, validation *validation.Validation, redis *redis.Client) *BootstrapConfig {
	return &BootstrapConfig{db, web, log, config, validation, redis}
}

func (app *BootstrapConfig) Bootstrap() {
	// setup repositories
	userRepository := repository.NewUserRepository(app.db)
	roleRepository := repository.NewRoleRepository(app.db)
	uow := repository.NewUnitOfWork(app.db)

	// setup services
	jwtService := service.NewJwtService(app.log, app.config)
	redisService := service.NewRedisService(app.redis, app.log)
	authService := service.NewAuthService(uow, jwtService, userRepository, roleRepository, app.log)
	userService := service.NewUserService(userRepository, redisService, app.config, app.log)
	roleService := service.NewRoleService(roleRepository, app.log)

	// setup controllers
	authController := controller.NewAuthController(authService, jwtService, userService, app.config, app.log, app.validation)
	userController := controller.NewUserController(userService, app.log)
	roleController := controller.NewRoleController(roleService, app.log)
	mediaController := controller.NewMediaController(app.config, app.log)
	healthController := controller.NewHealthController(app.db, app.redis, app.log)

	// setup middleware
	app.web.Use(middleware.Cors(app.config))
	authMiddleware := middleware.AuthMiddleware(jwtService, userService, app.config, app.log)

	// setup routes
	routeConfig := route.NewRouteConfig(app.web)
	routeConfig.RegisterOpsRoutes(healthController)
	routeConfig.RegisterAuthRoutes(authController)
	routeConfig.RegisterUserRoutes(userController, authMiddleware)
	routeConfig.RegisterRoleRoutes(roleController, authMiddleware)
	routeConfig.RegisterMediaRoutes(mediaController)
}

func (app *BootstrapConfig) Run() error {
	app.Bootstrap()
	if err := app.web.Listen(fmt.Sprintf(":%d", app.config.Web.Port)); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
