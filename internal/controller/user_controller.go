package controller

import (
	"auth-service/internal/dto"
	"auth-service/internal/middleware"
	"auth-service/internal/service"
	"auth-service/internal/utils/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type UserController struct {
	userService *service.UserService
	logger      *logrus.Logger
	tracer      trace.Tracer
}

func NewUserController(userService *service.UserService, logger *logrus.Logger) *UserController {
	return &UserController{userService, logger, otel.Tracer("UserController")}
}

func (c *UserController) Me(ctx *fiber.Ctx) error {
	userContext, span := c.tracer.Start(ctx.UserContext(), "Me")
	defer span.End()

	user := middleware.GetUser(ctx)
	if user == nil {
		return apperrors.ErrNotAuthorized
	}

	profile, err := c.userService.GetProfile(userContext, user)
	if err != nil {
		c.logger.WithContext(userContext).WithError(err).Error("failed to build profile")
		return err
	}

	return ctx.JSON(profile)
}

// Protected is only reachable through RoleRequired(ADMINISTRATOR).
func (c *UserController) Protected(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.MessageResponse{Message: "You are an admin"})
}
