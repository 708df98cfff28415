package controller

import (
	"auth-service/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type RoleController struct {
	roleService *service.RoleService
	logger      *logrus.Logger
	tracer      trace.Tracer
}

func NewRoleController(roleService *service.RoleService, logger *logrus.Logger) *RoleController {
	return &RoleController{roleService, logger, otel.Tracer("RoleController")}
}

// List is only reachable through RoleRequired(ADMINISTRATOR).
func (c *RoleController) List(ctx *fiber.Ctx) error {
	userContext, span := c.tracer.Start(ctx.UserContext(), "List")
	defer span.End()

	roles, err := c.roleService.List(userContext)
	if err != nil {
		return err
	}
	return ctx.JSON(roles)
}
