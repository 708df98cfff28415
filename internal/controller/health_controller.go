package controller

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

type HealthController struct {
	db     *gorm.DB
	redis  *redis.Client
	logger *logrus.Logger
	tracer trace.Tracer
}

// NewHealthController checks db and, when non-nil, rdb.
func NewHealthController(db *gorm.DB, rdb *redis.Client, logger *logrus.Logger) *HealthController {
	return &HealthController{db, rdb, logger, otel.Tracer("HealthController")}
}

func (h *HealthController) Check(ctx *fiber.Ctx) error {
	userContext, span := h.tracer.Start(ctx.UserContext(), "Check")
	defer span.End()

	checkCtx, cancel := context.WithTimeout(userContext, healthTimeout)
	defer cancel()

	g, gctx := errgroup.WithContext(checkCtx)
	g.Go(func() error {
		sqlDB, err := h.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(gctx)
	})
	if h.redis != nil {
		g.Go(func() error {
			return h.redis.Ping(gctx).Err()
		})
	}

	if err := g.Wait(); err != nil {
		h.logger.WithContext(userContext).WithError(err).Error("health check failed")
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return ctx.JSON(fiber.Map{"status": "ok"})
}
