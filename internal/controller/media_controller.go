package controller

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"auth-service/internal/config/env"
	"auth-service/internal/utils/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type MediaController struct {
	root   string
	logger *logrus.Logger
	tracer trace.Tracer
}

func NewMediaController(config *env.Config, logger *logrus.Logger) *MediaController {
	root, err := filepath.Abs(config.Media.Root)
	if err != nil {
		logger.WithError(err).Warn("media root is not absolute, serving relative to working directory")
		root = config.Media.Root
	}
	return &MediaController{root, logger, otel.Tracer("MediaController")}
}

// Serve streams a file below the media root. Anything missing, a directory
// or resolving outside the root is reported as not found.
func (c *MediaController) Serve(ctx *fiber.Ctx) error {
	userContext, span := c.tracer.Start(ctx.UserContext(), "Serve")
	defer span.End()

	rel, err := url.PathUnescape(ctx.Params("*"))
	if err != nil || rel == "" {
		return apperrors.ErrNotFound
	}

	file, ok := c.resolve(rel)
	if !ok {
		c.logger.WithContext(userContext).WithField("path", rel).Warn("media path escapes root")
		return apperrors.ErrNotFound
	}

	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return apperrors.ErrNotFound
	}

	return ctx.SendFile(file)
}

func (c *MediaController) resolve(rel string) (string, bool) {
	cleaned := path.Clean("/" + strings.ReplaceAll(rel, "\\", "/"))
	file := filepath.Join(c.root, filepath.FromSlash(cleaned))
	if !strings.HasPrefix(file, c.root+string(filepath.Separator)) {
		return "", false
	}
	return file, true
}
