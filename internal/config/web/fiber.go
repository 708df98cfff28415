package web

import (
	"errors"

	"auth-service/internal/config/env"
	"auth-service/internal/config/validation"
	"auth-service/internal/dto"
	"auth-service/internal/utils/apperrors"

	"github.com/goccy/go-json"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

const (
	messageNotImplemented   = "Sorry! Feature under construction"
	messageMethodNotAllowed = "Method not allowed"
)

// NewFiber initializes a new Fiber app with custom configurations.
func NewFiber(log *logrus.Logger, config *env.Config) *fiber.App {
	var app = fiber.New(fiber.Config{
		AppName:      config.App.Name,
		ErrorHandler: NewErrorHandler(log),
		Prefork:      config.Web.Prefork,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	if config.Sentry.DSN != "" {
		app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}

	// Recover middleware to prevent crashes from panics
	app.Use(recover.New())
	app.Use(otelfiber.Middleware())

	return app
}

// NewErrorHandler maps every error returned by a handler or middleware to
// a status code and a {"message": ...} body. Unknown errors never leak.
func NewErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		entry := log.WithContext(ctx.UserContext())

		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			entry.WithError(err).Debug("Caught application error")
			return ctx.Status(appErr.Code).JSON(appErr.ToMap())
		}

		var ve *validation.ValidationError
		if errors.As(err, &ve) {
			entry.WithError(err).Debug("Caught go-playground validation error")
			return ctx.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: "Validation failed",
				Errors:  ve.Errors,
			})
		}

		if errors.Is(err, apperrors.ErrNotImplemented) {
			entry.WithError(err).Warnf("%s %s is not implemented", ctx.Method(), ctx.Path())
			return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: messageNotImplemented})
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			entry.WithError(fe).Debug("Caught Fiber error")
			switch fe.Code {
			case fiber.StatusNotFound:
				return ctx.Status(fe.Code).JSON(dto.ErrorResponse{Message: apperrors.ErrNotFound.Message})
			case fiber.StatusMethodNotAllowed:
				return ctx.Status(fe.Code).JSON(dto.ErrorResponse{Message: messageMethodNotAllowed})
			}
			return ctx.Status(fe.Code).JSON(dto.ErrorResponse{Message: fe.Message})
		}

		entry.WithError(err).Debug("Unhandled error detail")
		entry.WithFields(logrus.Fields{
			"method": ctx.Method(),
			"path":   ctx.Path(),
		}).Error("Internal server error")
		if hub := sentryfiber.GetHubFromContext(ctx); hub != nil {
			hub.CaptureException(err)
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: apperrors.ErrInternal.Message})
	}
}
