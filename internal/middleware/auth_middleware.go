package middleware

import (
	"crypto/subtle"

	"auth-service/internal/config/env"
	"auth-service/internal/model"
	"auth-service/internal/service"
	"auth-service/internal/utils/apperrors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

const (
	// CsrfHeader must echo the csrf claim on unsafe requests.
	CsrfHeader = "X-CSRF-Token"

	authKey   = "auth"
	claimsKey = "claims"
	tokenKey  = "token"
)

// AuthMiddleware reads the identity token from its cookie, verifies it and
// resolves the subject to a stored user. Every failure is ErrNotAuthorized.
func AuthMiddleware(jwtService *service.JwtService, userService *service.UserService, config *env.Config, log *logrus.Logger) fiber.Handler {
	tracer := otel.Tracer("AuthMiddleware")

	return jwtware.New(jwtware.Config{
		TokenLookup: "cookie:" + config.JWT.AccessCookieName,
		KeyFunc:     jwtService.KeyFunc(),
		Claims:      &service.Claims{},
		ContextKey:  tokenKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.WithContext(c.UserContext()).WithError(err).Debug("identity token rejected")
			return apperrors.ErrNotAuthorized
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			spanCtx, span := tracer.Start(c.UserContext(), "AuthMiddleware")
			defer span.End()

			logger := log.WithContext(spanCtx)

			token, _ := c.Locals(tokenKey).(*jwt.Token)
			if token == nil {
				return apperrors.ErrNotAuthorized
			}
			claims, ok := token.Claims.(*service.Claims)
			if !ok || service.CheckClaims(claims) != nil {
				logger.Warn("identity token carries unexpected claims")
				return apperrors.ErrNotAuthorized
			}

			if config.JWT.CsrfProtect && !isSafeMethod(c.Method()) {
				sent := c.Get(CsrfHeader)
				if sent == "" || subtle.ConstantTimeCompare([]byte(sent), []byte(claims.Csrf)) != 1 {
					logger.WithField("path", c.Path()).Warn("csrf token missing or mismatched")
					return apperrors.ErrCsrfTokenMismatch
				}
			}

			user, err := userService.CurrentUser(spanCtx, uuid.MustParse(claims.Subject))
			if err != nil {
				return err
			}

			c.Locals(authKey, user)
			c.Locals(claimsKey, claims)
			return c.Next()
		},
	})
}

func isSafeMethod(method string) bool {
	switch method {
	case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions, fiber.MethodTrace:
		return true
	}
	return false
}

// GetUser returns the user resolved by AuthMiddleware, or nil.
func GetUser(ctx *fiber.Ctx) *model.User {
	user, _ := ctx.Locals(authKey).(*model.User)
	return user
}

// GetClaims returns the verified identity token claims, or nil.
func GetClaims(ctx *fiber.Ctx) *service.Claims {
	claims, _ := ctx.Locals(claimsKey).(*service.Claims)
	return claims
}
