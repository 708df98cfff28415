package controller

import (
	"time"

	"auth-service/internal/config/env"
	"auth-service/internal/config/validation"
	"auth-service/internal/dto"
	"auth-service/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type AuthController struct {
	AuthService *service.AuthService
	JwtService  *service.JwtService
	UserService *service.UserService
	Config      *env.Config
	Logger      *logrus.Logger
	Validation  *validation.Validation
	Tracer      trace.Tracer
}

func NewAuthController(authService *service.AuthService, jwtService *service.JwtService, userService *service.UserService, config *env.Config, logger *logrus.Logger, validator *validation.Validation) *AuthController {
	return &AuthController{authService, jwtService, userService, config, logger, validator, otel.Tracer("AuthController")}
}

// Login sets the identity cookie and its CSRF companion on success.
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "Login")
	defer span.End()

	var req dto.LoginRequest
	if err := c.Validation.ParseAndValidate(ctx, &req); err != nil {
		c.Logger.WithContext(userContext).WithError(err).Debug("Invalid login request")
		return err
	}

	token, err := c.AuthService.Login(userContext, &req)
	if err != nil {
		return err
	}

	c.setCookies(ctx, token.Value, token.CsrfToken, token.ExpiresAt)
	return ctx.JSON(dto.MessageResponse{Message: "Success!"})
}

func (c *AuthController) Signup(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "Signup")
	defer span.End()

	var req dto.SignupRequest
	if err := c.Validation.ParseAndValidate(ctx, &req); err != nil {
		c.Logger.WithContext(userContext).WithError(err).Debug("Invalid signup request")
		return err
	}

	user, err := c.AuthService.Register(userContext, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(user)
}

// Logout expires both cookies. Tokens are stateless, so nothing is revoked;
// the cached profile of a still-valid token is dropped.
func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "Logout")
	defer span.End()

	if raw := ctx.Cookies(c.Config.JWT.AccessCookieName); raw != "" {
		if claims, err := c.JwtService.ValidateAccessToken(userContext, raw); err == nil {
			c.UserService.ForgetProfile(userContext, uuid.MustParse(claims.Subject))
		}
	}

	c.setCookies(ctx, "", "", time.Unix(0, 0))
	return ctx.JSON(dto.MessageResponse{Message: "Bye!"})
}

func (c *AuthController) setCookies(ctx *fiber.Ctx, access, csrf string, expires time.Time) {
	jwtConfig := c.Config.JWT

	ctx.Cookie(&fiber.Cookie{
		Name:     jwtConfig.AccessCookieName,
		Value:    access,
		Path:     "/",
		Domain:   jwtConfig.CookieDomain,
		Expires:  expires,
		Secure:   jwtConfig.CookieSecure,
		HTTPOnly: true,
		SameSite: jwtConfig.CookieSameSite,
	})
	if !jwtConfig.CsrfProtect {
		return
	}
	// readable by scripts so they can echo it in the CSRF header
	ctx.Cookie(&fiber.Cookie{
		Name:     jwtConfig.CsrfCookieName,
		Value:    csrf,
		Path:     "/",
		Domain:   jwtConfig.CookieDomain,
		Expires:  expires,
		Secure:   jwtConfig.CookieSecure,
		HTTPOnly: false,
		SameSite: jwtConfig.CookieSameSite,
	})
}
