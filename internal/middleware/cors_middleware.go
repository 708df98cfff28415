package middleware

import (
	"auth-service/internal/config/env"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// Cors allows the configured origins to call the API with cookies.
// Credentials are only allowed for an explicit origin list.
func Cors(config *env.Config) fiber.Handler {
	origins := config.Web.Cors.AllowOrigins
	if origins == "" {
		origins = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, " + CsrfHeader,
		ExposeHeaders:    "Content-Length",
		AllowCredentials: origins != "*",
	})
}
