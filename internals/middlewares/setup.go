package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"techclub_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global aplikasi.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
