package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"assignment_backend/internals/configs"
	"assignment_backend/internals/middlewares/logger"
)

// RequestTimeout bounds every store call made with c.UserContext().
const RequestTimeout = 5 * time.Second

// SetupMiddlewares installs the app-wide chain, outermost first.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(RequestTimeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(GlobalRateLimiter(cfg.GlobalRateLimit))
}
