package middlewares

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
)

// RecoveryMiddleware menangkap panic, log ke zerolog, lalu ErrorHandler kirim 500.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			reqID, _ := c.Locals("reqid").(string)
			log.Error().
				Str("panic", fmt.Sprint(e)).
				Str("path", c.Path()).
				Str("request_id", reqID).
				Msg("🔥 recovered from panic")
		},
	})
}
