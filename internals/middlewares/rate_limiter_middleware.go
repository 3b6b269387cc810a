package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "assignment_backend/internals/helpers"
)

func ipLimiter(max int, window time.Duration, message string) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: untuk semua endpoint biasa. max <= 0 disables it.
func GlobalRateLimiter(max int) fiber.Handler {
	return ipLimiter(max, time.Minute, "❌ Too many requests, try again later.")
}

// Rate limiter untuk /jwt (lebih ketat)
func TokenRateLimiter(max int) fiber.Handler {
	return ipLimiter(max, time.Minute, "❌ Too many token requests, try again in a minute.")
}
