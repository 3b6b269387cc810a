package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
)

const HeaderRequestID = "X-Request-ID"

// RequestContext tags the request with an id (Locals "reqid" + response
// header) and bounds store calls made through c.UserContext() by timeout.
// Cancellation is best-effort: drivers may not abort in-flight work.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = utils.UUID()
		}
		c.Locals("reqid", reqID)
		c.Set(HeaderRequestID, reqID)

		if timeout <= 0 {
			return c.Next()
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
