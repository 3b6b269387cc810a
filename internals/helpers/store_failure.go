package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// StoreFailure logs a failed store call and answers the request.
// Taxonomy errors (invalid id, validation) keep their status; anything else is a 500.
func StoreFailure(c *fiber.Ctx, op string, err error) error {
	status := StatusFor(err)
	reqID, _ := c.Locals("reqid").(string)

	ev := log.Warn()
	if status >= fiber.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(err).Str("op", op).Str("request_id", reqID).Int("status", status).Msg("store call failed")

	switch {
	case errors.Is(err, ErrInvalidID):
		return JsonError(c, status, "invalid id format")
	case status >= fiber.StatusInternalServerError:
		return JsonError(c, status, "database operation failed")
	default:
		return JsonError(c, status, err.Error())
	}
}
