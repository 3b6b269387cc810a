package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the app-wide fiber.ErrorHandler. *fiber.Error keeps its own
// code and message; everything else goes through StatusFor.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		return JsonError(c, status, "")
	}
	return JsonError(c, status, err.Error())
}
