package helper

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"assignment_backend/internals/features/users/auth/service"
)

// Locals keys filled by the auth middleware.
const (
	LocIdentity  = "identity"
	LocUserEmail = "user_email"
	LocRawToken  = "raw_token"
)

type ctxKey struct{}

// Attach stores the identity in Locals and in the request's user context.
func Attach(c *fiber.Ctx, id service.Identity, raw string) {
	c.Locals(LocIdentity, id)
	c.Locals(LocUserEmail, id.Email)
	c.Locals(LocRawToken, raw)
	c.SetUserContext(context.WithValue(c.UserContext(), ctxKey{}, id))
}

// CurrentIdentity returns the identity resolved by the auth middleware.
func CurrentIdentity(c *fiber.Ctx) (service.Identity, bool) {
	id, ok := c.Locals(LocIdentity).(service.Identity)
	return id, ok
}

// IdentityFromContext is for code that only sees a context.Context.
func IdentityFromContext(ctx context.Context) (service.Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(service.Identity)
	return id, ok
}
