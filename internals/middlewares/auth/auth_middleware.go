// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"assignment_backend/internals/features/users/auth/service"
	helper "assignment_backend/internals/helpers"
	helperAuth "assignment_backend/internals/helpers/auth"
)

const DefaultCookieName = "token"

type AuthJWTOpts struct {
	Tokens              *service.TokenService
	CookieName          string // default "token"
	AllowBearerFallback bool   // pakai Authorization: Bearer jika cookie kosong
}

// AuthJWT rejects requests without a valid session token and never calls the
// next handler in that case. It does no store access.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	if o.Tokens == nil {
		panic("AuthJWT: Tokens wajib diisi")
	}
	name := strings.TrimSpace(o.CookieName)
	if name == "" {
		name = DefaultCookieName
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: cookie dulu, lalu Bearer kalau diizinkan
		raw := strings.TrimSpace(c.Cookies(name))
		if raw == "" && o.AllowBearerFallback {
			if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				raw = strings.TrimSpace(authz[7:])
			}
		}
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - no token")
		}

		// 2) Verifikasi signature + exp
		id, err := o.Tokens.Verify(raw)
		switch {
		case errors.Is(err, service.ErrSigningKey):
			log.Error().Msg("AuthJWT: signing secret missing")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		case errors.Is(err, service.ErrExpiredToken):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - token expired")
		case err != nil:
			log.Debug().Err(err).Str("path", c.Path()).Msg("AuthJWT: rejected token")
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - invalid token")
		}

		// 3) Simpan identity ke context
		helperAuth.Attach(c, id, raw)
		return c.Next()
	}
}
