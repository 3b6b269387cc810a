package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"assignment_backend/internals/features/users/auth/dto"
	"assignment_backend/internals/features/users/auth/service"
	helper "assignment_backend/internals/helpers"
	authMw "assignment_backend/internals/middlewares/auth"
)

type AuthController struct {
	Tokens     *service.TokenService
	Production bool
	CookieName string
	Validate   *validator.Validate
}

func NewAuthController(tokens *service.TokenService, production bool) *AuthController {
	return &AuthController{
		Tokens:     tokens,
		Production: production,
		CookieName: authMw.DefaultCookieName,
		Validate:   helper.NewValidator(),
	}
}

// Production: Secure + SameSite=None for cross-site delivery over TLS.
// Elsewhere: not secure, SameSite=Strict.
func (ctrl *AuthController) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	ck := &fiber.Cookie{
		Name:     ctrl.CookieName,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: fiber.CookieSameSiteStrictMode,
		Expires:  expires,
	}
	if ctrl.Production {
		ck.Secure = true
		ck.SameSite = fiber.CookieSameSiteNoneMode
	}
	return ck
}

// POST /jwt
func (ctrl *AuthController) IssueJWT(c *fiber.Ctx) error {
	var req dto.IdentityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, exp, err := ctrl.Tokens.Issue(req.ToIdentity())
	if err != nil {
		if errors.Is(err, service.ErrSigningKey) {
			log.Error().Msg("❌ /jwt: signing secret missing")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}
		log.Error().Err(err).Msg("❌ /jwt: sign failed")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(ctrl.sessionCookie(token, exp))
	return c.JSON(fiber.Map{"success": true})
}

// POST /logout
// Only the cookie is dropped; the token itself stays valid until exp.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	var req dto.IdentityRequest
	_ = c.BodyParser(&req)
	log.Info().Str("email", req.Email).Msg("👋 logout")

	c.Cookie(ctrl.sessionCookie("", time.Unix(0, 0).UTC()))
	return c.JSON(fiber.Map{"success": true})
}
