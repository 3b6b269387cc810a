// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "assignment_backend/internals/features/users/auth/controller"
	"assignment_backend/internals/features/users/auth/service"
	rateLimiter "assignment_backend/internals/middlewares"
)

// AuthRoutes mounts POST /jwt (rate limited) and POST /logout.
func AuthRoutes(app fiber.Router, tokens *service.TokenService, production bool, tokenLimit int) {
	authController := controller.NewAuthController(tokens, production)

	app.Post("/jwt", rateLimiter.TokenRateLimiter(tokenLimit), authController.IssueJWT)
	app.Post("/logout", authController.Logout)
}
