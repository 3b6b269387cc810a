// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	assignmentRepo "assignment_backend/internals/features/classwork/assignments/repository"
	assignmentRoute "assignment_backend/internals/features/classwork/assignments/route"
	submissionRepo "assignment_backend/internals/features/classwork/submissions/repository"
	submissionRoute "assignment_backend/internals/features/classwork/submissions/route"
	authRoute "assignment_backend/internals/features/users/auth/route"
	"assignment_backend/internals/features/users/auth/service"
	authMiddleware "assignment_backend/internals/middlewares/auth"
)

var startTime time.Time

// Deps is everything the route table needs. Pinger is nil-safe.
type Deps struct {
	Tokens      *service.TokenService
	Assignments assignmentRepo.Repository
	Submissions submissionRepo.Repository
	Pinger      Pinger

	Production     bool
	GuardWrites    bool
	TokenRateLimit int
	Environment    string
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	BaseRoutes(app, d.Pinger, d.Environment)

	log.Info().Msg("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, d.Tokens, d.Production, d.TokenRateLimit)

	// Mutating verbs need a session unless AUTH_GUARD_WRITES=false.
	var guard fiber.Handler
	if d.GuardWrites {
		guard = authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Tokens:              d.Tokens,
			AllowBearerFallback: true,
		})
	} else {
		log.Warn().Msg("⚠️ AUTH_GUARD_WRITES=false, create/update/delete routes are public")
	}

	log.Info().Msg("[INFO] Setting up AssignmentRoutes...")
	assignmentRoute.AssignmentRoutes(app, d.Assignments, guard)

	log.Info().Msg("[INFO] Setting up SubmissionRoutes...")
	submissionRoute.SubmissionRoutes(app, d.Submissions, guard)
}
