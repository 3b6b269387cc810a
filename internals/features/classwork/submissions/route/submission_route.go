// file: internals/features/classwork/submissions/route/submission_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"assignment_backend/internals/features/classwork/submissions/controller"
	"assignment_backend/internals/features/classwork/submissions/repository"
)

func SubmissionRoutes(app fiber.Router, repo repository.Repository, guard fiber.Handler) {
	ctl := controller.NewSubmissionController(repo)

	g := app.Group("/submission")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)

	if guard != nil {
		g.Post("/", guard, ctl.Create)
		g.Put("/:id", guard, ctl.Grade)
		return
	}
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Grade)
}
