// file: internals/features/classwork/assignments/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"assignment_backend/internals/features/classwork/assignments/controller"
	"assignment_backend/internals/features/classwork/assignments/repository"
)

// AssignmentRoutes mounts /createdAssignment. guard wraps the mutating verbs;
// pass nil to leave them open.
func AssignmentRoutes(app fiber.Router, repo repository.Repository, guard fiber.Handler) {
	ctl := controller.NewAssignmentController(repo)

	g := app.Group("/createdAssignment")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)

	writes := []fiber.Handler{}
	if guard != nil {
		writes = append(writes, guard)
	}
	g.Post("/", append(writes, ctl.Create)...)
	g.Put("/:id", append(writes, ctl.Update)...)
	g.Delete("/:id", append(writes, ctl.Delete)...)
}
