// file: internals/features/classwork/assignments/controller/assignment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"assignment_backend/internals/features/classwork/assignments/dto"
	"assignment_backend/internals/features/classwork/assignments/repository"
	helper "assignment_backend/internals/helpers"
	helperAuth "assignment_backend/internals/helpers/auth"
	"assignment_backend/internals/helpers/listquery"
)

type AssignmentController struct {
	Repo     repository.Repository
	Validate *validator.Validate
}

func NewAssignmentController(repo repository.Repository) *AssignmentController {
	return &AssignmentController{Repo: repo, Validate: helper.NewValidator()}
}

// =========================
// POST /createdAssignment
// =========================
func (ctl *AssignmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"startDate": {"date"}})
	}

	res, err := ctl.Repo.Create(c.UserContext(), &m)
	if err != nil {
		return helper.StoreFailure(c, "assignments.create", err)
	}
	return helper.JsonCreated(c, "assignment created", res)
}

// =========================
// GET /createdAssignment?difficulty=&search=&page=&size=
// =========================
func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	spec := listquery.ForAssignments(listquery.AssignmentFilter{
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
		Page:       c.Query("page"),
		Size:       c.Query("size"),
	})

	items, err := ctl.Repo.List(c.UserContext(), spec)
	if err != nil {
		return helper.StoreFailure(c, "assignments.list", err)
	}
	total, err := ctl.Repo.Count(c.UserContext(), spec.Predicate)
	if err != nil {
		return helper.StoreFailure(c, "assignments.count", err)
	}

	p := helper.BuildPagination(total, spec.Page.Number, spec.Page.Size)
	return helper.JsonList(c, "ok", items, &p)
}

// =========================
// GET /createdAssignment/:id
// =========================
func (ctl *AssignmentController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.Repo.FindByID(c.UserContext(), c.Params("id"))
	switch {
	case errors.Is(err, helper.ErrNotFound):
		// not-found is an empty result, not a status
		return helper.JsonOK(c, "not found", nil)
	case err != nil:
		return helper.StoreFailure(c, "assignments.get", err)
	}
	return helper.JsonOK(c, "ok", m)
}

// =========================
// PUT /createdAssignment/:id (upsert, merge-patch)
// =========================
func (ctl *AssignmentController) Update(c *fiber.Ctx) error {
	var req dto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	patch, fieldErrs := req.ToPatch()
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	res, err := ctl.Repo.Upsert(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return helper.StoreFailure(c, "assignments.upsert", err)
	}
	return helper.JsonUpdated(c, "assignment saved", res)
}

// =========================
// DELETE /createdAssignment/:id
// =========================
func (ctl *AssignmentController) Delete(c *fiber.Ctx) error {
	res, err := ctl.Repo.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.StoreFailure(c, "assignments.delete", err)
	}
	if who, ok := helperAuth.CurrentIdentity(c); ok && res.DeletedCount > 0 {
		log.Info().Str("assignment", c.Params("id")).Str("by", who.Email).Msg("🗑️ assignment deleted")
	}
	return helper.JsonDeleted(c, "", res)
}
