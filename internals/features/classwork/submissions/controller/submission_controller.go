// file: internals/features/classwork/submissions/controller/submission_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"assignment_backend/internals/features/classwork/submissions/dto"
	"assignment_backend/internals/features/classwork/submissions/repository"
	helper "assignment_backend/internals/helpers"
	helperAuth "assignment_backend/internals/helpers/auth"
	"assignment_backend/internals/helpers/listquery"
)

type SubmissionController struct {
	Repo     repository.Repository
	Validate *validator.Validate
}

func NewSubmissionController(repo repository.Repository) *SubmissionController {
	return &SubmissionController{Repo: repo, Validate: helper.NewValidator()}
}

// POST /submission
func (ctl *SubmissionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	res, err := ctl.Repo.Create(c.UserContext(), &m)
	if err != nil {
		return helper.StoreFailure(c, "submissions.create", err)
	}
	return helper.JsonCreated(c, "submission received", res)
}

// GET /submission?submitterEmail=&status=
// Both filters apply together; the list is not paginated.
func (ctl *SubmissionController) List(c *fiber.Ctx) error {
	spec := listquery.ForSubmissions(listquery.SubmissionFilter{
		SubmitterEmail: c.Query("submitterEmail"),
		Status:         c.Query("status"),
	})
	items, err := ctl.Repo.List(c.UserContext(), spec)
	if err != nil {
		return helper.StoreFailure(c, "submissions.list", err)
	}
	return helper.JsonList(c, "ok", items, nil)
}

// GET /submission/:id
func (ctl *SubmissionController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.Repo.FindByID(c.UserContext(), c.Params("id"))
	switch {
	case errors.Is(err, helper.ErrNotFound):
		return helper.JsonOK(c, "not found", nil)
	case err != nil:
		return helper.StoreFailure(c, "submissions.get", err)
	}
	return helper.JsonOK(c, "ok", m)
}

// PUT /submission/:id
// Grading: only obtainedMarks, status, feedback are decoded from the body.
func (ctl *SubmissionController) Grade(c *fiber.Ctx) error {
	var req dto.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	patch, fieldErrs := req.ToPatch()
	if fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	res, err := ctl.Repo.GradeUpsert(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return helper.StoreFailure(c, "submissions.grade", err)
	}

	// grader is only known when writes are guarded
	if who, ok := helperAuth.CurrentIdentity(c); ok {
		log.Info().Str("submission", c.Params("id")).Str("grader", who.Email).Msg("📝 submission graded")
	}
	return helper.JsonUpdated(c, "submission graded", res)
}
