// file: internals/features/classwork/submissions/dto/submission_dto.go
package dto

import (
	"strings"

	"gorm.io/datatypes"

	"assignment_backend/internals/features/classwork/submissions/model"
	helper "assignment_backend/internals/helpers"
)

type CreateSubmissionRequest struct {
	AssignmentID   string         `json:"assignmentId" validate:"omitempty,max=64"`
	Title          string         `json:"title" validate:"omitempty,max=255"`
	Marks          *float64       `json:"marks" validate:"omitempty,gte=0"`
	SubmitterEmail string         `json:"submitterEmail" validate:"required,email"`
	SubmitterName  string         `json:"submitterName" validate:"omitempty,max=255"`
	PdfLink        string         `json:"pdfLink"`
	Note           string         `json:"note"`
	Status         string         `json:"status" validate:"omitempty,oneof=pending completed"`
	Extra          map[string]any `json:"extra"`
}

// ToModel never carries grading fields; a new submission is ungraded.
func (r CreateSubmissionRequest) ToModel() model.SubmissionModel {
	status := model.Status(strings.TrimSpace(r.Status))
	if status == "" {
		status = model.StatusPending
	}
	m := model.SubmissionModel{
		SubmissionAssignmentID:   strings.TrimSpace(r.AssignmentID),
		SubmissionTitle:          strings.TrimSpace(r.Title),
		SubmissionMarks:          r.Marks,
		SubmissionSubmitterEmail: strings.TrimSpace(r.SubmitterEmail),
		SubmissionSubmitterName:  strings.TrimSpace(r.SubmitterName),
		SubmissionPdfLink:        strings.TrimSpace(r.PdfLink),
		SubmissionNote:           r.Note,
		SubmissionStatus:         status,
	}
	if len(r.Extra) > 0 {
		m.SubmissionExtra = datatypes.JSONMap(r.Extra)
	}
	return m
}

// GradeSubmissionRequest decodes only the three gradable keys. Anything else
// in the body (submitterEmail included) has nowhere to land.
type GradeSubmissionRequest struct {
	ObtainedMarks helper.PatchField[float64] `json:"obtainedMarks"`
	Status        helper.PatchField[string]  `json:"status"`
	Feedback      helper.PatchField[string]  `json:"feedback"`
}

func (r GradeSubmissionRequest) ToPatch() (model.GradePatch, map[string][]string) {
	errs := map[string][]string{}
	var p model.GradePatch

	if r.ObtainedMarks.ShouldUpdate() {
		if !r.ObtainedMarks.IsNull() && *r.ObtainedMarks.Value < 0 {
			errs["obtainedMarks"] = append(errs["obtainedMarks"], "gte")
		} else {
			p.ObtainedMarks = r.ObtainedMarks
		}
	}
	if r.Status.ShouldUpdate() {
		if r.Status.IsNull() || !model.Status(*r.Status.Value).Valid() {
			errs["status"] = append(errs["status"], "oneof")
		} else {
			p.Status = helper.Set(model.Status(*r.Status.Value))
		}
	}
	p.Feedback = r.Feedback

	if len(errs) == 0 && p.IsEmpty() {
		errs["_"] = append(errs["_"], "no gradable field")
	}
	if len(errs) > 0 {
		return model.GradePatch{}, errs
	}
	return p, nil
}
