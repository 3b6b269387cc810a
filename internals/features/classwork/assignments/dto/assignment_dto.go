// file: internals/features/classwork/assignments/dto/assignment_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"assignment_backend/internals/features/classwork/assignments/model"
	helper "assignment_backend/internals/helpers"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// ParseDate accepts RFC3339, datetime-local and plain dates (UTC).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: startDate %q is not a date", helper.ErrValidation, s)
}

//
// =========================================================
// CREATE DTO
// =========================================================
//

type CreateAssignmentRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description"`
	Marks       *float64 `json:"marks" validate:"required,gte=0"`
	Difficulty  string   `json:"difficulty" validate:"required,oneof=easy medium hard"`
	StartDate   string   `json:"startDate"`
	Photo       string   `json:"photo" validate:"omitempty,max=2048"`
}

func (r CreateAssignmentRequest) ToModel() (model.AssignmentModel, error) {
	m := model.AssignmentModel{
		AssignmentTitle:       strings.TrimSpace(r.Title),
		AssignmentDescription: r.Description,
		AssignmentDifficulty:  model.Difficulty(r.Difficulty),
		AssignmentPhoto:       strings.TrimSpace(r.Photo),
	}
	if r.Marks != nil {
		m.AssignmentMarks = *r.Marks
	}
	if strings.TrimSpace(r.StartDate) != "" {
		t, err := ParseDate(r.StartDate)
		if err != nil {
			return model.AssignmentModel{}, err
		}
		m.AssignmentStartDate = &t
	}
	return m, nil
}

//
// =========================================================
// UPDATE DTO (merge-patch, upsert)
// =========================================================
//

// UpdateAssignmentRequest only knows the six replaceable fields; any other
// key in the body is ignored by the decoder.
type UpdateAssignmentRequest struct {
	Title       helper.PatchField[string]  `json:"title"`
	Description helper.PatchField[string]  `json:"description"`
	Marks       helper.PatchField[float64] `json:"marks"`
	Difficulty  helper.PatchField[string]  `json:"difficulty"`
	StartDate   helper.PatchField[string]  `json:"startDate"`
	Photo       helper.PatchField[string]  `json:"photo"`
}

// ToPatch validates present fields and returns field errors keyed by JSON name.
func (r UpdateAssignmentRequest) ToPatch() (model.AssignmentPatch, map[string][]string) {
	errs := map[string][]string{}
	var p model.AssignmentPatch

	if r.Title.ShouldUpdate() {
		switch {
		case r.Title.IsNull() || strings.TrimSpace(*r.Title.Value) == "":
			errs["title"] = append(errs["title"], "required")
		case len(*r.Title.Value) > 255:
			errs["title"] = append(errs["title"], "max")
		default:
			p.Title = helper.Set(strings.TrimSpace(*r.Title.Value))
		}
	}
	p.Description = r.Description
	p.Photo = r.Photo

	if r.Marks.ShouldUpdate() {
		switch {
		case r.Marks.IsNull():
			errs["marks"] = append(errs["marks"], "required")
		case *r.Marks.Value < 0:
			errs["marks"] = append(errs["marks"], "gte")
		default:
			p.Marks = r.Marks
		}
	}

	if r.Difficulty.ShouldUpdate() {
		if r.Difficulty.IsNull() || !model.Difficulty(*r.Difficulty.Value).Valid() {
			errs["difficulty"] = append(errs["difficulty"], "oneof")
		} else {
			p.Difficulty = helper.Set(model.Difficulty(*r.Difficulty.Value))
		}
	}

	if r.StartDate.ShouldUpdate() {
		switch {
		case r.StartDate.IsNull() || strings.TrimSpace(*r.StartDate.Value) == "":
			p.StartDate = helper.PatchField[time.Time]{Present: true}
		default:
			t, err := ParseDate(*r.StartDate.Value)
			if err != nil {
				errs["startDate"] = append(errs["startDate"], "date")
			} else {
				p.StartDate = helper.Set(t)
			}
		}
	}

	if len(errs) == 0 && p.IsEmpty() {
		errs["_"] = append(errs["_"], "no updatable field")
	}
	if len(errs) > 0 {
		return model.AssignmentPatch{}, errs
	}
	return p, nil
}
