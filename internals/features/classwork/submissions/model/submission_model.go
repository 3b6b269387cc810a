// file: internals/features/classwork/submissions/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "assignment_backend/internals/helpers"
	"assignment_backend/internals/helpers/listquery"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// SubmissionModel: assignment_id is a plain reference, no FK is enforced.
type SubmissionModel struct {
	SubmissionID string `gorm:"type:uuid;primaryKey;column:submission_id" json:"_id" bson:"-"`

	SubmissionAssignmentID   string   `gorm:"type:varchar(64);index;column:submission_assignment_id" json:"assignmentId,omitempty" bson:"assignmentId,omitempty"`
	SubmissionTitle          string   `gorm:"type:varchar(255);column:submission_title" json:"title,omitempty" bson:"title,omitempty"`
	SubmissionMarks          *float64 `gorm:"type:numeric(8,2);column:submission_marks" json:"marks,omitempty" bson:"marks,omitempty"`
	SubmissionSubmitterEmail string   `gorm:"type:varchar(255);not null;index;column:submission_submitter_email" json:"submitterEmail" bson:"submitterEmail"`
	SubmissionSubmitterName  string   `gorm:"type:varchar(255);column:submission_submitter_name" json:"submitterName,omitempty" bson:"submitterName,omitempty"`
	SubmissionPdfLink        string   `gorm:"type:text;column:submission_pdf_link" json:"pdfLink,omitempty" bson:"pdfLink,omitempty"`
	SubmissionNote           string   `gorm:"type:text;column:submission_note" json:"note,omitempty" bson:"note,omitempty"`
	SubmissionStatus         Status   `gorm:"type:varchar(16);not null;index;column:submission_status" json:"status" bson:"status"`

	// set only when graded
	SubmissionObtainedMarks *float64 `gorm:"type:numeric(8,2);column:submission_obtained_marks" json:"obtainedMarks,omitempty" bson:"obtainedMarks,omitempty"`
	SubmissionFeedback      *string  `gorm:"type:text;column:submission_feedback" json:"feedback,omitempty" bson:"feedback,omitempty"`

	SubmissionExtra datatypes.JSONMap `gorm:"type:jsonb;column:submission_extra" json:"extra,omitempty" bson:"extra,omitempty"`

	SubmissionCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:submission_created_at" json:"createdAt" bson:"createdAt"`
	SubmissionUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:submission_updated_at" json:"updatedAt" bson:"updatedAt"`
}

func (SubmissionModel) TableName() string { return "submissions" }

func (m *SubmissionModel) BeforeCreate(*gorm.DB) error {
	if m.SubmissionID == "" {
		m.SubmissionID = uuid.NewString()
	}
	if m.SubmissionStatus == "" {
		m.SubmissionStatus = StatusPending
	}
	return nil
}

const (
	KeyObtainedMarks = "obtainedMarks"
	KeyStatus        = "status"
	KeyFeedback      = "feedback"
)

// Columns covers filterable and gradable fields.
var Columns = map[string]string{
	listquery.FieldSubmitterEmail: "submission_submitter_email",
	listquery.FieldStatus:         "submission_status",
	KeyObtainedMarks:              "submission_obtained_marks",
	KeyFeedback:                   "submission_feedback",
}

func (m SubmissionModel) FieldValue(field string) (string, bool) {
	switch field {
	case listquery.FieldSubmitterEmail:
		return m.SubmissionSubmitterEmail, true
	case listquery.FieldStatus:
		return string(m.SubmissionStatus), true
	}
	return "", false
}

// GradePatch is everything a grader can touch. Nothing else on a submission
// is reachable through it.
type GradePatch struct {
	ObtainedMarks helper.PatchField[float64]
	Status        helper.PatchField[Status]
	Feedback      helper.PatchField[string]
}

// Fields lists present keys; null clears obtainedMarks/feedback.
func (p GradePatch) Fields() map[string]any {
	out := map[string]any{}
	if p.ObtainedMarks.ShouldUpdate() {
		if p.ObtainedMarks.IsNull() {
			out[KeyObtainedMarks] = nil
		} else {
			out[KeyObtainedMarks] = *p.ObtainedMarks.Value
		}
	}
	if p.Status.ShouldUpdate() && !p.Status.IsNull() {
		out[KeyStatus] = *p.Status.Value
	}
	if p.Feedback.ShouldUpdate() {
		if p.Feedback.IsNull() {
			out[KeyFeedback] = nil
		} else {
			out[KeyFeedback] = *p.Feedback.Value
		}
	}
	return out
}

func (p GradePatch) IsEmpty() bool { return len(p.Fields()) == 0 }

func (p GradePatch) ColumnUpdates() map[string]any {
	fields := p.Fields()
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[Columns[k]] = v
	}
	return out
}

func (p GradePatch) Apply(m *SubmissionModel) {
	for k, v := range p.Fields() {
		switch k {
		case KeyObtainedMarks:
			if f, ok := v.(float64); ok {
				m.SubmissionObtainedMarks = &f
			} else {
				m.SubmissionObtainedMarks = nil
			}
		case KeyStatus:
			m.SubmissionStatus = v.(Status)
		case KeyFeedback:
			if s, ok := v.(string); ok {
				m.SubmissionFeedback = &s
			} else {
				m.SubmissionFeedback = nil
			}
		}
	}
}
