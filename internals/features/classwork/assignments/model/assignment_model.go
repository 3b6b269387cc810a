// file: internals/features/classwork/assignments/model/assignment_model.go
package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "assignment_backend/internals/helpers"
	"assignment_backend/internals/helpers/listquery"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type AssignmentModel struct {
	AssignmentID string `gorm:"type:uuid;primaryKey;column:assignment_id" json:"_id" bson:"-"`

	AssignmentTitle       string     `gorm:"type:varchar(255);not null;column:assignment_title" json:"title" bson:"title"`
	AssignmentDescription string     `gorm:"type:text;column:assignment_description" json:"description" bson:"description"`
	AssignmentMarks       float64    `gorm:"type:numeric(8,2);not null;column:assignment_marks" json:"marks" bson:"marks"`
	AssignmentDifficulty  Difficulty `gorm:"type:varchar(16);not null;index;column:assignment_difficulty" json:"difficulty" bson:"difficulty"`
	AssignmentStartDate   *time.Time `gorm:"type:timestamptz;column:assignment_start_date" json:"startDate,omitempty" bson:"startDate,omitempty"`
	AssignmentPhoto       string     `gorm:"type:text;column:assignment_photo" json:"photo" bson:"photo"`

	AssignmentCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:assignment_created_at" json:"createdAt" bson:"createdAt"`
	AssignmentUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:assignment_updated_at" json:"updatedAt" bson:"updatedAt"`
}

func (AssignmentModel) TableName() string { return "assignments" }

// BeforeCreate fills the id on the Go side so inserts need no RETURNING.
func (m *AssignmentModel) BeforeCreate(*gorm.DB) error {
	if m.AssignmentID == "" {
		m.AssignmentID = uuid.NewString()
	}
	return nil
}

// Document keys (json/bson) → table columns.
const (
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyMarks       = "marks"
	KeyDifficulty  = "difficulty"
	KeyStartDate   = "startDate"
	KeyPhoto       = "photo"
)

var Columns = map[string]string{
	KeyTitle:       "assignment_title",
	KeyDescription: "assignment_description",
	KeyMarks:       "assignment_marks",
	KeyDifficulty:  "assignment_difficulty",
	KeyStartDate:   "assignment_start_date",
	KeyPhoto:       "assignment_photo",
}

// FieldValue exposes filterable fields to in-process predicate matching.
func (m AssignmentModel) FieldValue(field string) (string, bool) {
	switch field {
	case listquery.FieldTitle:
		return m.AssignmentTitle, true
	case listquery.FieldDifficulty:
		return string(m.AssignmentDifficulty), true
	case KeyDescription:
		return m.AssignmentDescription, true
	case KeyMarks:
		return strconv.FormatFloat(m.AssignmentMarks, 'f', -1, 64), true
	case KeyPhoto:
		return m.AssignmentPhoto, true
	}
	return "", false
}

// AssignmentPatch is the merge-patch an update may apply: only these six
// fields exist, and only present ones are written.
type AssignmentPatch struct {
	Title       helper.PatchField[string]
	Description helper.PatchField[string]
	Marks       helper.PatchField[float64]
	Difficulty  helper.PatchField[Difficulty]
	StartDate   helper.PatchField[time.Time]
	Photo       helper.PatchField[string]
}

func (p AssignmentPatch) IsEmpty() bool { return len(p.Fields()) == 0 }

// Fields lists present fields by document key. Null clears optional text to
// "" and the start date to NULL; required fields never carry null here.
func (p AssignmentPatch) Fields() map[string]any {
	out := map[string]any{}
	putString := func(key string, f helper.PatchField[string]) {
		if !f.ShouldUpdate() {
			return
		}
		if f.IsNull() {
			out[key] = ""
			return
		}
		out[key] = *f.Value
	}

	putString(KeyTitle, p.Title)
	putString(KeyDescription, p.Description)
	putString(KeyPhoto, p.Photo)
	if p.Marks.ShouldUpdate() && !p.Marks.IsNull() {
		out[KeyMarks] = *p.Marks.Value
	}
	if p.Difficulty.ShouldUpdate() && !p.Difficulty.IsNull() {
		out[KeyDifficulty] = *p.Difficulty.Value
	}
	if p.StartDate.ShouldUpdate() {
		if p.StartDate.IsNull() {
			out[KeyStartDate] = nil
		} else {
			out[KeyStartDate] = *p.StartDate.Value
		}
	}
	return out
}

// ColumnUpdates is Fields keyed by table column.
func (p AssignmentPatch) ColumnUpdates() map[string]any {
	fields := p.Fields()
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[Columns[k]] = v
	}
	return out
}

// Apply writes the present fields into m.
func (p AssignmentPatch) Apply(m *AssignmentModel) {
	for k, v := range p.Fields() {
		switch k {
		case KeyTitle:
			m.AssignmentTitle = v.(string)
		case KeyDescription:
			m.AssignmentDescription = v.(string)
		case KeyPhoto:
			m.AssignmentPhoto = v.(string)
		case KeyMarks:
			m.AssignmentMarks = v.(float64)
		case KeyDifficulty:
			m.AssignmentDifficulty = v.(Difficulty)
		case KeyStartDate:
			if t, ok := v.(time.Time); ok {
				m.AssignmentStartDate = &t
			} else {
				m.AssignmentStartDate = nil
			}
		}
	}
}
