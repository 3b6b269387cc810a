package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"assignment_backend/internals/features/classwork/submissions/model"
	helper "assignment_backend/internals/helpers"
	"assignment_backend/internals/helpers/listquery"
)

func TestMemoryRepository_ListAndsFilters(t *testing.T) {
	t.Parallel()
	r := NewMemoryRepository()
	ctx := context.Background()

	for _, s := range []model.SubmissionModel{
		{SubmissionSubmitterEmail: "a@x.com", SubmissionStatus: model.StatusPending},
		{SubmissionSubmitterEmail: "a@x.com", SubmissionStatus: model.StatusCompleted},
		{SubmissionSubmitterEmail: "b@y.com", SubmissionStatus: model.StatusCompleted},
		{SubmissionSubmitterEmail: "b@y.com"},
	} {
		s := s
		_, err := r.Create(ctx, &s)
		require.NoError(t, err)
	}

	cases := []struct {
		name   string
		filter listquery.SubmissionFilter
		want   int
	}{
		{"no filter", listquery.SubmissionFilter{}, 4},
		{"email only", listquery.SubmissionFilter{SubmitterEmail: "a@x.com"}, 2},
		{"status only", listquery.SubmissionFilter{Status: "completed"}, 2},
		{"both", listquery.SubmissionFilter{SubmitterEmail: "a@x.com", Status: "completed"}, 1},
		{"default status is pending", listquery.SubmissionFilter{SubmitterEmail: "b@y.com", Status: "pending"}, 1},
	}
	for _, tc := range cases {
		got, err := r.List(ctx, listquery.ForSubmissions(tc.filter))
		require.NoError(t, err)
		assert.Len(t, got, tc.want, tc.name)
	}
}

func TestMemoryRepository_ListOutOfRangePage(t *testing.T) {
	t.Parallel()
	r := NewMemoryRepository()
	ctx := context.Background()
	_, err := r.Create(ctx, &model.SubmissionModel{SubmissionSubmitterEmail: "a@x.com"})
	require.NoError(t, err)

	for _, page := range []listquery.Page{
		listquery.ParsePage("922337203685477581", "10"),
		{Number: -3, Size: 10},
		{Number: 1, Size: 1},
	} {
		page := page
		got, err := r.List(ctx, listquery.Spec{Page: &page})
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestMemoryRepository_GradeKeepsSubmitter(t *testing.T) {
	t.Parallel()
	r := NewMemoryRepository()
	ctx := context.Background()

	s := &model.SubmissionModel{SubmissionSubmitterEmail: "a@x.com", SubmissionNote: "my answer"}
	_, err := r.Create(ctx, s)
	require.NoError(t, err)

	res, err := r.GradeUpsert(ctx, s.SubmissionID, model.GradePatch{
		ObtainedMarks: helper.Set(42.0),
		Status:        helper.Set(model.StatusCompleted),
		Feedback:      helper.Set("nice"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)

	got, err := r.FindByID(ctx, s.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.SubmissionSubmitterEmail)
	assert.Equal(t, "my answer", got.SubmissionNote)
	assert.Equal(t, model.StatusCompleted, got.SubmissionStatus)
	require.NotNil(t, got.SubmissionObtainedMarks)
	assert.Equal(t, 42.0, *got.SubmissionObtainedMarks)
	require.NotNil(t, got.SubmissionFeedback)
	assert.Equal(t, "nice", *got.SubmissionFeedback)
}

func TestMemoryRepository_GradeErrors(t *testing.T) {
	t.Parallel()
	r := NewMemoryRepository()

	_, err := r.GradeUpsert(context.Background(), "nope", model.GradePatch{Feedback: helper.Set("x")})
	assert.ErrorIs(t, err, helper.ErrInvalidID)

	_, err = r.GradeUpsert(context.Background(), uuid.NewString(), model.GradePatch{})
	assert.ErrorIs(t, err, helper.ErrValidation)
}

func TestGradeDocument_OnlyGradeKeys(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	got := GradeDocument(model.GradePatch{
		ObtainedMarks: helper.Set(7.5),
		Status:        helper.Set(model.StatusCompleted),
	}, now)

	want := bson.D{{Key: "$set", Value: bson.D{
		{Key: "obtainedMarks", Value: 7.5},
		{Key: "status", Value: model.StatusCompleted},
		{Key: "updatedAt", Value: now},
	}}}
	assert.Equal(t, want, got)
}

func TestPostgresRepository_GradeUpdatesOnlyGradeColumns(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "submissions" SET "submission_feedback"=\$1,"submission_obtained_marks"=\$2,"submission_updated_at"=\$3 WHERE submission_id = \$4`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := repo.GradeUpsert(context.Background(), uuid.NewString(), model.GradePatch{
		ObtainedMarks: helper.Set(9.0),
		Feedback:      helper.Set("ok"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
