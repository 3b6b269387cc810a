package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assignment_backend/internals/features/classwork/assignments/model"
	helper "assignment_backend/internals/helpers"
	"assignment_backend/internals/helpers/listquery"
)

func seedMemory(t *testing.T, r *MemoryRepository, n int) {
	t.Helper()
	diffs := []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}
	for i := 0; i < n; i++ {
		_, err := r.Create(context.Background(), &model.AssignmentModel{
			AssignmentTitle:      fmt.Sprintf("Task %02d", i),
			AssignmentMarks:      float64(i),
			AssignmentDifficulty: diffs[i%3],
		})
		require.NoError(t, err)
	}
}

func TestMemoryRepository_ListPagesInInsertionOrder(t *testing.T) {
	t.Parallel()
	r := NewMemoryRepository()
	seedMemory(t, r, 12)

	spec := listquery.ForAssignments(listquery.AssignmentFilter{Page: "2", Size: "5"})
	items, err := r.List(context.Background(), spec)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Task 10", items[0].AssignmentTitle)
	assert.Equal(t, "Task 11", items[1].AssignmentTitle)

	spec = listquery.ForAssignments(listquery.AssignmentFilter{Page: "9"})
	items, err = r.List(context.Background(), spec)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryRepository_ListPageBoundaries(t *testing.T) {
	t.Parallel()
	r := NewMemoryRepository()
	seedMemory(t, r, 12)

	cases := []struct {
		name       string
		page, size string
		want       int
	}{
		{"page near MaxInt", "922337203685477581", "10", 0},
		{"page overflowing int", "99999999999999999999999", "1", 0},
		{"size above MaxSize", "0", "5000", 12},
		{"page just past the last", "3", "4", 0},
		{"last partial page", "1", "7", 5},
	}
	for _, tc := range cases {
		spec := listquery.ForAssignments(listquery.AssignmentFilter{Page: tc.page, Size: tc.size})
		items, err := r.List(context.Background(), spec)
		require.NoError(t, err, tc.name)
		assert.NotNil(t, items, tc.name)
		assert.Len(t, items, tc.want, tc.name)
	}

	// a hand-built page whose offset went negative is treated as empty
	items, err := r.List(context.Background(), listquery.Spec{Page: &listquery.Page{Number: -1, Size: 5}})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryRepository_FilterIsConjunction(t *testing.T) {
	t.Parallel()
	r := NewMemoryRepository()
	seedMemory(t, r, 9)

	spec := listquery.ForAssignments(listquery.AssignmentFilter{Difficulty: "easy", Search: "task 0"})
	items, err := r.List(context.Background(), spec)
	require.NoError(t, err)
	// easy: 0, 3, 6 and all of them start with "Task 0"
	assert.Len(t, items, 3)

	n, err := r.Count(context.Background(), listquery.ForAssignments(listquery.AssignmentFilter{Difficulty: "hard", Search: "05"}).Predicate)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryRepository_UpsertLifecycle(t *testing.T) {
	t.Parallel()
	r := NewMemoryRepository()
	ctx := context.Background()
	id := uuid.NewString()

	res, err := r.Upsert(ctx, id, model.AssignmentPatch{Title: helper.Set("Fresh"), Marks: helper.Set(5.0)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.UpsertedCount)
	assert.Equal(t, id, res.UpsertedID)

	res, err = r.Upsert(ctx, id, model.AssignmentPatch{Description: helper.Set("more words")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Zero(t, res.UpsertedCount)

	got, err := r.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Fresh", got.AssignmentTitle)
	assert.Equal(t, "more words", got.AssignmentDescription)
	assert.Equal(t, 5.0, got.AssignmentMarks)
}

func TestMemoryRepository_DeleteAndErrors(t *testing.T) {
	t.Parallel()
	r := NewMemoryRepository()
	ctx := context.Background()

	m := &model.AssignmentModel{AssignmentTitle: "Gone soon"}
	_, err := r.Create(ctx, m)
	require.NoError(t, err)

	res, err := r.Delete(ctx, m.AssignmentID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)

	res, err = r.Delete(ctx, m.AssignmentID)
	require.NoError(t, err)
	assert.Zero(t, res.DeletedCount)

	_, err = r.FindByID(ctx, m.AssignmentID)
	assert.ErrorIs(t, err, helper.ErrNotFound)

	_, err = r.FindByID(ctx, "xyz")
	assert.ErrorIs(t, err, helper.ErrInvalidID)
	_, err = r.Delete(ctx, "xyz")
	assert.ErrorIs(t, err, helper.ErrInvalidID)
}
