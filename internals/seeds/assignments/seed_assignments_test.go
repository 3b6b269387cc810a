package assignments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assignment_backend/internals/features/classwork/assignments/repository"
	"assignment_backend/internals/helpers/listquery"
)

func TestSeedAssignmentsFromJSON_IsIdempotent(t *testing.T) {
	repo := repository.NewMemoryRepository()
	ctx := context.Background()

	inserted, skipped, err := SeedAssignmentsFromJSON(ctx, repo, "data_assignments.json")
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)
	assert.Zero(t, skipped)

	inserted, skipped, err = SeedAssignmentsFromJSON(ctx, repo, "data_assignments.json")
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.Equal(t, 3, skipped)

	n, err := repo.Count(ctx, listquery.Predicate{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestSeedAssignmentsFromJSON_BadInput(t *testing.T) {
	repo := repository.NewMemoryRepository()

	_, _, err := SeedAssignmentsFromJSON(context.Background(), repo, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"x","startDate":"someday"}]`), 0o600))
	inserted, skipped, err := SeedAssignmentsFromJSON(context.Background(), repo, path)
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.Equal(t, 1, skipped)
}

func TestSeedAssignmentsFromJSON_SkipsEntriesFailingValidation(t *testing.T) {
	repo := repository.NewMemoryRepository()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "mixed.json")
	body := `[
		{"title":"Heap Lab","marks":10,"difficulty":"extreme"},
		{"title":"No Marks","difficulty":"easy"},
		{"title":"","marks":5,"difficulty":"easy"},
		{"title":"Negative","marks":-1,"difficulty":"hard"},
		{"title":"Trie Lab","marks":15,"difficulty":"medium","startDate":"2024-04-01"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	inserted, skipped, err := SeedAssignmentsFromJSON(ctx, repo, path)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
	assert.Equal(t, 4, skipped)

	items, err := repo.List(ctx, listquery.Spec{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Trie Lab", items[0].AssignmentTitle)
}
