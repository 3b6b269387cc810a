package listquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPredicateBSON_ConjunctionWithEscapedRegex(t *testing.T) {
	t.Parallel()

	spec := ForAssignments(AssignmentFilter{Difficulty: "easy", Search: "c++ (intro)"})
	got, err := spec.Predicate.BSON(nil)
	require.NoError(t, err)

	want := bson.D{
		{Key: "difficulty", Value: "easy"},
		{Key: "title", Value: primitive.Regex{Pattern: `c\+\+ \(intro\)`, Options: "i"}},
	}
	assert.Equal(t, want, got)
}

func TestPredicateBSON_KeyMapping(t *testing.T) {
	t.Parallel()

	p := ForSubmissions(SubmissionFilter{Status: "completed"}).Predicate
	got, err := p.BSON(map[string]string{FieldStatus: "state"})
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "state", Value: "completed"}}, got)

	_, err = p.BSON(map[string]string{})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestPredicateBSON_DuplicateKeysUseAnd(t *testing.T) {
	t.Parallel()

	p := Predicate{Conditions: []Condition{
		{Field: "title", Op: OpEq, Value: "a"},
		{Field: "title", Op: OpContainsFold, Value: "b"},
	}}
	got, err := p.BSON(nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "$and", got[0].Key)
	assert.Len(t, got[0].Value, 2)
}

func TestPageFindOptions(t *testing.T) {
	t.Parallel()

	page := &Page{Number: 2, Size: 5}
	opts := page.FindOptions()
	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.EqualValues(t, 10, *opts.Skip)
	assert.EqualValues(t, 5, *opts.Limit)

	var none *Page
	assert.Nil(t, none.FindOptions().Limit)

	huge := ParsePage("99999999999999999999999", "10")
	opts = huge.FindOptions()
	require.NotNil(t, opts.Skip)
	assert.Positive(t, *opts.Skip)
	assert.EqualValues(t, 10, *opts.Limit)
}
