package listquery

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type row struct {
	ID string
}

func (row) TableName() string { return "rows" }

func newDryGorm(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

var testColumns = map[string]string{
	FieldDifficulty: "difficulty_col",
	FieldTitle:      "title_col",
}

func TestPredicateApplyGorm_RendersConjunctionAndPage(t *testing.T) {
	t.Parallel()

	db := newDryGorm(t)
	spec := ForAssignments(AssignmentFilter{Difficulty: "easy", Search: "50%_off", Page: "2", Size: "5"})

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		q, err := spec.Predicate.ApplyGorm(tx.Model(&row{}), testColumns)
		require.NoError(t, err)
		var out []row
		return spec.Page.ApplyGorm(q).Find(&out)
	})

	assert.Contains(t, sql, `difficulty_col = 'easy'`)
	assert.Contains(t, sql, `title_col ILIKE '%50\%\_off%'`)
	assert.Contains(t, sql, " AND ")
	assert.Contains(t, sql, "LIMIT 5")
	assert.Contains(t, sql, "OFFSET 10")
}

func TestPredicateApplyGorm_UnknownFieldFails(t *testing.T) {
	t.Parallel()

	db := newDryGorm(t)
	p := ForSubmissions(SubmissionFilter{Status: "pending"}).Predicate
	_, err := p.ApplyGorm(db, testColumns)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestPageApplyGorm_BoundaryValues(t *testing.T) {
	t.Parallel()

	db := newDryGorm(t)
	cases := []struct {
		name, page, size string
		want             []string
	}{
		{"page near MaxInt stays a positive offset", "922337203685477581", "10", []string{"LIMIT 10", "OFFSET 9223372036854775800"}},
		{"size above MaxSize is capped", "1", "5000", []string{"LIMIT 100", "OFFSET 100"}},
		{"page beyond the data is still a plain window", "50", "5", []string{"LIMIT 5", "OFFSET 250"}},
	}
	for _, tc := range cases {
		page := ParsePage(tc.page, tc.size)
		sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			var out []row
			return page.ApplyGorm(tx.Model(&row{})).Find(&out)
		})
		for _, w := range tc.want {
			assert.Contains(t, sql, w, tc.name)
		}
		assert.NotContains(t, sql, "OFFSET -", tc.name)
	}
}
