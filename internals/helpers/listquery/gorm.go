package listquery

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ApplyGorm adds WHERE clauses for every condition. columns maps logical
// field names to table columns; an unmapped field is an error, never skipped.
func (p Predicate) ApplyGorm(db *gorm.DB, columns map[string]string) (*gorm.DB, error) {
	for _, c := range p.Conditions {
		col, ok := columns[c.Field]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, c.Field)
		}
		switch c.Op {
		case OpEq:
			db = db.Where(col+" = ?", c.Value)
		case OpContainsFold:
			db = db.Where(col+" ILIKE ?", "%"+likeEscaper.Replace(c.Value)+"%")
		default:
			return nil, fmt.Errorf("listquery: unsupported op %q", c.Op)
		}
	}
	return db, nil
}

// ApplyGorm adds OFFSET/LIMIT. A nil page leaves the query unbounded.
func (p *Page) ApplyGorm(db *gorm.DB) *gorm.DB {
	if p == nil {
		return db
	}
	return db.Offset(p.Skip()).Limit(p.Limit())
}
