package listquery

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BSON renders the predicate as a find filter. keys maps logical fields to
// document keys; nil means the logical names are the keys.
func (p Predicate) BSON(keys map[string]string) (bson.D, error) {
	clauses := make(bson.D, 0, len(p.Conditions))
	seen := make(map[string]bool, len(p.Conditions))
	dup := false

	for _, c := range p.Conditions {
		key := c.Field
		if keys != nil {
			k, ok := keys[c.Field]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownField, c.Field)
			}
			key = k
		}
		var val any
		switch c.Op {
		case OpEq:
			val = c.Value
		case OpContainsFold:
			val = primitive.Regex{Pattern: regexp.QuoteMeta(c.Value), Options: "i"}
		default:
			return nil, fmt.Errorf("listquery: unsupported op %q", c.Op)
		}
		if seen[key] {
			dup = true
		}
		seen[key] = true
		clauses = append(clauses, bson.E{Key: key, Value: val})
	}

	if !dup {
		return clauses, nil
	}
	and := make(bson.A, 0, len(clauses))
	for _, e := range clauses {
		and = append(and, bson.D{e})
	}
	return bson.D{{Key: "$and", Value: and}}, nil
}

// FindOptions returns skip/limit options for the page, nil page means none.
func (p *Page) FindOptions() *options.FindOptions {
	opts := options.Find()
	if p == nil {
		return opts
	}
	return opts.SetSkip(int64(p.Skip())).SetLimit(int64(p.Limit()))
}
