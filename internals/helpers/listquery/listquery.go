// Package listquery turns optional list filters into a store-neutral query:
// a conjunctive predicate plus an optional page window.
package listquery

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Logical field names shared by every store backend.
const (
	FieldTitle          = "title"
	FieldDifficulty     = "difficulty"
	FieldSubmitterEmail = "submitterEmail"
	FieldStatus         = "status"
)

const (
	DefaultPage = 0
	DefaultSize = 10
	MaxSize     = 100
)

var ErrUnknownField = errors.New("listquery: unknown field")

type Op string

const (
	OpEq           Op = "eq"
	OpContainsFold Op = "contains_fold"
)

type Condition struct {
	Field string
	Op    Op
	Value string
}

// Matches reports whether a single stored value satisfies the condition.
func (c Condition) Matches(v string) bool {
	switch c.Op {
	case OpEq:
		return v == c.Value
	case OpContainsFold:
		return strings.Contains(strings.ToLower(v), strings.ToLower(c.Value))
	default:
		return false
	}
}

// Predicate is the AND of its conditions. An empty predicate matches everything.
type Predicate struct {
	Conditions []Condition
}

func (p Predicate) IsEmpty() bool { return len(p.Conditions) == 0 }

// Matches evaluates the predicate against a record exposed through lookup.
// A field the record does not have never matches.
func (p Predicate) Matches(lookup func(field string) (string, bool)) bool {
	for _, c := range p.Conditions {
		v, ok := lookup(c.Field)
		if !ok || !c.Matches(v) {
			return false
		}
	}
	return true
}

func (p *Predicate) add(field string, op Op, raw string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	p.Conditions = append(p.Conditions, Condition{Field: field, Op: op, Value: v})
}

// Page is a zero-based page window.
type Page struct {
	Number int
	Size   int
}

// Skip saturates at math.MaxInt instead of wrapping negative.
func (p Page) Skip() int {
	if p.Size > 0 && p.Number > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Number * p.Size
}

func (p Page) Limit() int { return p.Size }

// ParsePage reads raw page/size values. Anything missing, non-numeric or
// negative falls back to the defaults; size is capped at MaxSize. A page
// too large for an int is clamped so page*size still fits, which keeps it
// past the last record.
func ParsePage(page, size string) Page {
	s, err := strconv.Atoi(strings.TrimSpace(size))
	if errors.Is(err, strconv.ErrRange) && s > 0 {
		s = MaxSize
	} else if err != nil || s <= 0 {
		s = DefaultSize
	}
	if s > MaxSize {
		s = MaxSize
	}

	n, err := strconv.Atoi(strings.TrimSpace(page))
	switch {
	case errors.Is(err, strconv.ErrRange) && n > 0:
		n = math.MaxInt
	case err != nil || n < 0:
		n = DefaultPage
	}
	if n > math.MaxInt/s {
		n = math.MaxInt / s
	}
	return Page{Number: n, Size: s}
}

// Spec is handed unmodified to a repository's List.
type Spec struct {
	Predicate Predicate
	Page      *Page
}

type AssignmentFilter struct {
	Difficulty string
	Search     string
	Page       string
	Size       string
}

// ForAssignments: difficulty is an exact match, search a case-insensitive
// title substring. Both apply together when both are given.
func ForAssignments(f AssignmentFilter) Spec {
	var p Predicate
	p.add(FieldDifficulty, OpEq, f.Difficulty)
	p.add(FieldTitle, OpContainsFold, f.Search)
	page := ParsePage(f.Page, f.Size)
	return Spec{Predicate: p, Page: &page}
}

type SubmissionFilter struct {
	SubmitterEmail string
	Status         string
}

// ForSubmissions ANDs submitterEmail and status. Submission lists are not paginated.
func ForSubmissions(f SubmissionFilter) Spec {
	var p Predicate
	p.add(FieldSubmitterEmail, OpEq, f.SubmitterEmail)
	p.add(FieldStatus, OpEq, f.Status)
	return Spec{Predicate: p}
}
