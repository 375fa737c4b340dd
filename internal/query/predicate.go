// Package query holds the dynamic filter predicate builder and the fixed
// catalog of analytical reports that run against the food donation store.
package query

import (
	"strings"
)

// Predicate accumulates SQL filter fragments and their bound arguments.
// Fragments are combined with AND. Values are always bound, never
// interpolated into the SQL text.
type Predicate struct {
	frags []string
	args  []any
}

// In appends a "column IN (?, ...)" fragment. No fragment is added when
// values is empty, so an inactive dimension never constrains the query.
func (p *Predicate) In(column string, values []any) *Predicate {
	if len(values) == 0 {
		return p
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
	p.frags = append(p.frags, column+" IN ("+placeholders+")")
	p.args = append(p.args, values...)
	return p
}

// Cond appends a literal condition with its bound arguments. Conditions
// that must combine with the multiselect dimensions are pushed here so the
// WHERE-versus-AND stitching is decided in one place.
func (p *Predicate) Cond(expr string, args ...any) *Predicate {
	p.frags = append(p.frags, expr)
	p.args = append(p.args, args...)
	return p
}

// Empty reports whether no fragment has been added.
func (p *Predicate) Empty() bool {
	return len(p.frags) == 0
}

// Clause renders the predicate. It returns the empty string and no
// arguments when nothing was added, otherwise a clause beginning with
// WHERE, ready to append after a table reference.
func (p *Predicate) Clause() (string, []any) {
	if len(p.frags) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(p.frags, " AND "), p.args
}
