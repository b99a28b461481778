// Package engine implements the in-memory relational operators: scalar
// transforms over row tables, nested-loop and concurrent hash joins, and
// grouping with aggregation. Every operator is a strict transform: it fully
// materializes its output before returning and never mutates its input.
package engine

import "strconv"

// Row is a single table row, mapping column name to text value.
// A column absent from the map is a distinct state from a column holding "".
type Row map[string]string

// Table is an ordered sequence of rows. Row order matters for Limit/Offset
// and survives an operator only where that operator documents it.
type Table []Row

// Predicate tests whether a row matches certain criteria. Predicates must
// not mutate the row; a referenced column that is absent makes the
// predicate false unless it explicitly tests for absence.
type Predicate func(Row) bool

// JoinPredicate tests whether a pair of rows from two tables matches,
// under the same absence policy as Predicate.
type JoinPredicate func(left, right Row) bool

// Clone creates a copy of the row to prevent mutation of the original.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Float interprets the named column as a 64-bit float. Numeric values are
// never stored pre-parsed; this is the single on-demand conversion point.
// A missing column or non-numeric text yields a *ParseError.
func (r Row) Float(column string) (float64, error) {
	v, ok := r[column]
	if !ok {
		return 0, NewMissingColumn(column)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, NewBadNumber(column, v, err)
	}
	return f, nil
}
