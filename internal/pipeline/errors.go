package pipeline

import (
	"fmt"
	"strings"
)

// EmptyMatchError reports a required dimension filter that matched no
// rows. Every downstream join against the empty match would drain, so an
// empty final result would masquerade as a legitimate answer; the
// pipeline fails hard instead.
type EmptyMatchError struct {
	Table  string
	Column string
	Value  string
}

func (e *EmptyMatchError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("table %s", e.Table))
	parts = append(parts, fmt.Sprintf("no row matches %s=%q", e.Column, e.Value))

	return strings.Join(parts, " - ")
}

func NewEmptyMatch(table, column, value string) *EmptyMatchError {
	return &EmptyMatchError{
		Table:  table,
		Column: column,
		Value:  value,
	}
}
