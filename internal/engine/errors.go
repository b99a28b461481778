package engine

import (
	"fmt"
	"strings"
)

// ParseError reports a field whose text could not be interpreted as a
// number where an operator required one. This is distinct from the
// zero-accumulation policy for absent fields: Sum treats an absent field
// as 0, but a present field holding non-numeric text always fails, as does
// a column that an operator requires and a row does not carry.
type ParseError struct {
	Column string
	Value  string // offending text; empty when the column was missing
	Reason string // "column missing" or "not numeric"
	Err    error  // underlying strconv error, if any
}

func (e *ParseError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("column %s", e.Column))

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("value=%q", e.Value))
	}

	return strings.Join(parts, " - ")
}

func (e *ParseError) Unwrap() error { return e.Err }

func NewMissingColumn(column string) *ParseError {
	return &ParseError{
		Column: column,
		Reason: "column missing",
	}
}

func NewBadNumber(column, value string, err error) *ParseError {
	return &ParseError{
		Column: column,
		Value:  value,
		Reason: "not numeric",
		Err:    err,
	}
}
