package storage

import (
	"fmt"
	"strings"
)

// IngestError reports a source table that could not be turned into rows.
// Ingestion never recovers partially: the first bad line abandons the
// whole table.
type IngestError struct {
	File   string
	Line   int // 1-based; 0 when the file itself failed
	Reason string
	Err    error
}

func (e *IngestError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("table file %s", e.File))

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, " - ")
}

func (e *IngestError) Unwrap() error { return e.Err }

func NewUnreadableFile(file string, err error) *IngestError {
	return &IngestError{
		File:   file,
		Reason: "cannot read",
		Err:    err,
	}
}

func NewShortLine(file string, line, got, want int) *IngestError {
	return &IngestError{
		File:   file,
		Line:   line,
		Reason: fmt.Sprintf("%d fields, schema needs %d", got, want),
	}
}
