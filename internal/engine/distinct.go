package engine

import (
	"sort"
	"strings"
)

// Separators woven into row signatures and composite group keys. Neither
// byte occurs in the text this engine ingests.
const (
	unitSep   = "\x1f"
	recordSep = "\x1e"
)

// rowSignature canonicalizes a row for equality testing: column names are
// sorted so two rows with the same contents produce the same signature
// regardless of construction order. Name and value are both encoded, so a
// row where a column is absent never collides with one holding "".
func rowSignature(row Row) string {
	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	var b strings.Builder
	for _, col := range cols {
		b.WriteString(col)
		b.WriteString(unitSep)
		b.WriteString(row[col])
		b.WriteString(recordSep)
	}
	return b.String()
}

// compositeKey concatenates the listed columns' values in order, each
// followed by the separator. A column absent from the row contributes
// nothing, so two different column tuples can alias to the same key.
// Known limitation of the flat-key design; callers that cannot tolerate
// the aliasing should derive a single key column first.
func compositeKey(row Row, columns []string) string {
	var b strings.Builder
	for _, col := range columns {
		if v, ok := row[col]; ok {
			b.WriteString(v)
			b.WriteString(unitSep)
		}
	}
	return b.String()
}

// Distinct removes duplicate rows, keeping the first occurrence of each
// distinct row in input order.
func Distinct(t Table) Table {
	seen := make(map[string]struct{}, len(t))
	var result Table
	for _, row := range t {
		sig := rowSignature(row)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		result = append(result, row)
	}
	return result
}

// DistinctOn removes rows duplicating an earlier row on the listed columns
// only. The first row seen for each key is kept whole, later rows with the
// same key are dropped whatever their other columns hold.
func DistinctOn(t Table, columns ...string) Table {
	seen := make(map[string]struct{}, len(t))
	var result Table
	for _, row := range t {
		key := compositeKey(row, columns)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, row)
	}
	return result
}
