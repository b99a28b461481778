package engine

// Project emits, for each row, a new row holding only the listed columns
// that are present in the source row. A listed column absent from a row is
// simply omitted from that row's output; no placeholder is synthesized.
func Project(t Table, columns ...string) Table {
	result := make(Table, 0, len(t))
	for _, row := range t {
		out := make(Row, len(columns))
		for _, col := range columns {
			if v, ok := row[col]; ok {
				out[col] = v
			}
		}
		result = append(result, out)
	}
	return result
}

// ProjectAll is the identity transform (SELECT *).
func ProjectAll(t Table) Table {
	return t
}
