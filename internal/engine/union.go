package engine

// Union concatenates two tables and removes duplicates, keeping the first
// occurrence of each row. Rows of the first table come before rows of the
// second, each block in its original order.
func Union(a, b Table) Table {
	combined := make(Table, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return Distinct(combined)
}

// UnionAll concatenates two tables without deduplication.
func UnionAll(a, b Table) Table {
	combined := make(Table, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	return combined
}
