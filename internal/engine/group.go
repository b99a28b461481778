package engine

// Groups maps a group key to the rows sharing it, in input order.
type Groups map[string]Table

// GroupBy buckets rows by the value of the named column. A row without
// the column lands in no group at all.
func GroupBy(t Table, column string) Groups {
	groups := make(Groups)
	for _, row := range t {
		v, ok := row[column]
		if !ok {
			continue
		}
		groups[v] = append(groups[v], row)
	}
	return groups
}

// GroupByMulti buckets rows by the composite key of the listed columns.
// Unlike GroupBy, a row missing some of the columns is still grouped; the
// missing columns just add nothing to its key. See compositeKey for the
// aliasing this can cause.
func GroupByMulti(t Table, columns ...string) Groups {
	groups := make(Groups)
	for _, row := range t {
		key := compositeKey(row, columns)
		groups[key] = append(groups[key], row)
	}
	return groups
}
