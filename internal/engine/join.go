package engine

// mergeRows combines a matched pair into one fresh output row, never a
// view of either input. Right-side fields win on name collision, so a
// join key present on both sides carries the right table's value.
func mergeRows(left, right Row) Row {
	merged := left.Clone()
	for k, v := range right {
		merged[k] = v
	}
	return merged
}

// InnerJoin tests every left/right pair against the predicate and emits a
// merged row per match. Output order is left-row order, then right-row
// order within each left row.
func InnerJoin(left, right Table, pred JoinPredicate) Table {
	var result Table
	for _, lrow := range left {
		for _, rrow := range right {
			if pred(lrow, rrow) {
				result = append(result, mergeRows(lrow, rrow))
			}
		}
	}
	return result
}

// LeftJoin is InnerJoin except that a left row matching nothing is emitted
// verbatim, with no placeholder columns for the missing right side.
func LeftJoin(left, right Table, pred JoinPredicate) Table {
	var result Table
	for _, lrow := range left {
		matched := false
		for _, rrow := range right {
			if pred(lrow, rrow) {
				result = append(result, mergeRows(lrow, rrow))
				matched = true
			}
		}
		if !matched {
			result = append(result, lrow)
		}
	}
	return result
}

// CrossJoin merges every left/right pair unconditionally.
func CrossJoin(left, right Table) Table {
	result := make(Table, 0, len(left)*len(right))
	for _, lrow := range left {
		for _, rrow := range right {
			result = append(result, mergeRows(lrow, rrow))
		}
	}
	return result
}
