package engine

// Filter emits the rows for which the predicate holds.
func Filter(t Table, pred Predicate) Table {
	var result Table
	for _, row := range t {
		if pred(row) {
			result = append(result, row)
		}
	}
	return result
}

// FilterAnd emits rows matching every predicate. Evaluation short-circuits
// on the first predicate a row fails; with no predicates every row passes.
func FilterAnd(t Table, preds ...Predicate) Table {
	var result Table
	for _, row := range t {
		match := true
		for _, pred := range preds {
			if !pred(row) {
				match = false
				break
			}
		}
		if match {
			result = append(result, row)
		}
	}
	return result
}

// FilterOr emits rows matching at least one predicate. Evaluation
// short-circuits on the first predicate a row passes; with no predicates
// no row passes.
func FilterOr(t Table, preds ...Predicate) Table {
	var result Table
	for _, row := range t {
		for _, pred := range preds {
			if pred(row) {
				result = append(result, row)
				break
			}
		}
	}
	return result
}
