package engine

// Predicate builders close over a column name and a comparison value and
// return a reusable predicate. All comparisons are lexicographic over the
// field text; the engine never auto-detects numeric columns. A row missing
// the column fails every builder below, so a filter cannot invent a value
// for a column a row does not carry.

// Equals matches rows whose column holds exactly the given text.
func Equals(column, value string) Predicate {
	return func(row Row) bool {
		v, ok := row[column]
		return ok && v == value
	}
}

// GreaterThan matches rows whose column sorts after the given text.
func GreaterThan(column, value string) Predicate {
	return func(row Row) bool {
		v, ok := row[column]
		return ok && v > value
	}
}

// GreaterEqual matches rows whose column sorts at or after the given text.
// With zero-padded date text this is an inclusive lower bound.
func GreaterEqual(column, value string) Predicate {
	return func(row Row) bool {
		v, ok := row[column]
		return ok && v >= value
	}
}

// LessThan matches rows whose column sorts before the given text. With
// zero-padded date text this is an exclusive upper bound.
func LessThan(column, value string) Predicate {
	return func(row Row) bool {
		v, ok := row[column]
		return ok && v < value
	}
}

// LessEqual matches rows whose column sorts at or before the given text.
func LessEqual(column, value string) Predicate {
	return func(row Row) bool {
		v, ok := row[column]
		return ok && v <= value
	}
}

// InSet matches rows whose column holds any of the given values.
func InSet(column string, values ...string) Predicate {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(row Row) bool {
		v, ok := row[column]
		if !ok {
			return false
		}
		_, found := set[v]
		return found
	}
}

// JoinOn builds an equality join predicate over one column from each side.
// Either side missing its column makes the pair a non-match.
func JoinOn(leftColumn, rightColumn string) JoinPredicate {
	return func(left, right Row) bool {
		lv, ok := left[leftColumn]
		if !ok {
			return false
		}
		rv, ok := right[rightColumn]
		return ok && lv == rv
	}
}
