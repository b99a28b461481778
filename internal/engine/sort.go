package engine

import "sort"

// Direction selects the ordering of a sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// OrderBy returns the table sorted by the named column's text value. Rows
// missing the column sort as the empty string. The sort is stable, so rows
// with equal keys keep their input order.
func OrderBy(t Table, column string, dir Direction) Table {
	result := make(Table, len(t))
	copy(result, t)
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i][column], result[j][column]
		if dir == Descending {
			return a > b
		}
		return a < b
	})
	return result
}

// SortKey names one column of a multi-column sort and its direction.
type SortKey struct {
	Column string
	Dir    Direction
}

// OrderByMulti sorts by several keys: comparison moves to the next key
// only when the current key's values are equal, and rows equal on every
// key keep their input order. Missing columns sort as the empty string,
// as in OrderBy.
func OrderByMulti(t Table, keys ...SortKey) Table {
	result := make(Table, len(t))
	copy(result, t)
	sort.SliceStable(result, func(i, j int) bool {
		for _, k := range keys {
			a, b := result[i][k.Column], result[j][k.Column]
			if a == b {
				continue
			}
			if k.Dir == Descending {
				return a > b
			}
			return a < b
		}
		return false
	})
	return result
}

// OrderByNumeric returns the table sorted by the named column interpreted
// as a float. Every row's key is parsed up front, so a missing column or
// non-numeric value surfaces as a *ParseError instead of silently skewing
// the order. The sort is stable.
func OrderByNumeric(t Table, column string, dir Direction) (Table, error) {
	type keyed struct {
		row Row
		key float64
	}
	decorated := make([]keyed, len(t))
	for i, row := range t {
		k, err := row.Float(column)
		if err != nil {
			return nil, err
		}
		decorated[i] = keyed{row: row, key: k}
	}
	sort.SliceStable(decorated, func(i, j int) bool {
		if dir == Descending {
			return decorated[i].key > decorated[j].key
		}
		return decorated[i].key < decorated[j].key
	})
	result := make(Table, len(t))
	for i, d := range decorated {
		result[i] = d.row
	}
	return result, nil
}
