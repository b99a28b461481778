package engine

import (
	"sort"
	"strconv"
)

// AggFunc reduces one group of rows to a single numeric value.
type AggFunc func(Table) (float64, error)

// Sum adds up the named column over the group. A row without the column
// contributes zero; a row holding non-numeric text is an error, never a
// silent zero.
func Sum(group Table, column string) (float64, error) {
	var total float64
	for _, row := range group {
		v, ok := row[column]
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, NewBadNumber(column, v, err)
		}
		total += f
	}
	return total, nil
}

// Count returns the number of rows in the group.
func Count(group Table) int {
	return len(group)
}

// CountColumn counts the rows where the named column is present and
// non-empty.
func CountColumn(group Table, column string) int {
	n := 0
	for _, row := range group {
		if v, ok := row[column]; ok && v != "" {
			n++
		}
	}
	return n
}

// Avg returns Sum divided by the group's row count, or zero for an empty
// group.
func Avg(group Table, column string) (float64, error) {
	if len(group) == 0 {
		return 0, nil
	}
	total, err := Sum(group, column)
	if err != nil {
		return 0, err
	}
	return total / float64(len(group)), nil
}

// Max returns the largest value of the column. The running extremum is
// seeded from the first row, which must carry the column; later rows
// without it are skipped. An empty group yields zero.
func Max(group Table, column string) (float64, error) {
	return extremum(group, column, func(v, best float64) bool { return v > best })
}

// Min returns the smallest value of the column, under the same seeding
// rule as Max.
func Min(group Table, column string) (float64, error) {
	return extremum(group, column, func(v, best float64) bool { return v < best })
}

func extremum(group Table, column string, better func(v, best float64) bool) (float64, error) {
	if len(group) == 0 {
		return 0, nil
	}
	best, err := group[0].Float(column)
	if err != nil {
		return 0, err
	}
	for _, row := range group[1:] {
		v, ok := row[column]
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, NewBadNumber(column, v, err)
		}
		if better(f, best) {
			best = f
		}
	}
	return best, nil
}

// The *Of builders adapt the primitives above to AggFunc for Aggregate.

func SumOf(column string) AggFunc {
	return func(group Table) (float64, error) { return Sum(group, column) }
}

func CountAll() AggFunc {
	return func(group Table) (float64, error) { return float64(Count(group)), nil }
}

func CountOf(column string) AggFunc {
	return func(group Table) (float64, error) { return float64(CountColumn(group, column)), nil }
}

func AvgOf(column string) AggFunc {
	return func(group Table) (float64, error) { return Avg(group, column) }
}

func MaxOf(column string) AggFunc {
	return func(group Table) (float64, error) { return Max(group, column) }
}

func MinOf(column string) AggFunc {
	return func(group Table) (float64, error) { return Min(group, column) }
}

// Aggregate reduces each group to one synthesized row holding the group
// key under keyColumn plus one text-serialized column per named aggregate.
// Result rows are ordered by ascending group key, not by first-seen order:
// the aggregate step keys rows by group identity, so source row order no
// longer applies.
func Aggregate(groups Groups, keyColumn string, aggs map[string]AggFunc) (Table, error) {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := make([]string, 0, len(aggs))
	for name := range aggs {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make(Table, 0, len(groups))
	for _, key := range keys {
		row := Row{keyColumn: key}
		for _, name := range names {
			v, err := aggs[name](groups[key])
			if err != nil {
				return nil, err
			}
			row[name] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		result = append(result, row)
	}
	return result, nil
}
