package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/relq/internal/engine"
)

func TestGroupBy_BucketsByValue(t *testing.T) {
	table := engine.Table{
		{"city": "oslo", "name": "alice"},
		{"city": "lima", "name": "bob"},
		{"city": "oslo", "name": "carol"},
	}

	groups := engine.GroupBy(table, "city")

	require.Len(t, groups, 2)
	assert.Equal(t, engine.Table{
		{"city": "oslo", "name": "alice"},
		{"city": "oslo", "name": "carol"},
	}, groups["oslo"])
	assert.Equal(t, engine.Table{{"city": "lima", "name": "bob"}}, groups["lima"])
}

// Rows lacking the group column land in no group at all.
func TestGroupBy_ExcludesRowsMissingColumn(t *testing.T) {
	table := engine.Table{
		{"city": "oslo"},
		{"name": "nomad"},
	}

	groups := engine.GroupBy(table, "city")

	require.Len(t, groups, 1)
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, 1, total)
}

// The sum of group sizes must equal the count of rows carrying the
// column.
func TestGroupBy_PartitionsPresentRows(t *testing.T) {
	table := engine.Table{
		{"c": "x"}, {"c": "y"}, {"c": "x"}, {"d": "z"}, {"c": "y"}, {},
	}

	groups := engine.GroupBy(table, "c")

	withColumn := len(engine.Filter(table, func(r engine.Row) bool {
		_, ok := r["c"]
		return ok
	}))
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, withColumn, total)
}

func TestGroupByMulti_CompositeKey(t *testing.T) {
	table := engine.Table{
		{"city": "oslo", "tier": "gold", "id": "1"},
		{"city": "oslo", "tier": "silver", "id": "2"},
		{"city": "oslo", "tier": "gold", "id": "3"},
	}

	groups := engine.GroupByMulti(table, "city", "tier")

	require.Len(t, groups, 2)
	for _, g := range groups {
		for _, row := range g[1:] {
			assert.Equal(t, g[0]["city"], row["city"])
			assert.Equal(t, g[0]["tier"], row["tier"])
		}
	}
}

// Rows missing some grouped columns are still grouped; the missing
// column contributes nothing to the key. Aliasing across logically
// different tuples is the documented cost of the flat key.
func TestGroupByMulti_IncludesRowsMissingColumns(t *testing.T) {
	table := engine.Table{
		{"a": "v", "id": "1"},
		{"b": "v", "id": "2"},
	}

	groups := engine.GroupByMulti(table, "a", "b")

	require.Len(t, groups, 1)
	for _, g := range groups {
		assert.Len(t, g, 2)
	}
}

// avg(group) * count(group) must come back to sum(group) for every
// non-empty group.
func TestGroupAggregate_RoundTrip(t *testing.T) {
	table := engine.Table{
		{"c": "x", "v": "1.5"},
		{"c": "x", "v": "2.5"},
		{"c": "y", "v": "10"},
		{"c": "x", "v": "4"},
	}

	for _, group := range engine.GroupBy(table, "c") {
		sum, err := engine.Sum(group, "v")
		require.NoError(t, err)
		avg, err := engine.Avg(group, "v")
		require.NoError(t, err)
		assert.InDelta(t, sum, avg*float64(engine.Count(group)), 1e-9)
	}
}
