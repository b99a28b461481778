package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leengari/relq/internal/engine"
)

// Comparisons are lexicographic over the field text. Zero-padded dates
// are the main use, so the cases below exercise them.
func TestComparisonBuilders(t *testing.T) {
	row := engine.Row{"O_ORDERDATE": "1994-06-15"}

	cases := []struct {
		name string
		pred engine.Predicate
		want bool
	}{
		{"equals match", engine.Equals("O_ORDERDATE", "1994-06-15"), true},
		{"equals mismatch", engine.Equals("O_ORDERDATE", "1994-06-16"), false},
		{"greater than below", engine.GreaterThan("O_ORDERDATE", "1994-01-01"), true},
		{"greater than itself", engine.GreaterThan("O_ORDERDATE", "1994-06-15"), false},
		{"greater equal itself", engine.GreaterEqual("O_ORDERDATE", "1994-06-15"), true},
		{"greater equal above", engine.GreaterEqual("O_ORDERDATE", "1995-01-01"), false},
		{"less than above", engine.LessThan("O_ORDERDATE", "1995-01-01"), true},
		{"less than itself", engine.LessThan("O_ORDERDATE", "1994-06-15"), false},
		{"less equal itself", engine.LessEqual("O_ORDERDATE", "1994-06-15"), true},
		{"less equal below", engine.LessEqual("O_ORDERDATE", "1994-01-01"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.pred(row))
		})
	}
}

// A row without the column fails every builder.
func TestBuilders_AbsentColumnNeverMatches(t *testing.T) {
	empty := engine.Row{}

	preds := map[string]engine.Predicate{
		"equals":        engine.Equals("c", ""),
		"greater than":  engine.GreaterThan("c", ""),
		"greater equal": engine.GreaterEqual("c", ""),
		"less than":     engine.LessThan("c", "z"),
		"less equal":    engine.LessEqual("c", "z"),
		"in set":        engine.InSet("c", ""),
	}
	for name, pred := range preds {
		t.Run(name, func(t *testing.T) {
			assert.False(t, pred(empty))
		})
	}
}

func TestInSet(t *testing.T) {
	pred := engine.InSet("city", "oslo", "lima")

	assert.True(t, pred(engine.Row{"city": "oslo"}))
	assert.True(t, pred(engine.Row{"city": "lima"}))
	assert.False(t, pred(engine.Row{"city": "pune"}))
}

func TestJoinOn(t *testing.T) {
	pred := engine.JoinOn("id", "user_id")

	assert.True(t, pred(engine.Row{"id": "7"}, engine.Row{"user_id": "7"}))
	assert.False(t, pred(engine.Row{"id": "7"}, engine.Row{"user_id": "8"}))
	assert.False(t, pred(engine.Row{}, engine.Row{"user_id": "7"}))
	assert.False(t, pred(engine.Row{"id": "7"}, engine.Row{}))
}
