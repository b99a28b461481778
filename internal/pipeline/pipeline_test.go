package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/relq/internal/engine"
	"github.com/leengari/relq/internal/pipeline"
)

// scenarioDataset builds the smallest dataset where the query has work
// to do: one in-range order in ASIA whose lineitem ties to a supplier in
// the customer's own nation, plus decoys that each stage must reject: a
// nation outside the region, an out-of-range order, and a lineitem whose
// supplier sits in a different nation than the customer.
func scenarioDataset() pipeline.Dataset {
	return pipeline.Dataset{
		Region: engine.Table{
			{"R_REGIONKEY": "1", "R_NAME": "ASIA"},
			{"R_REGIONKEY": "2", "R_NAME": "EUROPE"},
		},
		Nation: engine.Table{
			{"N_NATIONKEY": "10", "N_NAME": "JAPAN", "N_REGIONKEY": "1"},
			{"N_NATIONKEY": "11", "N_NAME": "INDIA", "N_REGIONKEY": "1"},
			{"N_NATIONKEY": "20", "N_NAME": "FRANCE", "N_REGIONKEY": "2"},
		},
		Customer: engine.Table{
			{"C_CUSTKEY": "100", "C_NAME": "Customer#100", "C_NATIONKEY": "10"},
			{"C_CUSTKEY": "200", "C_NAME": "Customer#200", "C_NATIONKEY": "20"},
		},
		Orders: engine.Table{
			{"O_ORDERKEY": "1000", "O_CUSTKEY": "100", "O_ORDERDATE": "1994-06-15"},
			{"O_ORDERKEY": "1001", "O_CUSTKEY": "100", "O_ORDERDATE": "1996-03-01"},
		},
		Lineitem: engine.Table{
			{"L_ORDERKEY": "1000", "L_SUPPKEY": "500", "L_EXTENDEDPRICE": "100.0", "L_DISCOUNT": "0.1"},
			{"L_ORDERKEY": "1000", "L_SUPPKEY": "501", "L_EXTENDEDPRICE": "55.5", "L_DISCOUNT": "0.0"},
			{"L_ORDERKEY": "1001", "L_SUPPKEY": "500", "L_EXTENDEDPRICE": "70.0", "L_DISCOUNT": "0.2"},
		},
		Supplier: engine.Table{
			{"S_SUPPKEY": "500", "S_NAME": "Supplier#500", "S_NATIONKEY": "10"},
			{"S_SUPPKEY": "501", "S_NAME": "Supplier#501", "S_NATIONKEY": "11"},
		},
	}
}

func scenarioParams() pipeline.Params {
	return pipeline.Params{
		Region:    "ASIA",
		StartDate: "1994-01-01",
		EndDate:   "1995-01-01",
		Workers:   2,
	}
}

func TestRevenueByNation_ComputesRegionRevenue(t *testing.T) {
	runner := pipeline.NewRunner()

	results, err := runner.RevenueByNation(scenarioParams(), scenarioDataset())

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Contains(t, results, "JAPAN")
	assert.InDelta(t, 90.0, results["JAPAN"], 1e-9)
}

// Only the lineitem whose supplier shares the customer's nation may
// contribute, so INDIA earns nothing from a JAPAN customer's order.
func TestRevenueByNation_DropsSupplierNationMismatch(t *testing.T) {
	runner := pipeline.NewRunner()

	results, err := runner.RevenueByNation(scenarioParams(), scenarioDataset())

	require.NoError(t, err)
	assert.NotContains(t, results, "INDIA")
}

// A date range matching no orders is an empty answer, not a failure: the
// dimension filter still matched.
func TestRevenueByNation_EmptyDateRangeIsNotAnError(t *testing.T) {
	runner := pipeline.NewRunner()
	params := scenarioParams()
	params.StartDate = "1997-01-01"
	params.EndDate = "1998-01-01"

	results, err := runner.RevenueByNation(params, scenarioDataset())

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRevenueByNation_UnknownRegionFails(t *testing.T) {
	runner := pipeline.NewRunner()
	params := scenarioParams()
	params.Region = "ANTARCTICA"

	results, err := runner.RevenueByNation(params, scenarioDataset())

	var emptyErr *pipeline.EmptyMatchError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "region", emptyErr.Table)
	assert.Equal(t, "R_NAME", emptyErr.Column)
	assert.Equal(t, "ANTARCTICA", emptyErr.Value)
	assert.Nil(t, results)
}

// The exclusive upper bound: an order dated exactly on the end date is
// out of range.
func TestRevenueByNation_EndDateExclusive(t *testing.T) {
	runner := pipeline.NewRunner()
	params := scenarioParams()
	params.StartDate = "1994-01-01"
	params.EndDate = "1994-06-15"

	results, err := runner.RevenueByNation(params, scenarioDataset())

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRevenueByNation_SameAnswerForAnyWorkerCount(t *testing.T) {
	runner := pipeline.NewRunner()
	params := scenarioParams()

	want, err := runner.RevenueByNation(params, scenarioDataset())
	require.NoError(t, err)

	for _, workers := range []int{1, 3, 8} {
		params.Workers = workers
		got, err := runner.RevenueByNation(params, scenarioDataset())
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestRevenueByNation_BadNumericDataFails(t *testing.T) {
	runner := pipeline.NewRunner()
	ds := scenarioDataset()
	ds.Lineitem[0]["L_DISCOUNT"] = "ten percent"

	_, err := runner.RevenueByNation(scenarioParams(), ds)

	var parseErr *engine.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "L_DISCOUNT", parseErr.Column)
}

type captureObserver struct {
	events []pipeline.Event
}

func (c *captureObserver) OnEvent(e pipeline.Event) {
	c.events = append(c.events, e)
}

func TestRunner_EmitsPairedStageEvents(t *testing.T) {
	capture := &captureObserver{}
	runner := pipeline.NewRunner(capture)

	_, err := runner.RevenueByNation(scenarioParams(), scenarioDataset())
	require.NoError(t, err)

	wantStages := []string{
		"filter_region",
		"join_nation_region",
		"join_customer_nation",
		"filter_orders_by_date",
		"join_customer_orders",
		"join_supplier_nation",
		"join_lineitem_orders",
		"join_lineitem_supplier",
		"project_revenue",
		"sum_by_nation",
		"order_by_revenue",
	}
	require.Len(t, capture.events, 2*len(wantStages))

	runID := capture.events[0].RunID
	require.NotEmpty(t, runID)
	for i, stage := range wantStages {
		start := capture.events[2*i]
		end := capture.events[2*i+1]

		assert.Equal(t, pipeline.EventStageStart, start.Type)
		assert.Equal(t, stage, start.Stage)
		assert.Equal(t, pipeline.EventStageEnd, end.Type)
		assert.Equal(t, stage, end.Stage)
		assert.Equal(t, runID, start.RunID)
		assert.Equal(t, runID, end.RunID)
		assert.False(t, end.Timestamp.IsZero())
	}

	// The region filter kept exactly the ASIA row.
	assert.Equal(t, 1, capture.events[1].Rows)
}

func TestRunner_RemoveObserver(t *testing.T) {
	capture := &captureObserver{}
	runner := pipeline.NewRunner()
	runner.AddObserver(capture)
	runner.RemoveObserver(capture)

	_, err := runner.RevenueByNation(scenarioParams(), scenarioDataset())

	require.NoError(t, err)
	assert.Empty(t, capture.events)
}
