// Package pipeline composes the engine's operators into the fixed
// five-table revenue query: total revenue per nation, for customers and
// suppliers of one region, over one order date range. Ingestion and
// result serialization stay outside; the pipeline only transforms tables
// it is handed.
package pipeline

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/relq/internal/engine"
)

// Params carries the query parameters. The caller validates them before
// the pipeline runs; in particular Workers is at least 1 by the time it
// reaches the hash joins.
type Params struct {
	Region    string // exact R_NAME to select
	StartDate string // inclusive lower bound on O_ORDERDATE, YYYY-MM-DD
	EndDate   string // exclusive upper bound on O_ORDERDATE, YYYY-MM-DD
	Workers   int    // probe workers for the hash joins
}

// Dataset holds the six source tables the query consumes.
type Dataset struct {
	Customer engine.Table
	Orders   engine.Table
	Lineitem engine.Table
	Supplier engine.Table
	Nation   engine.Table
	Region   engine.Table
}

// Runner executes the revenue query and reports stage lifecycle events
// to its observers.
type Runner struct {
	observers []Observer
}

// NewRunner creates a Runner reporting to the given observers.
func NewRunner(observers ...Observer) *Runner {
	return &Runner{observers: observers}
}

// AddObserver registers an observer to receive lifecycle events
func (r *Runner) AddObserver(observer Observer) {
	r.observers = append(r.observers, observer)
}

// RemoveObserver unregisters an observer
func (r *Runner) RemoveObserver(observer Observer) {
	for i, o := range r.observers {
		if o == observer {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (r *Runner) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range r.observers {
		observer.OnEvent(event)
	}
}

// stage wraps one table-producing step in start/end events.
func (r *Runner) stage(runID, name string, fn func() engine.Table) engine.Table {
	r.notify(Event{Type: EventStageStart, RunID: runID, Stage: name})
	t := fn()
	r.notify(Event{Type: EventStageEnd, RunID: runID, Stage: name, Rows: len(t)})
	return t
}

// stageErr is stage for steps that can fail. A failed stage emits no end
// event.
func (r *Runner) stageErr(runID, name string, fn func() (engine.Table, error)) (engine.Table, error) {
	r.notify(Event{Type: EventStageStart, RunID: runID, Stage: name})
	t, err := fn()
	if err != nil {
		return nil, err
	}
	r.notify(Event{Type: EventStageEnd, RunID: runID, Stage: name, Rows: len(t)})
	return t, nil
}

// RevenueByNation computes revenue per nation name for the region and
// date range in p. Each lineitem surviving the join chain contributes
// L_EXTENDEDPRICE * (1 - L_DISCOUNT) to its nation's total. The result
// maps N_NAME to that total.
//
// A region value matching no row is a hard error (see EmptyMatchError).
// A date range matching no orders is not: the dimension filter still
// matched, the query just has an empty answer.
func (r *Runner) RevenueByNation(p Params, ds Dataset) (map[string]float64, error) {
	runID := uuid.New().String()
	slog.Info("Starting revenue query",
		slog.String("run_id", runID),
		slog.String("region", p.Region),
		slog.String("start_date", p.StartDate),
		slog.String("end_date", p.EndDate),
		slog.Int("workers", p.Workers),
	)

	// 1. Select the region
	regions := r.stage(runID, "filter_region", func() engine.Table {
		return engine.Filter(ds.Region, engine.Equals("R_NAME", p.Region))
	})
	if len(regions) == 0 {
		return nil, NewEmptyMatch("region", "R_NAME", p.Region)
	}

	// 2. Join chain. The small dimension joins run nested loop; every
	// join touching customer, orders or lineitem goes through the
	// concurrent hash join.
	nationRegion := r.stage(runID, "join_nation_region", func() engine.Table {
		return engine.InnerJoin(ds.Nation, regions,
			engine.JoinOn("N_REGIONKEY", "R_REGIONKEY"))
	})

	customerNation := r.stage(runID, "join_customer_nation", func() engine.Table {
		return engine.HashJoin(ds.Customer, nationRegion,
			"C_NATIONKEY", "N_NATIONKEY", p.Workers)
	})

	orders := r.stage(runID, "filter_orders_by_date", func() engine.Table {
		return engine.FilterAnd(ds.Orders,
			engine.GreaterEqual("O_ORDERDATE", p.StartDate),
			engine.LessThan("O_ORDERDATE", p.EndDate))
	})

	customerOrders := r.stage(runID, "join_customer_orders", func() engine.Table {
		return engine.HashJoin(customerNation, orders,
			"C_CUSTKEY", "O_CUSTKEY", p.Workers)
	})

	supplierNation := r.stage(runID, "join_supplier_nation", func() engine.Table {
		return engine.InnerJoin(ds.Supplier, nationRegion,
			engine.JoinOn("S_NATIONKEY", "N_NATIONKEY"))
	})

	lineitemOrders := r.stage(runID, "join_lineitem_orders", func() engine.Table {
		return engine.HashJoin(ds.Lineitem, customerOrders,
			"L_ORDERKEY", "O_ORDERKEY", p.Workers)
	})

	// The supplier condition is composite: equi-join on the supplier
	// key, then keep only rows whose customer and supplier nations
	// agree. The merged row's N_NAME comes from the supplier side, which
	// the agreement filter makes the customer's nation too.
	full := r.stage(runID, "join_lineitem_supplier", func() engine.Table {
		joined := engine.HashJoin(lineitemOrders, supplierNation,
			"L_SUPPKEY", "S_SUPPKEY", p.Workers)
		return engine.Filter(joined, sameNation)
	})

	// 3. Derive revenue, then group and sum it per nation
	revenue, err := r.stageErr(runID, "project_revenue", func() (engine.Table, error) {
		return revenueRows(full)
	})
	if err != nil {
		return nil, err
	}

	aggregated, err := r.stageErr(runID, "sum_by_nation", func() (engine.Table, error) {
		groups := engine.GroupBy(revenue, "N_NAME")
		return engine.Aggregate(groups, "N_NAME", map[string]engine.AggFunc{
			"REVENUE": engine.SumOf("REVENUE"),
		})
	})
	if err != nil {
		return nil, err
	}

	sorted, err := r.stageErr(runID, "order_by_revenue", func() (engine.Table, error) {
		return engine.OrderByNumeric(aggregated, "REVENUE", engine.Descending)
	})
	if err != nil {
		return nil, err
	}

	results := make(map[string]float64, len(sorted))
	for _, row := range sorted {
		v, err := row.Float("REVENUE")
		if err != nil {
			return nil, err
		}
		results[row["N_NAME"]] = v
	}

	slog.Info("Revenue query completed",
		slog.String("run_id", runID),
		slog.Int("nations", len(results)),
	)
	return results, nil
}

// sameNation keeps rows whose customer and supplier nation keys agree.
// Either key missing drops the row.
func sameNation(row engine.Row) bool {
	c, ok := row["C_NATIONKEY"]
	if !ok {
		return false
	}
	s, ok := row["S_NATIONKEY"]
	return ok && c == s
}

// revenueRows projects each fully joined row down to its nation name and
// a derived REVENUE field, L_EXTENDEDPRICE * (1 - L_DISCOUNT). A row
// whose price or discount does not parse fails the whole projection.
func revenueRows(t engine.Table) (engine.Table, error) {
	result := make(engine.Table, 0, len(t))
	for _, row := range t {
		price, err := row.Float("L_EXTENDEDPRICE")
		if err != nil {
			return nil, err
		}
		discount, err := row.Float("L_DISCOUNT")
		if err != nil {
			return nil, err
		}
		result = append(result, engine.Row{
			"N_NAME":  row["N_NAME"],
			"REVENUE": strconv.FormatFloat(price*(1-discount), 'f', -1, 64),
		})
	}
	return result, nil
}
