package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/leengari/relq/internal/config"
	"github.com/leengari/relq/internal/logging"
	"github.com/leengari/relq/internal/pipeline"
	"github.com/leengari/relq/internal/storage"
)

func main() {
	var cfg config.Config
	flag.StringVar(&cfg.Region, "r_name", "", "Region name to select, e.g. ASIA")
	flag.StringVar(&cfg.StartDate, "start_date", "", "Inclusive order date lower bound (YYYY-MM-DD)")
	flag.StringVar(&cfg.EndDate, "end_date", "", "Exclusive order date upper bound (YYYY-MM-DD)")
	flag.IntVar(&cfg.Threads, "threads", 0, "Worker count for the hash joins")
	flag.StringVar(&cfg.TablePath, "table_path", "", "Directory holding the source .tbl files")
	flag.StringVar(&cfg.ResultPath, "result_path", "", "Destination file for the result")
	flag.Parse()

	logger, closeFn := logging.SetupLogger()
	defer closeFn()
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		fatal(closeFn, "invalid configuration", err)
	}

	ds, err := storage.LoadDataset(cfg.TablePath)
	if err != nil {
		fatal(closeFn, "failed to load tables", err)
	}

	start := time.Now()
	runner := pipeline.NewRunner(pipeline.NewLoggingObserver())
	results, err := runner.RevenueByNation(pipeline.Params{
		Region:    cfg.Region,
		StartDate: cfg.StartDate,
		EndDate:   cfg.EndDate,
		Workers:   cfg.Threads,
	}, ds)
	if err != nil {
		fatal(closeFn, "query failed", err)
	}

	if err := storage.WriteResults(cfg.ResultPath, results); err != nil {
		fatal(closeFn, "failed to write results", err)
	}

	color.New(color.FgGreen).Printf("Query 5 completed in %s: %d nations, results in %s\n",
		time.Since(start).Round(time.Millisecond), len(results), cfg.ResultPath)
}

// fatal reports the failure and exits. os.Exit skips deferred calls, so
// the logger is flushed here explicitly.
func fatal(closeFn func(), msg string, err error) {
	slog.Error(msg, "error", err)
	closeFn()
	color.New(color.FgRed).Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
