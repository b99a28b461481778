package storage

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// WriteResults serializes the final nation revenue mapping as delimited
// text: a header line, then one line per entry ordered by revenue
// descending, name ascending on equal revenue. Values print in fixed
// point with six decimals. The file lands via temp write plus rename so
// a failed run never leaves a half-written result behind.
func WriteResults(path string, results map[string]float64) error {
	type entry struct {
		name    string
		revenue float64
	}
	entries := make([]entry, 0, len(results))
	for name, revenue := range results {
		entries = append(entries, entry{name: name, revenue: revenue})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].revenue != entries[j].revenue {
			return entries[i].revenue > entries[j].revenue
		}
		return entries[i].name < entries[j].name
	})

	var b strings.Builder
	b.WriteString("N_NAME|REVENUE\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s|%f\n", e.name, e.revenue)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write temp result file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace result file %s: %w", path, err)
	}

	slog.Info("Results saved successfully",
		slog.String("path", path),
		slog.Int("entries", len(entries)),
	)
	return nil
}
