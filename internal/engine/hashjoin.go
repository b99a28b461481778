package engine

import (
	"log/slog"
	"sync"
)

// buildJoinIndex maps each value the column takes in t to the positions of
// the rows holding it, in table order. Rows without the column are not
// indexed.
func buildJoinIndex(t Table, column string) map[string][]int {
	index := make(map[string][]int)
	for i, row := range t {
		if v, ok := row[column]; ok {
			index[v] = append(index[v], i)
		}
	}
	return index
}

// HashJoin is the concurrent equality inner join, used where one side is
// large. The right table is indexed once on rightColumn, single threaded;
// the index is then shared read-only by every worker. The left table is
// split into contiguous chunks of ceil(len/workers) rows and each worker
// probes its own chunk, appending merged rows to a buffer only it touches,
// so the probe phase needs no locking. After all workers finish, buffers
// are concatenated in worker order, which makes the output order a pure
// function of the inputs and the worker count: chunk order, then left-row
// order within a chunk, then right-index order within a left row.
//
// Left rows missing leftColumn, or whose value is not in the index, emit
// nothing. A workers value below 1 is treated as 1.
func HashJoin(left, right Table, leftColumn, rightColumn string, workers int) Table {
	if workers < 1 {
		workers = 1
	}
	slog.Debug("Starting hash join",
		slog.String("left_column", leftColumn),
		slog.String("right_column", rightColumn),
		slog.Int("left_rows", len(left)),
		slog.Int("right_rows", len(right)),
		slog.Int("workers", workers))

	index := buildJoinIndex(right, rightColumn)

	chunkSize := (len(left) + workers - 1) / workers
	buffers := make([]Table, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start > len(left) {
			start = len(left)
		}
		end := start + chunkSize
		if end > len(left) {
			end = len(left)
		}
		wg.Add(1)
		go func(w int, chunk Table) {
			defer wg.Done()
			var local Table
			for _, lrow := range chunk {
				v, ok := lrow[leftColumn]
				if !ok {
					continue
				}
				for _, ri := range index[v] {
					local = append(local, mergeRows(lrow, right[ri]))
				}
			}
			buffers[w] = local
		}(w, left[start:end])
	}
	wg.Wait()

	var result Table
	for _, buf := range buffers {
		result = append(result, buf...)
	}

	slog.Info("Hash join completed",
		slog.String("left_column", leftColumn),
		slog.String("right_column", rightColumn),
		slog.Int("result_rows", len(result)),
		slog.Int("workers", workers))
	return result
}
