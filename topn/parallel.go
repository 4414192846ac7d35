// Package topn: parallel execution of the row-range kernel.
//
// Rows of A are independent, so the kernel is embarrassingly parallel over
// contiguous row ranges: each worker runs the same kernel value over its own
// range into range-local buffers, and assemble concatenates the ranges in
// order. There is no shared mutable state, hence no locking.
package topn

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// runRanges partitions [0, rows) into one contiguous range per worker and
// executes the kernel over a goroutine pool. The caller guarantees
// 2 <= workers <= rows.
//
// Determinism: results are indexed by range position, so the merged output
// is identical to a sequential run regardless of completion order.
// Complexity: kernel work split across workers + O(workers) bookkeeping.
func runRanges(k *kernel, rows, workers int) ([]rangeResult, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("topn: worker pool: %w", err)
	}
	defer pool.Release()

	chunk := (rows + workers - 1) / workers // ceil division: even ranges
	results := make([]rangeResult, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo > rows {
			lo = rows // trailing workers get an empty range
		}
		hi := lo + chunk
		if hi > rows {
			hi = rows
		}
		idx := w

		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[idx] = k.run(lo, hi) // exclusive slot, no contention
		}
		if submitErr := pool.Submit(task); submitErr != nil {
			// Pool refused the task (e.g. released under memory pressure);
			// degrade to inline execution so the call still completes.
			task()
		}
	}
	wg.Wait()

	return results, nil
}
