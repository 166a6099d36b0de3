// Package parallel provides chunked row parallelism for batch matrix
// operations.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits items across the available CPU cores and runs fn on
// each contiguous range [start, end). fn must only write to rows inside its
// range; ranges are disjoint.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so every item is covered.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn in parallel only when items exceeds
// threshold; small batches run sequentially to avoid goroutine overhead.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}
