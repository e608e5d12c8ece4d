// Package parallel provides the CPU-chunked loop helper used to spread
// independent evaluation cells across cores.
package parallel

import (
	"runtime"
	"sync"
)

// For splits items across up to NumCPU workers and calls fn with the
// half-open range each worker owns. It returns when every range is done.
func For(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}

	// Ceiling division so the last chunk is never dropped.
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
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

// ForN is For with an explicit worker cap. workers <= 0 means NumCPU;
// workers == 1 runs sequentially on the calling goroutine, which keeps
// small problems and tests free of scheduling noise.
func ForN(items, workers int, fn func(start, end int)) {
	if items == 0 {
		return
	}
	if workers <= 0 || workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}
	if workers == 1 {
		fn(0, items)
		return
	}
	if workers > items {
		workers = items
	}

	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
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
