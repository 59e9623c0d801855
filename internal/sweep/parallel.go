package sweep

import (
	"context"
	"runtime"
	"sync"
)

const minChunk = 8

// ParallelFor runs fn over [0, n) in contiguous chunks. Chunks never
// overlap, so fn may write index i of a shared slice without locking.
func ParallelFor(ctx context.Context, n, chunk int, fn func(start, end int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if chunk < 1 {
		chunk = 1
	}
	if n <= chunk || numWorkers <= 1 {
		fn(0, n)
		return nil
	}

	workers := numWorkers
	if n/chunk < workers {
		workers = n / chunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
	return ctx.Err()
}
