package pool

import (
	"context"
	"sync"
)

// Run executes n tasks across at most workers goroutines and blocks until
// every started task returns. Tasks receive their index, so callers can
// write results into a pre-sized slice without locking. When ctx is
// cancelled, unstarted tasks are skipped; running ones are expected to
// honor ctx themselves.
func Run(ctx context.Context, workers, n int, task func(ctx context.Context, i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				task(ctx, i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			close(indexes)
			wg.Wait()
			return
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()
}
