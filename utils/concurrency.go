package utils

import (
	"context"
	"sync"

	"github.com/CPU-commits/Intranet_BLearning/res"
	"golang.org/x/sync/semaphore"
)

// Concurrency runs do for every index with at most semWeight goroutines at
// once. The first error reported through setError stops new work and is
// returned once the running goroutines finish.
func Concurrency(
	ctx context.Context,
	semWeight int64,
	count int,
	do func(ctx context.Context, index int, setError func(errRes *res.ErrorRes)),
) *res.ErrorRes {
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr *res.ErrorRes

	sem := semaphore.NewWeighted(semWeight)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	setError := func(errRes *res.ErrorRes) {
		once.Do(func() {
			firstErr = errRes
			cancel()
		})
	}

	for i := 0; i < count; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Cancelled by setError or by the caller
			break
		}
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			defer sem.Release(1)

			do(ctx, index, setError)
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	if err := ctx.Err(); err != nil && err != context.Canceled {
		return res.Unavailable(err)
	}
	return nil
}
