package llm

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// WorkerPoolConfig configures bounded parallelism for batch generation.
type WorkerPoolConfig struct {
	MaxConcurrent int // maximum in-flight provider calls (default 4)
}

// DefaultWorkerPoolConfig returns sensible defaults. Image batches are
// provider-rate-limit bound, so the default stays modest.
func DefaultWorkerPoolConfig() WorkerPoolConfig {
	return WorkerPoolConfig{MaxConcurrent: 4}
}

// WorkerPool limits concurrent provider calls with a semaphore. Each image
// in a batch runs independently; results stream out in completion order.
type WorkerPool struct {
	config WorkerPoolConfig
	logger *zap.Logger
}

// NewWorkerPool creates a worker pool.
func NewWorkerPool(config WorkerPoolConfig, logger *zap.Logger) *WorkerPool {
	if config.MaxConcurrent < 1 {
		config.MaxConcurrent = 4
	}
	return &WorkerPool{
		config: config,
		logger: logger.Named("worker-pool"),
	}
}

// WorkItem is one unit of batch work.
type WorkItem[T any] struct {
	ID      string // for logging and result correlation
	Execute func(ctx context.Context) (T, error)
}

// WorkResult pairs a work item's ID with its outcome.
type WorkResult[T any] struct {
	ID     string
	Result T
	Err    error
}

// RunAll executes all items with bounded parallelism and returns results in
// completion order. Individual failures do not stop the batch.
func RunAll[T any](
	ctx context.Context,
	pool *WorkerPool,
	items []WorkItem[T],
	onProgress func(completed, total int),
) []WorkResult[T] {
	if len(items) == 0 {
		return nil
	}

	resultsChan := make(chan WorkResult[T], len(items))
	sem := make(chan struct{}, pool.config.MaxConcurrent)

	var wg sync.WaitGroup
	for _, item := range items {
		wg.Add(1)
		go func(item WorkItem[T]) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				var zero T
				resultsChan <- WorkResult[T]{ID: item.ID, Result: zero, Err: ctx.Err()}
				return
			}

			result, err := item.Execute(ctx)
			resultsChan <- WorkResult[T]{ID: item.ID, Result: result, Err: err}
		}(item)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	results := make([]WorkResult[T], 0, len(items))
	completed := 0
	for result := range resultsChan {
		results = append(results, result)
		completed++
		if result.Err != nil {
			pool.logger.Warn("work item failed",
				zap.String("id", result.ID),
				zap.Error(result.Err))
		}
		if onProgress != nil {
			onProgress(completed, len(items))
		}
	}

	return results
}
