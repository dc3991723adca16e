package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunAll_AllSucceed(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{MaxConcurrent: 2}, zap.NewNop())

	items := make([]WorkItem[int], 5)
	for i := range items {
		i := i
		items[i] = WorkItem[int]{
			ID:      fmt.Sprintf("item-%d", i),
			Execute: func(ctx context.Context) (int, error) { return i * 2, nil },
		}
	}

	results := RunAll(context.Background(), pool, items, nil)
	require.Len(t, results, 5)

	byID := make(map[string]int)
	for _, r := range results {
		require.NoError(t, r.Err)
		byID[r.ID] = r.Result
	}
	assert.Equal(t, 6, byID["item-3"])
}

func TestRunAll_FailureDoesNotStopBatch(t *testing.T) {
	pool := NewWorkerPool(DefaultWorkerPoolConfig(), zap.NewNop())
	boom := errors.New("boom")

	items := []WorkItem[string]{
		{ID: "ok-1", Execute: func(ctx context.Context) (string, error) { return "a", nil }},
		{ID: "bad", Execute: func(ctx context.Context) (string, error) { return "", boom }},
		{ID: "ok-2", Execute: func(ctx context.Context) (string, error) { return "b", nil }},
	}

	results := RunAll(context.Background(), pool, items, nil)
	require.Len(t, results, 3)

	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
			assert.Equal(t, "bad", r.ID)
		}
	}
	assert.Equal(t, 1, failures)
}

func TestRunAll_RespectsConcurrencyLimit(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{MaxConcurrent: 2}, zap.NewNop())

	var inFlight, peak int64
	var mu sync.Mutex

	items := make([]WorkItem[struct{}], 8)
	for i := range items {
		items[i] = WorkItem[struct{}]{
			ID: fmt.Sprintf("item-%d", i),
			Execute: func(ctx context.Context) (struct{}, error) {
				n := atomic.AddInt64(&inFlight, 1)
				mu.Lock()
				if n > peak {
					peak = n
				}
				mu.Unlock()
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt64(&inFlight, -1)
				return struct{}{}, nil
			},
		}
	}

	RunAll(context.Background(), pool, items, nil)

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int64(2))
}

func TestRunAll_ProgressCallback(t *testing.T) {
	pool := NewWorkerPool(DefaultWorkerPoolConfig(), zap.NewNop())

	items := []WorkItem[int]{
		{ID: "a", Execute: func(ctx context.Context) (int, error) { return 1, nil }},
		{ID: "b", Execute: func(ctx context.Context) (int, error) { return 2, nil }},
	}

	var calls [][2]int
	RunAll(context.Background(), pool, items, func(completed, total int) {
		calls = append(calls, [2]int{completed, total})
	})

	require.Len(t, calls, 2)
	assert.Equal(t, [2]int{1, 2}, calls[0])
	assert.Equal(t, [2]int{2, 2}, calls[1])
}

func TestRunAll_CanceledContext(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{MaxConcurrent: 1}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := []WorkItem[int]{
		{ID: "a", Execute: func(ctx context.Context) (int, error) {
			return 1, ctx.Err()
		}},
	}

	results := RunAll(ctx, pool, items, nil)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestRunAll_Empty(t *testing.T) {
	pool := NewWorkerPool(DefaultWorkerPoolConfig(), zap.NewNop())
	assert.Nil(t, RunAll[int](context.Background(), pool, nil, nil))
}
