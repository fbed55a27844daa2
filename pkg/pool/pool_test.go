package pool

import (
	"context"
	"sync/atomic"
	"testing"
)

func TestRunCoversAllIndexes(t *testing.T) {
	n := 100
	results := make([]int32, n)
	Run(context.Background(), 4, n, func(_ context.Context, i int) {
		atomic.AddInt32(&results[i], 1)
	})
	for i, r := range results {
		if r != 1 {
			t.Fatalf("index %d executed %d times", i, r)
		}
	}
}

func TestRunZeroTasks(t *testing.T) {
	Run(context.Background(), 4, 0, func(_ context.Context, _ int) {
		t.Fatal("task must not run")
	})
}

func TestRunClampsWorkers(t *testing.T) {
	var count int32
	Run(context.Background(), 0, 5, func(_ context.Context, _ int) {
		atomic.AddInt32(&count, 1)
	})
	if count != 5 {
		t.Fatalf("expected 5 executions, got %d", count)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var count int32
	Run(ctx, 1, 1000, func(_ context.Context, _ int) {
		if atomic.AddInt32(&count, 1) == 3 {
			cancel()
		}
	})
	if got := atomic.LoadInt32(&count); got >= 1000 {
		t.Fatalf("expected early stop, ran %d tasks", got)
	}
}
