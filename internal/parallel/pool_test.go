package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want GOMAXPROCS", n, pool.Workers())
		}
		pool.Close()
	}
}

func TestWorkerPool_Run(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	const numTasks = 500

	tasks := make([]Task, numTasks)
	for i := range tasks {
		tasks[i] = func(context.Context) error {
			counter.Add(1)
			return nil
		}
	}

	if err := pool.Run(context.Background(), tasks); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if counter.Load() != numTasks {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestWorkerPool_RunAllIndices(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	var mu sync.Mutex
	seen := make(map[int]bool)

	tasks := make([]Task, 37)
	for i := range tasks {
		tasks[i] = func(context.Context) error {
			mu.Lock()
			seen[i] = true
			mu.Unlock()
			return nil
		}
	}

	if err := pool.Run(context.Background(), tasks); err != nil {
		t.Fatal(err)
	}
	for i := range tasks {
		if !seen[i] {
			t.Errorf("task %d was not executed", i)
		}
	}
}

func TestWorkerPool_RunEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	if err := pool.Run(context.Background(), nil); err != nil {
		t.Errorf("Run(nil) = %v", err)
	}
}

func TestWorkerPool_RunFirstError(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	errBoom := errors.New("boom")
	tasks := make([]Task, 20)
	for i := range tasks {
		tasks[i] = func(context.Context) error {
			if i == 5 {
				return errBoom
			}
			return nil
		}
	}

	if err := pool.Run(context.Background(), tasks); !errors.Is(err, errBoom) {
		t.Errorf("Run() = %v, want %v", err, errBoom)
	}
}

func TestWorkerPool_RunCanceled(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int64
	tasks := make([]Task, 10)
	for i := range tasks {
		tasks[i] = func(context.Context) error {
			ran.Add(1)
			return nil
		}
	}

	if err := pool.Run(ctx, tasks); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
	if ran.Load() != 0 {
		t.Errorf("%d tasks ran after cancellation", ran.Load())
	}
}

func TestWorkerPool_Close(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not be running after Close")
	}
	err := pool.Run(context.Background(), []Task{func(context.Context) error { return nil }})
	if !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Run after Close = %v, want ErrPoolClosed", err)
	}
}
