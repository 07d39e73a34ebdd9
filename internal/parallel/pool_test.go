package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Tests
// =============================================================================

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

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	// Should not panic or block
	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
	pool.ExecuteAll([]func(){nil})
}

func TestWorkerPool_ExecuteAllAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool running after Close")
	}

	var ran atomic.Bool
	pool.ExecuteAll([]func(){func() { ran.Store(true) }})
	if !ran.Load() {
		t.Error("work on a closed pool did not run inline")
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()
}

// One slow item must not hold back the rest: idle workers steal from the
// slow worker's queue.
func TestWorkerPool_WorkStealing(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	var fast atomic.Int64
	work := make([]func(), 40)
	for i := range work {
		if i == 0 {
			work[i] = func() { time.Sleep(50 * time.Millisecond) }
			continue
		}
		work[i] = func() { fast.Add(1) }
	}

	pool.ExecuteAll(work)
	if fast.Load() != 39 {
		t.Errorf("fast items = %d, want 39", fast.Load())
	}
}

func TestWorkerPool_Concurrent(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var total atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work := make([]func(), 25)
			for i := range work {
				work[i] = func() { total.Add(1) }
			}
			pool.ExecuteAll(work)
		}()
	}
	wg.Wait()

	if total.Load() != 200 {
		t.Errorf("total = %d, want 200", total.Load())
	}
}

// =============================================================================
// Band Tests
// =============================================================================

func TestSplitRows(t *testing.T) {
	tests := []struct {
		height, n int
		want      []Band
	}{
		{0, 4, nil},
		{-3, 4, nil},
		{5, 1, []Band{{0, 5}}},
		{5, 0, []Band{{0, 5}}},
		{3, 8, []Band{{0, 1}, {1, 2}, {2, 3}}},
		{10, 3, []Band{{0, 4}, {4, 7}, {7, 10}}},
		{8, 4, []Band{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
	}
	for _, tt := range tests {
		got := SplitRows(tt.height, tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("SplitRows(%d, %d) = %v, want %v", tt.height, tt.n, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitRows(%d, %d) = %v, want %v", tt.height, tt.n, got, tt.want)
				break
			}
		}
	}
}

func TestSplitRowsCoversEveryRow(t *testing.T) {
	for height := 1; height < 50; height++ {
		for n := 1; n < 12; n++ {
			rows := 0
			next := 0
			for _, b := range SplitRows(height, n) {
				if b.Y0 != next || b.Rows() <= 0 {
					t.Fatalf("SplitRows(%d, %d): band %v after row %d", height, n, b, next)
				}
				next = b.Y1
				rows += b.Rows()
			}
			if rows != height {
				t.Fatalf("SplitRows(%d, %d) covers %d rows", height, n, rows)
			}
		}
	}
}

func TestForEachBand(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	for _, p := range []*WorkerPool{nil, pool} {
		marks := make([]int32, 100)
		err := ForEachBand(context.Background(), p, SplitRows(100, 7), func(b Band) {
			for y := b.Y0; y < b.Y1; y++ {
				atomic.AddInt32(&marks[y], 1)
			}
		})
		if err != nil {
			t.Fatal(err)
		}
		for y, m := range marks {
			if m != 1 {
				t.Fatalf("pool %v: row %d visited %d times", p != nil, y, m)
			}
		}
	}
}

func TestForEachBandCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewWorkerPool(2)
	defer pool.Close()

	for _, p := range []*WorkerPool{nil, pool} {
		var ran atomic.Int32
		err := ForEachBand(ctx, p, SplitRows(10, 5), func(Band) { ran.Add(1) })
		if err != context.Canceled {
			t.Errorf("err = %v, want context.Canceled", err)
		}
		if ran.Load() != 0 {
			t.Errorf("%d bands ran after cancellation", ran.Load())
		}
	}
}

func TestFor(t *testing.T) {
	for _, workers := range []int{1, 4} {
		seen := make([]int32, 256)
		For(256, workers, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, s := range seen {
			if s != 1 {
				t.Fatalf("workers %d: index %d visited %d times", workers, i, s)
			}
		}
	}

	called := false
	For(0, 4, func(int, int) { called = true })
	if called {
		t.Error("For(0) called fn")
	}
}

func BenchmarkForEachBand(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()
	bands := SplitRows(1024, pool.Workers()*4)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ForEachBand(context.Background(), pool, bands, func(Band) {})
	}
}
