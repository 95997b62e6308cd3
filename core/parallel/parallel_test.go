package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelizeCoversAllItems(t *testing.T) {
	tests := []struct {
		name  string
		items int
	}{
		{name: "zero items", items: 0},
		{name: "single item", items: 1},
		{name: "fewer items than cores", items: 3},
		{name: "many items", items: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var count int64
			Parallelize(tt.items, func(start, end int) {
				atomic.AddInt64(&count, int64(end-start))
			})
			if count != int64(tt.items) {
				t.Errorf("processed %d items, want %d", count, tt.items)
			}
		})
	}
}

func TestParallelizeWorkersEachIndexOnce(t *testing.T) {
	const items = 1000
	seen := make([]int64, items)

	ParallelizeWorkers(items, 4, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt64(&seen[i], 1)
		}
	})

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d processed %d times, want exactly once", i, c)
		}
	}
}

func TestParallelizeWorkersSequentialFallback(t *testing.T) {
	// workers == 1 must run the whole range in a single call
	calls := 0
	ParallelizeWorkers(100, 1, func(start, end int) {
		calls++
		if start != 0 || end != 100 {
			t.Errorf("sequential call got range [%d, %d), want [0, 100)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("sequential execution made %d calls, want 1", calls)
	}
}

func TestParallelizeWithThreshold(t *testing.T) {
	// Below threshold: single sequential call
	calls := 0
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		calls++
	})
	if calls != 1 {
		t.Errorf("below-threshold execution made %d calls, want 1", calls)
	}

	// Above threshold: all items still covered exactly once
	var count int64
	ParallelizeWithThreshold(1000, 100, func(start, end int) {
		atomic.AddInt64(&count, int64(end-start))
	})
	if count != 1000 {
		t.Errorf("processed %d items, want 1000", count)
	}
}
