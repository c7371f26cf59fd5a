package wordcount

import (
	"reflect"
	"sync"
	"testing"
)

func TestAccumulatorMerge(t *testing.T) {
	acc := NewAccumulator()
	acc.Merge(map[string]int{"cat": 2, "dog": 1})
	acc.Merge(map[string]int{"cat": 1, "bird": 1})

	want := []Entry{{Word: "bird", Count: 1}, {Word: "cat", Count: 3}, {Word: "dog", Count: 1}}
	if got := acc.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}

	if got := acc.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestAccumulatorEmpty(t *testing.T) {
	acc := NewAccumulator()

	if got := acc.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	if got := acc.Snapshot(); len(got) != 0 {
		t.Errorf("Snapshot() = %v, want empty", got)
	}
}

func TestAccumulatorSnapshotIsLexical(t *testing.T) {
	acc := NewAccumulator()
	acc.Merge(map[string]int{"zebra": 1, "ant": 1, "moth": 1})

	got := acc.Snapshot()
	want := []Entry{{Word: "ant", Count: 1}, {Word: "moth", Count: 1}, {Word: "zebra", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}
}

func TestAccumulatorConcurrentMerges(t *testing.T) {
	const goroutines = 50

	acc := NewAccumulator()
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc.Merge(map[string]int{"cat": 1, "dog": 2})
		}()
	}
	wg.Wait()

	want := []Entry{{Word: "cat", Count: goroutines}, {Word: "dog", Count: 2 * goroutines}}
	if got := acc.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() after concurrent merges = %v, want %v", got, want)
	}
}
