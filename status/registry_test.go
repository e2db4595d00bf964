package status

import (
	"strings"
	"sync"
	"testing"
)

func TestMetricMapGetCaches(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(Hits)
	b := r.Ints.Get(Hits)
	if a != b {
		t.Error("Expected Get to return the cached pointer")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
	if !r.Ints.Has(Hits) || r.Ints.Has(Misses) {
		t.Error("Has reports wrong membership")
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Ints.Get(DropTicks).Add(1)
			}
		}()
	}
	wg.Wait()
	if got := r.Ints.Get(DropTicks).Load(); got != 1600 {
		t.Errorf("Expected 1600, got %d", got)
	}
	if r.Ints.Count() != 1 {
		t.Errorf("Expected a single metric, got %d", r.Ints.Count())
	}
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Error("Zero value should read 0")
	}
	f.Set(0.75)
	if f.Get() != 0.75 {
		t.Errorf("Expected 0.75, got %v", f.Get())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Zero value should read empty")
	}
	s.Store(strings.Repeat("x", MaxStringLen+5))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(s.Load()))
	}
}

func TestSummaryOrder(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(Misses).Store(2)
	r.Ints.Get(Hits).Store(5)
	r.Floats.Get(Accuracy).Set(0.5)
	r.Strings.Get(State).Store("playing")

	got := r.Summary()
	want := "input.hits=5 input.misses=2 input.accuracy=0.50 state=playing"
	if got != want {
		t.Errorf("Summary:\n got %q\nwant %q", got, want)
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.TotalCount())
	}
}
