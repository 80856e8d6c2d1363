package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestRecorderCounters(t *testing.T) {
	r := NewRecorder()

	r.IncRequest("baseline")
	r.IncRequest("baseline")
	r.IncRequest("embeddings")
	r.IncError()
	r.ObserveLatency(2 * time.Millisecond)
	r.ObserveLatency(4 * time.Millisecond)

	snap := r.Snapshot()
	if snap.RequestsTotal != 3 {
		t.Errorf("Expected 3 requests, got %d", snap.RequestsTotal)
	}
	if snap.ErrorsTotal != 1 {
		t.Errorf("Expected 1 error, got %d", snap.ErrorsTotal)
	}
	if snap.AvgLatencyMS != 3.0 {
		t.Errorf("Expected average latency 3.0ms, got %v", snap.AvgLatencyMS)
	}
	if snap.MethodUsage["baseline"] != 2 {
		t.Errorf("Expected 2 baseline requests, got %d", snap.MethodUsage["baseline"])
	}
	if snap.MethodUsage["embeddings"] != 1 {
		t.Errorf("Expected 1 embeddings request, got %d", snap.MethodUsage["embeddings"])
	}
}

func TestRecorderEmptySnapshot(t *testing.T) {
	snap := NewRecorder().Snapshot()
	if snap.RequestsTotal != 0 || snap.ErrorsTotal != 0 {
		t.Errorf("Expected zero counters, got %+v", snap)
	}
	if snap.AvgLatencyMS != 0 {
		t.Errorf("Expected zero latency before first request, got %v", snap.AvgLatencyMS)
	}
	if len(snap.MethodUsage) != 0 {
		t.Errorf("Expected empty method usage, got %v", snap.MethodUsage)
	}
}

func TestRecorderSnapshotIsolation(t *testing.T) {
	r := NewRecorder()
	r.IncRequest("baseline")

	snap := r.Snapshot()
	snap.MethodUsage["baseline"] = 99

	if r.Snapshot().MethodUsage["baseline"] != 1 {
		t.Error("Mutating a snapshot must not affect the recorder")
	}
}

func TestRecorderConcurrentUpdates(t *testing.T) {
	r := NewRecorder()

	const goroutines = 16
	const perGoroutine = 100

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perGoroutine {
				r.IncRequest("baseline")
				r.IncError()
				r.ObserveLatency(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	snap := r.Snapshot()
	want := int64(goroutines * perGoroutine)
	if snap.RequestsTotal != want {
		t.Errorf("Expected %d requests, got %d", want, snap.RequestsTotal)
	}
	if snap.ErrorsTotal != want {
		t.Errorf("Expected %d errors, got %d", want, snap.ErrorsTotal)
	}
	if snap.MethodUsage["baseline"] != want {
		t.Errorf("Expected %d baseline requests, got %d", want, snap.MethodUsage["baseline"])
	}
}
