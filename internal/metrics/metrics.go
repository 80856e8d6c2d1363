// Package metrics holds the process-wide request counters backing the
// /stats endpoint. This is deliberately separate from the OpenTelemetry
// pipeline in internal/observability: it is the only shared mutable state in
// the service, a single struct behind one mutex, and it never sits on the
// scoring path.
package metrics

import (
	"math"
	"sync"
	"time"
)

// Recorder accumulates request, error and latency counters across all
// concurrent requests.
type Recorder struct {
	mu            sync.Mutex
	requestsTotal int64
	errorsTotal   int64
	latencySum    float64
	latencyCount  int64
	methodUsage   map[string]int64
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		methodUsage: make(map[string]int64),
	}
}

// IncRequest counts one incoming selection request for the given method.
func (r *Recorder) IncRequest(method string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requestsTotal++
	r.methodUsage[method]++
}

// IncError counts one failed selection request.
func (r *Recorder) IncError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errorsTotal++
}

// ObserveLatency records the wall-clock duration of one selection call.
func (r *Recorder) ObserveLatency(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latencySum += float64(d.Nanoseconds()) / 1e6
	r.latencyCount++
}

// Snapshot is a point-in-time copy of the counters for reporting.
type Snapshot struct {
	RequestsTotal int64            `json:"requests_total"`
	ErrorsTotal   int64            `json:"errors_total"`
	AvgLatencyMS  float64          `json:"avg_latency_ms"`
	MethodUsage   map[string]int64 `json:"method_usage"`
}

// Snapshot returns a consistent copy of the current counters. The average
// latency is rounded to 3 decimal places; it is 0 before the first request.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	avg := 0.0
	if r.latencyCount > 0 {
		avg = r.latencySum / float64(r.latencyCount)
	}

	usage := make(map[string]int64, len(r.methodUsage))
	for method, count := range r.methodUsage {
		usage[method] = count
	}

	return Snapshot{
		RequestsTotal: r.requestsTotal,
		ErrorsTotal:   r.errorsTotal,
		AvgLatencyMS:  math.Round(avg*1000) / 1000,
		MethodUsage:   usage,
	}
}
