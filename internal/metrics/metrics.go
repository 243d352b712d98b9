// Package metrics provides metrics collection and reporting for selector
// generation.
package metrics

import (
	"sync"
	"time"
)

// Metrics holds the generation metrics.
type Metrics struct {
	// GeneratedCount is the number of selectors generated.
	GeneratedCount int64
	// DegenerateCount is the number of best-effort, non-unique results.
	DegenerateCount int64
	// FailedCount is the number of failed generation requests.
	FailedCount int64
	// TotalDuration is the total time spent generating.
	TotalDuration time.Duration
	// StartTime is when the metrics collection began.
	StartTime time.Time
	// mu protects concurrent access to metrics.
	mu sync.Mutex
}

// New creates a new Metrics instance.
func New() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// RecordGeneration records one generation outcome.
func (m *Metrics) RecordGeneration(duration time.Duration, degenerate bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GeneratedCount++
	m.TotalDuration += duration
	if degenerate {
		m.DegenerateCount++
	}
}

// RecordFailure records a failed generation request.
func (m *Metrics) RecordFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FailedCount++
}

// Snapshot is a point-in-time copy of the metrics, safe to serialize.
type Snapshot struct {
	GeneratedCount  int64         `json:"generated_count"`
	DegenerateCount int64         `json:"degenerate_count"`
	FailedCount     int64         `json:"failed_count"`
	TotalDuration   time.Duration `json:"total_duration"`
	Uptime          time.Duration `json:"uptime"`
}

// Snapshot returns a consistent copy of the current metrics.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		GeneratedCount:  m.GeneratedCount,
		DegenerateCount: m.DegenerateCount,
		FailedCount:     m.FailedCount,
		TotalDuration:   m.TotalDuration,
		Uptime:          time.Since(m.StartTime),
	}
}
