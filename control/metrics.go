// File: control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Lightweight counter registry for container workloads: pushes, pops,
// evictions, reallocations. Counters are cheap enough to leave enabled in
// production paths.

package control

import "sync"

// MetricsRegistry accumulates named monotonic counters.
type MetricsRegistry struct {
	mu       sync.RWMutex
	counters map[string]uint64
}

// NewMetricsRegistry creates an empty counter registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{counters: make(map[string]uint64)}
}

// Inc adds one to the named counter.
func (m *MetricsRegistry) Inc(name string) { m.Add(name, 1) }

// Add adds delta to the named counter.
func (m *MetricsRegistry) Add(name string, delta uint64) {
	m.mu.Lock()
	m.counters[name] += delta
	m.mu.Unlock()
}

// Get returns the current value of the named counter.
func (m *MetricsRegistry) Get(name string) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.counters[name]
}

// Snapshot returns a copy of all counters.
func (m *MetricsRegistry) Snapshot() map[string]uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]uint64, len(m.counters))
	for name, v := range m.counters {
		out[name] = v
	}
	return out
}
