// File: control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime introspection hub. Containers register probe closures; operators
// pull a consistent snapshot through DumpState without stopping traffic.

package control

import (
	"sync"

	"github.com/momentics/circbuf/api"
)

// DebugProbes collects named probe closures for live state inspection.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

var _ api.Debug = (*DebugProbes)(nil)

// NewDebugProbes creates an empty probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{probes: make(map[string]func() any)}
}

// RegisterProbe installs or replaces a named probe.
func (d *DebugProbes) RegisterProbe(name string, fn func() any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.probes[name] = fn
}

// DumpState evaluates every probe and returns the combined snapshot.
func (d *DebugProbes) DumpState() map[string]any {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]any, len(d.probes))
	for name, fn := range d.probes {
		out[name] = fn()
	}
	return out
}
