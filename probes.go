// File: probes.go
// Author: momentics <momentics@gmail.com>
//
// Probe wiring for the control plane.

package circbuf

import "github.com/momentics/circbuf/api"

// RegisterProbes exposes buffer state through a debug registry under the
// given name prefix.
func (b *Buffer[T]) RegisterProbes(prefix string, d api.Debug) {
	d.RegisterProbe(prefix+".size", func() any { return b.Len() })
	d.RegisterProbe(prefix+".capacity", func() any { return b.Cap() })
	d.RegisterProbe(prefix+".linearized", func() any { return b.IsLinearized() })
	d.RegisterProbe(prefix+".debug_build", func() any { return debugEnabled })
}

// RegisterProbes exposes adaptor state, including the floating allocation.
func (a *Adaptive[T]) RegisterProbes(prefix string, d api.Debug) {
	d.RegisterProbe(prefix+".size", func() any { return a.Len() })
	d.RegisterProbe(prefix+".capacity", func() any { return a.Cap() })
	d.RegisterProbe(prefix+".allocated", func() any { return a.InternalCapacity() })
	d.RegisterProbe(prefix+".min_capacity", func() any { return a.ctrl.MinCapacity })
}
