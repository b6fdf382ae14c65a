// Package api
// Author: momentics
//
// Live debug and introspection support for container state.

package api

// Debug exposes runtime introspection API.
type Debug interface {
	// DumpState emits a snapshot of container state for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers new debug probes.
	RegisterProbe(name string, fn func() any)
}
