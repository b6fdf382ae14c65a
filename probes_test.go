// File: probes_test.go
// Author: momentics <momentics@gmail.com>

package circbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/circbuf/control"
)

func TestBufferProbes(t *testing.T) {
	b := fromSlice(t, 4, 1, 2, 3)
	d := control.NewDebugProbes()
	b.RegisterProbes("log", d)

	state := d.DumpState()
	assert.Equal(t, 3, state["log.size"])
	assert.Equal(t, 4, state["log.capacity"])
	assert.Equal(t, true, state["log.linearized"])

	b.PushBack(4)
	b.PushBack(5) // wraps
	state = d.DumpState()
	assert.Equal(t, 4, state["log.size"])
	assert.Equal(t, false, state["log.linearized"])
}

func TestAdaptiveProbes(t *testing.T) {
	a, err := NewAdaptive[int](CapacityControl{Capacity: 50, MinCapacity: 2})
	require.NoError(t, err)
	d := control.NewDebugProbes()
	a.RegisterProbes("stream", d)

	require.NoError(t, a.PushBack(1))
	state := d.DumpState()
	assert.Equal(t, 1, state["stream.size"])
	assert.Equal(t, 50, state["stream.capacity"])
	assert.Equal(t, 2, state["stream.allocated"])
	assert.Equal(t, 2, state["stream.min_capacity"])
}
