package core_test

import (
	"testing"

	"github.com/katalvlaran/baynet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSliceStream_Cursor verifies the forward-cursor contract: rows in
// order, (nil, false) at end-of-stream, Reset repeatable after
// exhaustion.
func TestSliceStream_Cursor(t *testing.T) {
	r1 := core.Observation{"A": "t"}
	r2 := core.Observation{"A": "f"}
	s := core.NewSliceStream(r1, r2)

	n, known := s.Len()
	require.True(t, known, "slice streams always know their size")
	assert.Equal(t, 2, n)

	// Two full Reset+consume cycles, as the learner performs per variable.
	for cycle := 0; cycle < 2; cycle++ {
		s.Reset()
		got, ok := s.Next()
		require.True(t, ok, "cycle %d: first row", cycle)
		assert.Equal(t, r1, got)
		got, ok = s.Next()
		require.True(t, ok, "cycle %d: second row", cycle)
		assert.Equal(t, r2, got)
		got, ok = s.Next()
		assert.False(t, ok, "cycle %d: end-of-stream", cycle)
		assert.Nil(t, got)
		// A further Next after exhaustion stays exhausted.
		_, ok = s.Next()
		assert.False(t, ok)
	}
}

// TestObservation_Lookup covers partial rows and nil-map lookups.
func TestObservation_Lookup(t *testing.T) {
	o := core.NewObservation()
	o.Set("A", "t")

	v, ok := o.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, core.Value("t"), v)
	_, ok = o.Lookup("B")
	assert.False(t, ok, "unassigned variable must report not-present")
	assert.True(t, o.Has("A"))
	assert.False(t, o.Has("B"))

	var nilObs core.Observation
	_, ok = nilObs.Lookup("A")
	assert.False(t, ok, "nil observation has no values")

	dup := o.Clone()
	dup.Set("A", "f")
	assert.Equal(t, core.Value("t"), o["A"], "clone must not alias the original")
}
