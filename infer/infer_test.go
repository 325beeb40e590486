package infer_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/baynet/core"
	"github.com/katalvlaran/baynet/infer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rainWet builds Rain→Wet with exact hand-built CPTs:
// P(Rain=yes)=0.3; P(Wet=yes|Rain=yes)=0.9; P(Wet=yes|Rain=no)=0.2.
// Exact posterior: P(Rain=yes|Wet=yes) = 0.27/0.41 ≈ 0.6585.
func rainWet(t *testing.T) *core.Network {
	t.Helper()
	net := core.NewNetwork()
	rain := core.NewVariable("Rain", "yes", "no")
	wet := core.NewVariable("Wet", "yes", "no")
	require.NoError(t, net.AddVariable(rain))
	require.NoError(t, net.AddVariable(wet))
	require.NoError(t, net.AddEdge("Rain", "Wet"))

	set := func(d *core.Distribution, v string, m float64) {
		require.NoError(t, d.Set(core.Value(v), m))
	}
	rainCPT := core.NewCPT()
	prior := core.NewDistribution()
	set(prior, "yes", 0.3)
	set(prior, "no", 0.7)
	rainCPT.Put(nil, prior)
	rain.SetCPT(rainCPT)

	wetCPT := core.NewCPT()
	onYes := core.NewDistribution()
	set(onYes, "yes", 0.9)
	set(onYes, "no", 0.1)
	wetCPT.Put([]core.Value{"yes"}, onYes)
	onNo := core.NewDistribution()
	set(onNo, "yes", 0.2)
	set(onNo, "no", 0.8)
	wetCPT.Put([]core.Value{"no"}, onNo)
	wet.SetCPT(wetCPT)

	return net
}

// TestNew_Validation covers the construction sentinels.
func TestNew_Validation(t *testing.T) {
	if _, err := infer.New(nil, nil, infer.WithSeed(1)); !errors.Is(err, infer.ErrNilNetwork) {
		t.Errorf("nil network: want ErrNilNetwork, got %v", err)
	}
	if _, err := infer.New(core.NewNetwork(), nil, infer.WithSeed(1)); !errors.Is(err, infer.ErrEmptyNetwork) {
		t.Errorf("empty network: want ErrEmptyNetwork, got %v", err)
	}
	if _, err := infer.New(rainWet(t), nil); !errors.Is(err, infer.ErrNeedRandSource) {
		t.Errorf("no rng: want ErrNeedRandSource, got %v", err)
	}
}

// TestRefine_WarmUpGating: with warmUp=100, exactly 100 particles total
// report RefinementCount 0; 150 report 50.
func TestRefine_WarmUpGating(t *testing.T) {
	q, err := infer.New(rainWet(t), core.Observation{"Wet": "yes"},
		infer.WithSeed(7), infer.WithWarmUp(100))
	require.NoError(t, err)

	assert.Equal(t, infer.Empty, q.State())
	assert.Zero(t, q.RefinementCount())

	// First refinement seeds one ancestral particle, then 99 transitions.
	require.NoError(t, q.RefineResults(99))
	assert.Equal(t, 100, q.Particles())
	assert.Zero(t, q.RefinementCount(), "100 particles with warmUp=100 must gate at 0")
	assert.Equal(t, infer.Warming, q.State())

	require.NoError(t, q.RefineResults(50))
	assert.Equal(t, 150, q.Particles())
	assert.Equal(t, 50, q.RefinementCount())
	assert.Equal(t, infer.Converging, q.State())
}

// TestRefine_Errors: negative batch is rejected, zero is a pure
// recompute (plus the initial seed).
func TestRefine_Errors(t *testing.T) {
	q, err := infer.New(rainWet(t), nil, infer.WithSeed(3))
	require.NoError(t, err)

	assert.ErrorIs(t, q.RefineResults(-1), infer.ErrBadSteps)
	require.NoError(t, q.RefineResults(0))
	assert.Equal(t, 1, q.Particles(), "zero steps on an empty query still seeds the chain")
}

// TestRefine_PosteriorMass: property 6 — beyond warm-up, every posterior
// sums to 1 within 1e-6 and the Rain frequency matches the exact
// posterior within 0.05 over 5000 post-warm-up particles.
func TestRefine_PosteriorMass(t *testing.T) {
	const (
		warmUp = 100
		total  = warmUp + 5000
	)
	q, err := infer.New(rainWet(t), core.Observation{"Wet": "yes"},
		infer.WithSeed(41), infer.WithWarmUp(warmUp))
	require.NoError(t, err)

	// Refine in modest batches, as a latency-conscious host would.
	for q.Particles() < total {
		require.NoError(t, q.RefineResults(500))
	}
	require.Equal(t, q.Particles()-warmUp, q.RefinementCount())

	for _, name := range []string{"Rain", "Wet"} {
		d, ok := q.Posterior(name)
		require.True(t, ok, "posterior for %s", name)
		assert.InDelta(t, 1.0, d.Sum(), 1e-6, "%s posterior must sum to 1", name)
	}

	rain, _ := q.Posterior("Rain")
	assert.InDelta(t, 0.27/0.41, rain.Mass("yes"), 0.05)
	wet, _ := q.Posterior("Wet")
	assert.InDelta(t, 1.0, wet.Mass("yes"), 1e-9, "evidence variable is pinned")
}

// TestRefine_PriorWithoutEvidence: with empty evidence the chain tracks
// the prior marginals.
func TestRefine_PriorWithoutEvidence(t *testing.T) {
	q, err := infer.New(rainWet(t), nil, infer.WithSeed(13), infer.WithWarmUp(100))
	require.NoError(t, err)
	require.NoError(t, q.RefineResults(5100))

	rain, ok := q.Posterior("Rain")
	require.True(t, ok)
	assert.InDelta(t, 0.3, rain.Mass("yes"), 0.05)
	// P(Wet=yes) = 0.3·0.9 + 0.7·0.2 = 0.41 marginally.
	wet, ok := q.Posterior("Wet")
	require.True(t, ok)
	assert.InDelta(t, 0.41, wet.Mass("yes"), 0.05)
}

// TestWarmUpAccessors covers WarmUp/SetWarmUp and its validation.
func TestWarmUpAccessors(t *testing.T) {
	q, err := infer.New(rainWet(t), nil, infer.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, infer.DefaultWarmUp, q.WarmUp())

	require.NoError(t, q.SetWarmUp(10))
	assert.Equal(t, 10, q.WarmUp())
	assert.ErrorIs(t, q.SetWarmUp(-1), infer.ErrBadWarmUp)
}

// TestOnce_Unsupported: the one-shot weighted query fails with the
// tagged sentinel rather than returning any value.
func TestOnce_Unsupported(t *testing.T) {
	q, err := infer.New(rainWet(t), nil, infer.WithSeed(1))
	require.NoError(t, err)

	p, w, err := q.Once()
	require.Error(t, err)
	assert.ErrorIs(t, err, infer.ErrUnsupportedOperation)
	assert.ErrorIs(t, err, core.ErrUnsupported)
	assert.Nil(t, p)
	assert.Zero(t, w)
}

// TestState_String covers the diagnostic names.
func TestState_String(t *testing.T) {
	cases := map[infer.State]string{
		infer.Empty:      "Empty",
		infer.Warming:    "Warming",
		infer.Converging: "Converging",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q; want %q", int(s), got, want)
		}
	}
}
