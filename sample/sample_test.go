package sample_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/baynet/core"
	"github.com/katalvlaran/baynet/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dist builds a distribution from value:mass pairs.
func dist(t *testing.T, pairs ...interface{}) *core.Distribution {
	t.Helper()
	d := core.NewDistribution()
	for i := 0; i+1 < len(pairs); i += 2 {
		require.NoError(t, d.Set(core.Value(pairs[i].(string)), pairs[i+1].(float64)))
	}
	return d
}

// rainWet builds Rain→Wet with exact hand-built CPTs:
// P(Rain=yes)=0.3; P(Wet=yes|Rain=yes)=0.9; P(Wet=yes|Rain=no)=0.2.
func rainWet(t *testing.T) (*core.Network, []*core.Variable) {
	t.Helper()
	net := core.NewNetwork()
	rain := core.NewVariable("Rain", "yes", "no")
	wet := core.NewVariable("Wet", "yes", "no")
	require.NoError(t, net.AddVariable(rain))
	require.NoError(t, net.AddVariable(wet))
	require.NoError(t, net.AddEdge("Rain", "Wet"))

	rainCPT := core.NewCPT()
	rainCPT.Put(nil, dist(t, "yes", 0.3, "no", 0.7))
	rain.SetCPT(rainCPT)

	wetCPT := core.NewCPT()
	wetCPT.Put([]core.Value{"yes"}, dist(t, "yes", 0.9, "no", 0.1))
	wetCPT.Put([]core.Value{"no"}, dist(t, "yes", 0.2, "no", 0.8))
	wet.SetCPT(wetCPT)

	return net, []*core.Variable{rain, wet}
}

// TestAncestral_Errors covers the validation sentinels.
func TestAncestral_Errors(t *testing.T) {
	if _, err := sample.Ancestral(nil, sample.WithSeed(1)); !errors.Is(err, sample.ErrEmptyOrder) {
		t.Errorf("empty order: want ErrEmptyOrder, got %v", err)
	}
	_, order := rainWet(t)
	if _, err := sample.Ancestral(order); !errors.Is(err, sample.ErrNeedRandSource) {
		t.Errorf("no rng: want ErrNeedRandSource, got %v", err)
	}
	bare := []*core.Variable{core.NewVariable("X", "t")}
	if _, err := sample.Ancestral(bare, sample.WithSeed(1)); !errors.Is(err, sample.ErrNoCPT) {
		t.Errorf("no CPT: want ErrNoCPT, got %v", err)
	}
}

// TestAncestral_CompleteAndDeterministic: every variable is assigned, and
// a fixed seed reproduces the particle sequence.
func TestAncestral_CompleteAndDeterministic(t *testing.T) {
	_, order := rainWet(t)
	r1 := rand.New(rand.NewSource(9))
	r2 := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		p1, err := sample.Ancestral(order, sample.WithRand(r1))
		require.NoError(t, err)
		p2, err := sample.Ancestral(order, sample.WithRand(r2))
		require.NoError(t, err)
		assert.Equal(t, p1, p2, "step %d: same seed must yield same particle", i)
		require.True(t, p1.Has("Rain") && p1.Has("Wet"), "particle must be complete")
	}
}

// TestAncestral_MarginalFrequency: the forward marginal of Rain tracks
// its prior within tolerance.
func TestAncestral_MarginalFrequency(t *testing.T) {
	_, order := rainWet(t)
	rng := rand.New(rand.NewSource(4))
	const draws = 5000
	var yes int
	for i := 0; i < draws; i++ {
		p, err := sample.Ancestral(order, sample.WithRand(rng))
		require.NoError(t, err)
		if p["Rain"] == "yes" {
			yes++
		}
	}
	assert.InDelta(t, 0.3, float64(yes)/draws, 0.03)
}

// TestNewGibbs_Errors covers construction validation.
func TestNewGibbs_Errors(t *testing.T) {
	net, order := rainWet(t)
	if _, err := sample.NewGibbs(nil, order, sample.WithSeed(1)); !errors.Is(err, sample.ErrNilNetwork) {
		t.Errorf("nil network: want ErrNilNetwork, got %v", err)
	}
	if _, err := sample.NewGibbs(net, nil, sample.WithSeed(1)); !errors.Is(err, sample.ErrEmptyOrder) {
		t.Errorf("empty order: want ErrEmptyOrder, got %v", err)
	}
	if _, err := sample.NewGibbs(net, order); !errors.Is(err, sample.ErrNeedRandSource) {
		t.Errorf("no rng: want ErrNeedRandSource, got %v", err)
	}
}

// TestGibbs_EvidencePinningAndCompleteness: evidence variables keep their
// value across transitions, free variables stay within their domain, and
// an incomplete previous particle is rejected.
func TestGibbs_EvidencePinningAndCompleteness(t *testing.T) {
	net, order := rainWet(t)
	g, err := sample.NewGibbs(net, order, sample.WithSeed(17))
	require.NoError(t, err)

	evidence := core.Observation{"Wet": "yes"}
	prev, err := sample.Ancestral(order, sample.WithSeed(3))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		next, err := g.Next(prev, evidence)
		require.NoError(t, err)
		assert.Equal(t, core.Value("yes"), next["Wet"], "evidence must stay pinned")
		assert.Contains(t, []core.Value{"yes", "no"}, next["Rain"])
		prev = next
	}

	if _, err := g.Next(core.Observation{"Rain": "yes"}, nil); !errors.Is(err, sample.ErrIncompleteParticle) {
		t.Errorf("incomplete particle: want ErrIncompleteParticle, got %v", err)
	}
}

// TestGibbs_PosteriorPull: with Wet=yes pinned, the chain's Rain
// frequency approaches the exact posterior
// P(Rain=yes|Wet=yes) = 0.27/0.41 ≈ 0.6585.
func TestGibbs_PosteriorPull(t *testing.T) {
	net, order := rainWet(t)
	g, err := sample.NewGibbs(net, order, sample.WithSeed(23))
	require.NoError(t, err)

	evidence := core.Observation{"Wet": "yes"}
	particle, err := sample.Ancestral(order, sample.WithSeed(23))
	require.NoError(t, err)

	const steps = 6000
	var yes int
	for i := 0; i < steps; i++ {
		particle, err = g.Next(particle, evidence)
		require.NoError(t, err)
		if particle["Rain"] == "yes" {
			yes++
		}
	}
	assert.InDelta(t, 0.27/0.41, float64(yes)/steps, 0.05)
}

// TestLikelihoodWeighted_WeightAccounting: the returned weight equals the
// evidence value's CPT mass under the sampled parents.
func TestLikelihoodWeighted_WeightAccounting(t *testing.T) {
	_, order := rainWet(t)
	rng := rand.New(rand.NewSource(31))
	evidence := core.Observation{"Wet": "yes"}

	for i := 0; i < 100; i++ {
		particle, weight, err := sample.LikelihoodWeighted(order, evidence, sample.WithRand(rng))
		require.NoError(t, err)
		assert.Equal(t, core.Value("yes"), particle["Wet"])
		want := 0.2
		if particle["Rain"] == "yes" {
			want = 0.9
		}
		assert.InDelta(t, want, weight, core.MassTolerance, "weight must match CPT mass of the evidence value")
	}
}

// TestLikelihoodWeighted_NoEvidence: weight stays exactly 1.
func TestLikelihoodWeighted_NoEvidence(t *testing.T) {
	_, order := rainWet(t)
	_, weight, err := sample.LikelihoodWeighted(order, nil, sample.WithSeed(2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, weight)
}
