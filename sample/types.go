// SPDX-License-Identifier: MIT
// Package: baynet/sample
//
// types.go — functional options, shared helpers, and sentinel errors.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Samplers never panic at runtime; option constructors panic on
//     meaningless input (nil rng).

package sample

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/baynet/core"
)

var (
	// ErrNilNetwork is returned by NewGibbs for a nil network.
	ErrNilNetwork = errors.New("sample: network is nil")

	// ErrEmptyOrder is returned when the topological order is nil or
	// empty; samplers cannot infer the variable set from anywhere else.
	ErrEmptyOrder = errors.New("sample: topological order is empty")

	// ErrNeedRandSource indicates a sampler was invoked without an RNG;
	// set WithSeed or WithRand.
	ErrNeedRandSource = errors.New("sample: rng is required")

	// ErrNoCPT indicates a variable has no attached CPT; run the learner
	// (or attach hand-built tables) before sampling.
	ErrNoCPT = errors.New("sample: variable has no CPT")

	// ErrNoDistribution indicates a CPT has no row for the parent
	// instantiation encountered while sampling — the instantiation was
	// never observed during learning.
	ErrNoDistribution = errors.New("sample: no distribution for instantiation")

	// ErrUnassignedParent indicates a parent had no value at the moment
	// its child was sampled; the supplied order is not topological.
	ErrUnassignedParent = errors.New("sample: parent unassigned; order is not topological")

	// ErrIncompleteParticle indicates the previous particle handed to a
	// Gibbs transition does not cover every ordered variable.
	ErrIncompleteParticle = errors.New("sample: particle does not cover all variables")
)

// Option configures a sampling call or a Gibbs sampler.
type Option func(*sampleConfig)

// sampleConfig carries the explicit randomness source; nil means the
// caller forgot to seed, which stochastic paths reject loudly.
type sampleConfig struct {
	rng *rand.Rand
}

func newSampleConfig(opts ...Option) sampleConfig {
	cfg := sampleConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sample: WithRand(nil)")
	}
	return func(c *sampleConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *sampleConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// parentTuple assembles v's parent instantiation from the current
// assignment, in parent order. A missing parent value means the caller's
// order was not topological.
func parentTuple(v *core.Variable, cur core.Observation) ([]core.Value, error) {
	parents := v.Parents()
	tuple := make([]core.Value, len(parents))
	for i, p := range parents {
		val, ok := cur.Lookup(p.Name())
		if !ok {
			return nil, fmt.Errorf("%s needs %s: %w", v.Name(), p.Name(), ErrUnassignedParent)
		}
		tuple[i] = val
	}
	return tuple, nil
}

// rowFor resolves v's CPT row for the current assignment.
func rowFor(v *core.Variable, cur core.Observation) (*core.Distribution, error) {
	cpt := v.CPT()
	if cpt == nil {
		return nil, fmt.Errorf("%s: %w", v.Name(), ErrNoCPT)
	}
	tuple, err := parentTuple(v, cur)
	if err != nil {
		return nil, err
	}
	d, ok := cpt.Lookup(tuple)
	if !ok {
		return nil, fmt.Errorf("%s given %q: %w", v.Name(), tuple, ErrNoDistribution)
	}
	return d, nil
}
