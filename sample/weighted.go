// SPDX-License-Identifier: MIT
// Package: baynet/sample
//
// weighted.go — likelihood-weighted single-pass sampling.
//
// Contract:
//   • One pass in topological order: non-evidence variables are drawn
//     from their CPT row; evidence variables adopt the evidence value
//     and multiply the accumulated importance weight by that value's CPT
//     mass given the sampled parents.
//   • Returns a (particle, weight) pair; a weight of 0 means the
//     evidence is impossible under the sampled ancestors.
//
// Complexity: O(len(order) · (parents + domain)) per call.

package sample

import (
	"fmt"

	"github.com/katalvlaran/baynet/core"
)

// LikelihoodWeighted draws one particle consistent with evidence and its
// importance weight, for one-shot queries outside the Markov chain.
func LikelihoodWeighted(order []*core.Variable, evidence core.Observation, opts ...Option) (core.Particle, float64, error) {
	// 1. Validate inputs.
	if len(order) == 0 {
		return nil, 0, fmt.Errorf("LikelihoodWeighted: %w", ErrEmptyOrder)
	}
	cfg := newSampleConfig(opts...)
	if cfg.rng == nil {
		return nil, 0, fmt.Errorf("LikelihoodWeighted: %w", ErrNeedRandSource)
	}

	// 2. Walk the order, accumulating the evidence likelihood.
	particle := core.NewObservation()
	weight := 1.0
	for _, v := range order {
		d, err := rowFor(v, particle)
		if err != nil {
			return nil, 0, fmt.Errorf("LikelihoodWeighted: %w", err)
		}
		if val, pinned := evidence.Lookup(v.Name()); pinned {
			// Adopt the evidence value; weight by its conditional mass.
			particle.Set(v.Name(), val)
			weight *= d.Mass(val)
			continue
		}
		val, err := d.Sample(cfg.rng)
		if err != nil {
			return nil, 0, fmt.Errorf("LikelihoodWeighted(%s): %w", v.Name(), err)
		}
		particle.Set(v.Name(), val)
	}

	return particle, weight, nil
}
