// SPDX-License-Identifier: MIT
// Package: baynet/sample
//
// ancestral.go — forward (ancestral) sampling along a topological order.
//
// Contract:
//   • order must be topological: each variable's parents precede it.
//   • Every variable needs an attached CPT with a row for the parent
//     instantiation reached during the walk.
//   • Produces one complete, unweighted particle per call.
//
// Complexity: O(len(order) · (parents + domain)) per particle.

package sample

import (
	"fmt"

	"github.com/katalvlaran/baynet/core"
)

// Ancestral draws one particle by assigning each variable in order a
// value sampled from its CPT row for the already-assigned parent values.
func Ancestral(order []*core.Variable, opts ...Option) (core.Particle, error) {
	// 1. Validate inputs.
	if len(order) == 0 {
		return nil, fmt.Errorf("Ancestral: %w", ErrEmptyOrder)
	}
	cfg := newSampleConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("Ancestral: %w", ErrNeedRandSource)
	}

	// 2. Walk the order; parents are always assigned before children.
	particle := core.NewObservation()
	for _, v := range order {
		d, err := rowFor(v, particle)
		if err != nil {
			return nil, fmt.Errorf("Ancestral: %w", err)
		}
		val, err := d.Sample(cfg.rng)
		if err != nil {
			return nil, fmt.Errorf("Ancestral(%s): %w", v.Name(), err)
		}
		particle.Set(v.Name(), val)
	}

	return particle, nil
}
