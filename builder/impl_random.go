// SPDX-License-Identifier: MIT
// Package: baynet/builder
//
// impl_random.go — implementation of the Random(parentLimit) mode.
//
// Canonical model:
//   - Shuffle the variable set with cfg.rng.
//   - The first shuffled variable stays parentless.
//   - Every later variable at shuffle index i draws a parent count
//     k ~ U[0, parentLimit], then k parents uniformly from indices < i.
//   - Parents always come from earlier positions ⇒ acyclic by
//     construction. Duplicate draws collapse (AddParent is idempotent),
//     so k is an upper bound on the parents gained, not an exact count.
//
// Contract:
//   - parentLimit ≥ 0 (else ErrParentLimit).
//   - cfg.rng must be non-nil (else ErrNeedRandSource): the shuffle
//     itself is stochastic, so even parentLimit == 0 requires an RNG.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) shuffle + O(n · parentLimit) draws.
//   - Space: O(n) for the shuffled snapshot.
//
// Determinism:
//   - The snapshot is net.Variables() (insertion order), the shuffle and
//     every draw consume cfg.rng in a fixed order ⇒ identical edge sets
//     for identical (insertion order, seed, parentLimit).

package builder

import (
	"fmt"

	"github.com/katalvlaran/baynet/core"
)

const methodRandom = "Random"

// Random returns a Constructor that wires a random DAG over the network's
// existing variables, each variable gaining at most parentLimit parents.
func Random(parentLimit int) Constructor {
	// The returned closure captures parentLimit; Build supplies (net, cfg).
	return func(net *core.Network, cfg builderConfig) error {
		// 1. Validate parameters early (fail fast, zero side-effects on
		//    invalid input).
		if net == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNilNetwork)
		}
		if parentLimit < 0 {
			return fmt.Errorf("%s: parentLimit=%d < 0: %w",
				methodRandom, parentLimit, ErrParentLimit)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		// 2. Snapshot in insertion order, then shuffle deterministically.
		vars := net.Variables()
		cfg.rng.Shuffle(len(vars), func(a, b int) {
			vars[a], vars[b] = vars[b], vars[a]
		})

		// 3. Wire parents: index 0 stays a root; index i draws from [0,i).
		var (
			i, slot, k int
			parent     *core.Variable
		)
		for i = 1; i < len(vars); i++ {
			k = cfg.rng.Intn(parentLimit + 1) // parent count for this child
			for slot = 0; slot < k; slot++ {
				parent = vars[cfg.rng.Intn(i)] // strictly earlier position
				if err := net.AddEdge(parent.Name(), vars[i].Name()); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w",
						methodRandom, parent.Name(), vars[i].Name(), err)
				}
			}
		}

		// 4. Success: random DAG generated deterministically for the seed.
		return nil
	}
}
