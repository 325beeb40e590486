// SPDX-License-Identifier: MIT
// Package: baynet/builder
//
// impl_pairwise.go — implementation of the PairwiseSingle mode.
//
// Canonical model:
//   - Shuffle the variable set with cfg.rng.
//   - Partition into consecutive disjoint pairs; a trailing unpaired
//     variable (odd count) is left untouched.
//   - In each pair, the first becomes the sole parent of the second.
//   - Produces exactly ⌊N/2⌋ edges; no variable gains more than one
//     parent from this pass.
//
// Contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource): the pairing is
//     defined over the shuffled order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) shuffle + O(n/2) edges. Space: O(n) snapshot.
//
// Determinism:
//   - Identical (insertion order, seed) ⇒ identical pairing and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/baynet/core"
)

const methodPairwiseSingle = "PairwiseSingle"

// PairwiseSingle returns a Constructor that pairs up the network's
// variables and makes each pair's first member the sole parent of the
// second.
func PairwiseSingle() Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		// 1. Validate inputs.
		if net == nil {
			return fmt.Errorf("%s: %w", methodPairwiseSingle, ErrNilNetwork)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodPairwiseSingle, ErrNeedRandSource)
		}

		// 2. Snapshot in insertion order, shuffle deterministically.
		vars := net.Variables()
		cfg.rng.Shuffle(len(vars), func(a, b int) {
			vars[a], vars[b] = vars[b], vars[a]
		})

		// 3. Consecutive disjoint pairs: (0,1), (2,3), ...; an odd
		//    trailing variable is skipped by the i+1 bound.
		for i := 0; i+1 < len(vars); i += 2 {
			if err := net.AddEdge(vars[i].Name(), vars[i+1].Name()); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w",
					methodPairwiseSingle, vars[i].Name(), vars[i+1].Name(), err)
			}
		}

		return nil
	}
}
