// SPDX-License-Identifier: MIT
// Package: baynet/topo
//
// topo.go — insertion-based topological ordering.
//
// Contract:
//   • The result contains every network variable exactly once; for all
//     positions i<j, order[j] is never an ancestor of order[i].
//   • Input iteration order is net.Variables() (insertion order), so the
//     result is deterministic for a fixed network history.
//   • Returns only sentinel errors; never panics at runtime.

package topo

import (
	"fmt"

	"github.com/katalvlaran/baynet/core"
)

// Order returns a linear ordering of net's variables consistent with the
// ancestor/descendant partial order. The empty network yields an empty
// ordering. Pass WithVerify() to run the pairwise self-check on the
// result.
func Order(net *core.Network, opts ...Option) ([]*core.Variable, error) {
	// 1. Validate the input and apply options.
	if net == nil {
		return nil, fmt.Errorf("Order: %w", ErrNilNetwork)
	}
	o := defaultOrderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Snapshot the membership; trivial sizes need no placement logic.
	vars := net.Variables()
	order := make([]*core.Variable, 0, len(vars))
	if len(vars) == 0 {
		return order, nil
	}

	// 3. Seed with an arbitrary first variable.
	order = append(order, vars[0])

	// 4. Place each remaining variable by scanning the current ordering.
	var rv *core.Variable
	for _, rv = range vars[1:] {
		order = insert(order, rv)
	}

	// 5. Optional debug self-check; a violation is fatal upstream state.
	if o.verify {
		if err := verify(order); err != nil {
			return nil, fmt.Errorf("Order: %w", err)
		}
	}

	return order, nil
}

// insert splices rv into order per the placement rule:
//   - both an ancestor A and a descendant D are present → after A
//     (A is guaranteed to sit before D already);
//   - only D → immediately before D;
//   - only A → immediately after A;
//   - neither → immediately after the current head (stable placement for
//     incomparable variables).
func insert(order []*core.Variable, rv *core.Variable) []*core.Variable {
	// Front-to-back scan: first entry that descends from rv.
	descIdx := -1
	for i, u := range order {
		if u.IsDescendantOf(rv) {
			descIdx = i
			break
		}
	}
	// Back-to-front scan: first entry that is an ancestor of rv.
	ancIdx := -1
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].IsAncestorOf(rv) {
			ancIdx = i
			break
		}
	}

	var pos int
	switch {
	case ancIdx >= 0:
		// Covers both the A-and-D and the A-only cases.
		pos = ancIdx + 1
	case descIdx >= 0:
		pos = descIdx
	default:
		// Incomparable to everything placed so far.
		pos = 1
	}

	// Splice in place on the index-addressable slice.
	order = append(order, nil)
	copy(order[pos+1:], order[pos:])
	order[pos] = rv
	return order
}

// verify runs the O(n²) pairwise check: no later entry may be an ancestor
// of an earlier one.
func verify(order []*core.Variable) error {
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if order[j].IsAncestorOf(order[i]) {
				return fmt.Errorf("%s precedes its ancestor %s: %w",
					order[i].Name(), order[j].Name(), ErrOrderViolation)
			}
		}
	}
	return nil
}
