// SPDX-License-Identifier: MIT
// Package: baynet/builder
//
// api.go — thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(net, bopts, cons...). Resolves cfg once,
//     runs constructors in order against the caller's network.
//   - All public factories are declared in impl_*.go files.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same network insertion order, options/seed, and
//     constructor order ⇒ identical edge sets.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/baynet/core"
)

// Constructor applies a deterministic structure mutation using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Wire edges only through net.AddEdge so change hooks fire.
//   - Preserve determinism for the same config and call order.
type Constructor func(net *core.Network, cfg builderConfig) error

// Build resolves the builder configuration from bopts and applies all
// constructors in order to net. Any constructor error is wrapped with the
// context "Build: %w" and returned immediately; no partial rollback is
// attempted: a half-generated structure is still acyclic and the caller
// decides whether to keep or discard it.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrNilNetwork for a nil network; ErrConstructFailed for a nil
//     constructor slot; otherwise whatever the constructor returns
//     (branch with errors.Is against the package sentinels).
func Build(net *core.Network, bopts []BuilderOption, cons ...Constructor) error {
	// 1. Validate the target before touching options.
	if net == nil {
		return fmt.Errorf("Build: %w", ErrNilNetwork)
	}

	// 2. Resolve deterministic builder configuration once per call.
	cfg := newBuilderConfig(bopts...)

	// 3. Apply each constructor sequentially to preserve deterministic
	//    order and effects.
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(net, cfg); err != nil {
			// Wrap once at the API boundary; inner layers already added
			// method context.
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}
