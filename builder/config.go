// SPDX-License-Identifier: MIT
// Package: baynet/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng = nil (pure/deterministic unless seeded; stochastic modes
//     reject a nil rng with ErrNeedRandSource rather than degrade).

package builder

import "math/rand"

// builderConfig aggregates all knobs used by generation modes. It is
// passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for shuffles and parent draws; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
