// SPDX-License-Identifier: MIT
// Package: baynet/infer
//
// types.go — query state enum, functional options, sentinel errors.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Option constructors panic on meaningless input; query methods
//     never panic.

package infer

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/baynet/core"
)

// DefaultWarmUp is the number of particles discounted as burn-in before
// refinement counts begin.
const DefaultWarmUp = 100

// State describes where a query sits in the Empty → Warming → Converging
// progression. There is no terminal state.
type State int

const (
	// Empty: no particles generated yet.
	Empty State = iota
	// Warming: particles exist but the total is within the warm-up size;
	// estimates are not yet trustworthy.
	Warming
	// Converging: the warm-up is exceeded; posteriors are meaningful and
	// sharpen with further refinement.
	Converging
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Warming:
		return "Warming"
	case Converging:
		return "Converging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrNilNetwork is returned by New for a nil network.
	ErrNilNetwork = errors.New("infer: network is nil")

	// ErrEmptyNetwork is returned by New when the network has no
	// variables; there is nothing to infer over.
	ErrEmptyNetwork = errors.New("infer: network has no variables")

	// ErrNeedRandSource indicates New was called without an RNG; set
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("infer: rng is required")

	// ErrBadSteps is returned by RefineResults for a negative batch size.
	ErrBadSteps = errors.New("infer: steps must be non-negative")

	// ErrBadWarmUp is returned by SetWarmUp for a negative size.
	ErrBadWarmUp = errors.New("infer: warm-up size must be non-negative")

	// ErrUnsupportedOperation tags query features the engine deliberately
	// does not implement (the one-shot weighted query). It wraps
	// core.ErrUnsupported so callers can branch on either sentinel.
	ErrUnsupportedOperation = fmt.Errorf("infer: operation not implemented: %w", core.ErrUnsupported)
)

// Option configures a Query at construction.
type Option func(*queryConfig)

// queryConfig carries construction-time knobs.
type queryConfig struct {
	rng    *rand.Rand
	warmUp int
}

func newQueryConfig(opts ...Option) queryConfig {
	cfg := queryConfig{warmUp: DefaultWarmUp}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand provides an explicit RNG for seeding and transitions.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("infer: WithRand(nil)")
	}
	return func(c *queryConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *queryConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWarmUp overrides the default warm-up size. Panics on negative n.
func WithWarmUp(n int) Option {
	if n < 0 {
		panic("infer: WithWarmUp(n<0)")
	}
	return func(c *queryConfig) {
		c.warmUp = n
	}
}
