// SPDX-License-Identifier: MIT
// Package: baynet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w with a method-name prefix.
//   • Constructors MUST NOT panic at runtime; validation panics are
//     confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/baynet/core"
)

// ErrNilNetwork indicates a nil *core.Network was passed to Build or a
// constructor.
// Usage: if errors.Is(err, ErrNilNetwork) { /* supply a network */ }.
var ErrNilNetwork = errors.New("builder: network is nil")

// ErrNeedRandSource indicates that a stochastic generation mode requires
// a non-nil *rand.Rand in the resolved builderConfig (set WithSeed or
// WithRand). Both Random and PairwiseSingle shuffle, so both need one.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrParentLimit indicates a negative parentLimit passed to Random.
// Usage: if errors.Is(err, ErrParentLimit) { /* fix the limit */ }.
var ErrParentLimit = errors.New("builder: parent limit out of range")

// ErrConstructFailed indicates a structural failure of the Build pipeline
// itself (nil constructor slot) rather than of a generation mode.
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix the call site */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnsupportedMode tags the generation modes the engine deliberately
// does not implement (Sequential). It wraps core.ErrUnsupported so a
// caller can branch on either sentinel.
// Usage: errors.Is(err, ErrUnsupportedMode) or errors.Is(err, core.ErrUnsupported).
var ErrUnsupportedMode = fmt.Errorf("builder: generation mode not implemented: %w", core.ErrUnsupported)
