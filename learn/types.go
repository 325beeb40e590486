// SPDX-License-Identifier: MIT
// Package: baynet/learn
//
// types.go — sentinel errors for the learner.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context (variable name, instantiation) is attached via %w wrapping
//     at the failure site.

package learn

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/baynet/core"
)

// ErrNilNetwork is returned when a nil *core.Network is passed.
var ErrNilNetwork = errors.New("learn: network is nil")

// ErrNilStream is returned when a nil observation stream is passed.
var ErrNilStream = errors.New("learn: stream is nil")

// ErrInsufficientData indicates that a parent instantiation was observed
// during a learning pass but no row supplied a value for the variable
// itself, so no distribution can be estimated. The pass is abandoned;
// nothing is imputed.
var ErrInsufficientData = errors.New("learn: insufficient data for instantiation")

// ErrUnsupportedOperation tags learner features the engine deliberately
// does not implement (structure learning). It wraps core.ErrUnsupported
// so callers can branch on either sentinel.
var ErrUnsupportedOperation = fmt.Errorf("learn: operation not implemented: %w", core.ErrUnsupported)
