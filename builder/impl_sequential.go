// SPDX-License-Identifier: MIT
// Package: baynet/builder
//
// impl_sequential.go — the Sequential mode, explicitly unsupported.
//
// Contract:
//   - Sequential generation MUST fail with ErrUnsupportedMode rather than
//     silently doing nothing; callers branch with errors.Is against
//     either ErrUnsupportedMode or core.ErrUnsupported.

package builder

import (
	"fmt"

	"github.com/katalvlaran/baynet/core"
)

const methodSequential = "Sequential"

// Sequential returns a Constructor for the sequential generation mode.
// The mode is not implemented: invoking the constructor always returns
// ErrUnsupportedMode and mutates nothing.
func Sequential() Constructor {
	return func(_ *core.Network, _ builderConfig) error {
		return fmt.Errorf("%s: %w", methodSequential, ErrUnsupportedMode)
	}
}
