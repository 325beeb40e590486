// SPDX-License-Identifier: MIT
// Package: baynet/learn
//
// structure.go — structure learning, explicitly unsupported.
//
// Contract:
//   - Structure learning MUST fail with ErrUnsupportedOperation rather
//     than return a partial or default structure; callers branch with
//     errors.Is against either sentinel.

package learn

import (
	"fmt"

	"github.com/katalvlaran/baynet/core"
)

// Structure would learn the parent edges of net from the observation
// stream. It is not implemented: the call always fails with
// ErrUnsupportedOperation and mutates nothing.
func Structure(_ *core.Network, _ core.ObservationStream) error {
	return fmt.Errorf("Structure: %w", ErrUnsupportedOperation)
}
