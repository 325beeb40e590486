// SPDX-License-Identifier: MIT
// Package: baynet/topo
//
// types.go — options and sentinel errors for topological ordering.

package topo

import "errors"

var (
	// ErrNilNetwork is returned when a nil *core.Network is passed to
	// Order.
	ErrNilNetwork = errors.New("topo: network is nil")

	// ErrOrderViolation indicates the produced ordering failed the
	// pairwise ancestor self-check (WithVerify). It signals a broken
	// invariant upstream — typically a cycle wired past the
	// construction-time guarantees — and is a programming error, not a
	// recoverable condition.
	ErrOrderViolation = errors.New("topo: ordering violates ancestor partial order")
)

// Option configures optional behavior of Order.
type Option func(*orderOptions)

// orderOptions holds settings for Order; currently only verification.
type orderOptions struct {
	verify bool // run the O(n²) pairwise self-check on the result
}

// defaultOrderOptions returns the default options (no verification).
func defaultOrderOptions() orderOptions {
	return orderOptions{verify: false}
}

// WithVerify enables the pairwise ancestor self-check on the produced
// ordering. Intended for debug and test builds; a violation surfaces as
// ErrOrderViolation.
func WithVerify() Option {
	return func(o *orderOptions) {
		o.verify = true
	}
}
