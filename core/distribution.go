// SPDX-License-Identifier: MIT
// Package: baynet/core
//
// distribution.go — normalized mass over a finite set of Values.
//
// Contract:
//   • Support order is first-set order and is stable across calls, which
//     makes Sample deterministic for a fixed *rand.Rand seed.
//   • Mass(v) is 0 for values never set; Set overwrites.
//   • A finalized distribution sums to 1 within MassTolerance; Normalize
//     enforces this from raw (e.g. counted) masses.
//   • Sample never panics: nil rng, empty support, and zero total mass
//     surface as sentinel errors.
//
// Complexity:
//   • Set/Mass: O(1). Normalize/Sum/Sample: O(len(support)).

package core

import (
	"fmt"
	"math"
	"math/rand"
)

// MassTolerance is the floating tolerance within which a finalized
// distribution's total mass must equal 1.
const MassTolerance = 1e-9

// Distribution maps each Value of a finite support to a non-negative
// probability mass. The support is kept in first-set order so that
// weighted draws are reproducible under a fixed seed.
type Distribution struct {
	support []Value           // stable first-set order
	mass    map[Value]float64 // mass per value; absent ⇒ 0
}

// NewDistribution returns an empty distribution.
func NewDistribution() *Distribution {
	return &Distribution{mass: make(map[Value]float64)}
}

// Set assigns mass m to value v, overwriting any prior mass. The first
// Set of a value appends it to the support; later Sets keep its position.
// Negative, NaN, or infinite masses are rejected with ErrBadMass.
func (d *Distribution) Set(v Value, m float64) error {
	if m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return fmt.Errorf("Set(%q, %g): %w", v, m, ErrBadMass)
	}
	if _, seen := d.mass[v]; !seen {
		d.support = append(d.support, v)
	}
	d.mass[v] = m
	return nil
}

// Mass returns the mass assigned to v, or 0 if v was never set.
func (d *Distribution) Mass(v Value) float64 {
	return d.mass[v]
}

// Sum returns the total mass over the support.
func (d *Distribution) Sum() float64 {
	var total float64
	for _, v := range d.support {
		total += d.mass[v]
	}
	return total
}

// Len returns the number of values in the support.
func (d *Distribution) Len() int {
	return len(d.support)
}

// Support returns a copy of the support in first-set order.
func (d *Distribution) Support() []Value {
	out := make([]Value, len(d.support))
	copy(out, d.support)
	return out
}

// Normalize rescales all masses so they sum to 1. It is the finalization
// step after accumulating raw counts or unnormalized scores. A zero or
// non-positive total is rejected with ErrZeroMass.
func (d *Distribution) Normalize() error {
	total := d.Sum()
	if total <= 0 {
		return fmt.Errorf("Normalize: %w", ErrZeroMass)
	}
	for _, v := range d.support {
		d.mass[v] /= total
	}
	return nil
}

// Sample draws one value with probability proportional to its mass.
// The cumulative walk follows support order, so draws are deterministic
// for a fixed rng seed. Sampling does not require prior normalization;
// masses are treated as weights.
func (d *Distribution) Sample(rng *rand.Rand) (Value, error) {
	// 1. Validate inputs: rng presence, non-empty support, positive total.
	if rng == nil {
		return "", fmt.Errorf("Sample: %w", ErrNilRand)
	}
	if len(d.support) == 0 {
		return "", fmt.Errorf("Sample: %w", ErrEmptyDistribution)
	}
	total := d.Sum()
	if total <= 0 {
		return "", fmt.Errorf("Sample: %w", ErrZeroMass)
	}

	// 2. Weighted draw: walk the cumulative mass in support order.
	target := rng.Float64() * total
	var cum float64
	for _, v := range d.support {
		cum += d.mass[v]
		if target < cum {
			return v, nil
		}
	}

	// 3. Floating leak (target ≈ total): the last value absorbs it.
	return d.support[len(d.support)-1], nil
}
