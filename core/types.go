// SPDX-License-Identifier: MIT
// Package: baynet/core
//
// types.go — value/observation primitives, the observation-stream contract,
// and the package sentinel errors.
//
// Contract (strict):
//   • Value is an opaque token; equality is the only operation assumed.
//   • Observation is partial by design: evidence and training rows may
//     leave any subset of variables unassigned.
//   • ObservationStream.Reset() must be callable any number of times,
//     including after end-of-stream; end-of-stream is a normal signal,
//     never an error.
//   • Sentinels are never wrapped with formatted strings at definition
//     site; implementations attach context via %w.

package core

import "errors"

// Value is one element of a variable's finite domain. It is an opaque
// discrete token: the engine compares Values only by equality and never
// interprets their content.
type Value string

// Observation maps variable names to assigned Values. It may be partial
// (evidence, training rows) or total (a sampled particle). The zero value
// of the map type is usable for lookups but not for Set; use
// NewObservation for a writable instance.
type Observation map[string]Value

// Particle is a full joint Observation covering every variable in a
// network — the unit produced by the samplers and accumulated by the
// inference driver.
type Particle = Observation

// NewObservation returns an empty writable Observation.
func NewObservation() Observation {
	return make(Observation)
}

// Lookup returns the value assigned to the named variable and whether one
// is present. A nil Observation reports nothing present.
func (o Observation) Lookup(name string) (Value, bool) {
	v, ok := o[name]
	return v, ok
}

// Has reports whether the named variable carries a value.
func (o Observation) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// Set assigns val to the named variable, overwriting any prior value.
func (o Observation) Set(name string, val Value) {
	o[name] = val
}

// Clone returns an independent copy. Cloning nil yields an empty writable
// Observation, so samplers may clone evidence unconditionally.
func (o Observation) Clone() Observation {
	dup := make(Observation, len(o))
	for k, v := range o {
		dup[k] = v
	}
	return dup
}

// ObservationStream is a single forward cursor over observations.
//
// Next returns the next Observation and true, or (nil, false) once the
// stream is exhausted. Reset rewinds to the beginning and may be called
// any number of times, including after exhaustion. Len reports the total
// number of observations when known; streams of unknown size return
// (0, false).
//
// A stream is consumed to completion once per variable during learning
// (Reset between variables); it is not assumed safe for concurrent use.
type ObservationStream interface {
	Next() (Observation, bool)
	Reset()
	Len() (int, bool)
}

var (
	// ErrUnsupported tags operations the engine deliberately does not
	// implement (sequential structure generation, structure learning,
	// one-shot weighted queries). Callers branch with
	// errors.Is(err, core.ErrUnsupported) regardless of which package
	// surfaced the failure.
	ErrUnsupported = errors.New("core: unsupported operation")

	// ErrNilVariable is returned when a nil *Variable is passed where a
	// variable is required.
	ErrNilVariable = errors.New("core: variable is nil")

	// ErrEmptyName is returned when a variable with an empty name is
	// offered to a Network; the name is the variable's identity and must
	// be non-empty.
	ErrEmptyName = errors.New("core: variable name is empty")

	// ErrSelfParent is returned by AddParent when a variable is offered
	// as its own parent; a self-edge is the smallest possible cycle.
	ErrSelfParent = errors.New("core: variable cannot parent itself")

	// ErrVarNotFound indicates that a named variable is not a member of
	// the network.
	ErrVarNotFound = errors.New("core: variable not found")

	// ErrEmptyDistribution is returned when sampling from a distribution
	// with no support.
	ErrEmptyDistribution = errors.New("core: distribution has no support")

	// ErrBadMass indicates a negative, NaN, or infinite probability mass.
	ErrBadMass = errors.New("core: invalid probability mass")

	// ErrZeroMass is returned by Normalize and Sample when the total mass
	// is not strictly positive.
	ErrZeroMass = errors.New("core: total mass is zero")

	// ErrNilRand is returned by Sample when no random source is supplied.
	ErrNilRand = errors.New("core: rand source is nil")
)
