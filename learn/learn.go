// SPDX-License-Identifier: MIT
// Package: baynet/learn
//
// learn.go — streaming CPT estimation, one rewound pass per variable.
//
// Contract:
//   • The stream must honor the ObservationStream Reset semantics; it is
//     rewound before every per-variable pass and consumed to completion.
//   • Rows missing any parent value do not register the instantiation for
//     that variable at all; rows with a complete parent tuple but no
//     value for the variable register it without a count.
//   • Every registered instantiation must end the pass with at least one
//     count, or the pass fails with ErrInsufficientData.
//   • On success each variable's CPT is replaced wholesale; on failure
//     variables already processed keep their new CPTs (the caller decides
//     whether a partial relearn is acceptable — typically it restarts).
//
// Determinism:
//   • Instantiations and value supports are recorded in first-seen stream
//     order, so identical streams produce identical CPT layouts.

package learn

import (
	"fmt"

	"github.com/katalvlaran/baynet/core"
)

// Distributions learns a CPT for every variable in net from the given
// observation stream. The stream is Reset before each variable's pass.
func Distributions(net *core.Network, stream core.ObservationStream) error {
	// 1. Validate inputs.
	if net == nil {
		return fmt.Errorf("Distributions: %w", ErrNilNetwork)
	}
	if stream == nil {
		return fmt.Errorf("Distributions: %w", ErrNilStream)
	}

	// 2. One rewound sweep per variable; order over variables is
	//    irrelevant to the result.
	for _, dv := range net.Variables() {
		stream.Reset()
		acc := newAccumulator(dv)
		for {
			row, ok := stream.Next()
			if !ok {
				break // end-of-stream is the normal termination signal
			}
			acc.observe(row)
		}
		cpt, err := acc.table()
		if err != nil {
			return fmt.Errorf("Distributions(%s): %w", dv.Name(), err)
		}
		dv.SetCPT(cpt)
	}

	return nil
}

// accumulator gathers per-instantiation value counts for one variable
// during a single stream sweep.
type accumulator struct {
	v       *core.Variable
	parents []*core.Variable

	keys   []string                 // instantiation keys, first-seen order
	tuples map[string][]core.Value  // key → parent tuple (CPT row layout)
	counts map[string]*valueCounter // key → value counts
}

// valueCounter tracks counts per value with a stable first-seen order.
type valueCounter struct {
	order []core.Value
	n     map[core.Value]float64
}

func newAccumulator(v *core.Variable) *accumulator {
	return &accumulator{
		v:       v,
		parents: v.Parents(),
		tuples:  make(map[string][]core.Value),
		counts:  make(map[string]*valueCounter),
	}
}

// observe folds one training row into the counters. A row participates
// only if it assigns every parent; the child value is optional (its
// absence still registers the instantiation, which must be covered by
// some other row before the pass ends).
func (a *accumulator) observe(row core.Observation) {
	// 1. Assemble the parent tuple; bail on the first missing parent.
	tuple := make([]core.Value, len(a.parents))
	for i, p := range a.parents {
		val, ok := row.Lookup(p.Name())
		if !ok {
			return
		}
		tuple[i] = val
	}

	// 2. Register the instantiation on first sight.
	key := core.InstKey(tuple)
	vc, seen := a.counts[key]
	if !seen {
		vc = &valueCounter{n: make(map[core.Value]float64)}
		a.counts[key] = vc
		a.tuples[key] = tuple
		a.keys = append(a.keys, key)
	}

	// 3. Count the child value when the row carries one.
	val, ok := row.Lookup(a.v.Name())
	if !ok {
		return
	}
	if _, counted := vc.n[val]; !counted {
		vc.order = append(vc.order, val)
	}
	vc.n[val]++
}

// table finalizes the counters into a CPT. Any registered instantiation
// without counts is fatal — there is no back-off or smoothing.
func (a *accumulator) table() (*core.CPT, error) {
	cpt := core.NewCPT()
	for _, key := range a.keys {
		vc := a.counts[key]
		if len(vc.order) == 0 {
			return nil, fmt.Errorf("instantiation %q: %w", a.tuples[key], ErrInsufficientData)
		}
		d := core.NewDistribution()
		for _, val := range vc.order {
			if err := d.Set(val, vc.n[val]); err != nil {
				return nil, fmt.Errorf("instantiation %q: %w", a.tuples[key], err)
			}
		}
		if err := d.Normalize(); err != nil {
			return nil, fmt.Errorf("instantiation %q: %w", a.tuples[key], err)
		}
		cpt.Put(a.tuples[key], d)
	}
	return cpt, nil
}
