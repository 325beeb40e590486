// SPDX-License-Identifier: MIT
// Package: baynet/sample
//
// gibbs.go — Gibbs transition sampling over the Markov blanket.
//
// Full conditional:
//   For a non-evidence variable v with current assignment cur, each
//   candidate x in v's domain scores
//
//     score(x) = CPT_v(x | parents(v)) ·
//                Π_{c ∈ children(v)} CPT_c(cur[c] | parents(c) with v:=x)
//
//   and v is resampled from the normalized scores. Only the blanket
//   terms appear: all other factors of the joint are constant in x.
//
// Contract:
//   • The sampler captures the children index at construction; it goes
//     stale if the network structure is edited afterwards.
//   • Evidence-fixed variables keep their evidence value; every other
//     variable is resampled once per Next call, in topological order.
//   • prev must cover every ordered variable (a complete particle).
//
// Complexity: O(Σ_v domain(v) · (parents(v) + Σ_children parents)) per
// transition.

package sample

import (
	"fmt"

	"github.com/katalvlaran/baynet/core"
)

// Gibbs is a transition sampler bound to one network and one topological
// order. Create it once per chain with NewGibbs and call Next repeatedly.
type Gibbs struct {
	order    []*core.Variable
	children map[string][]*core.Variable
	cfg      sampleConfig
}

// NewGibbs builds a transition sampler for net along the given order,
// precomputing the children index. The RNG must be supplied here
// (WithSeed or WithRand); Next draws from it.
func NewGibbs(net *core.Network, order []*core.Variable, opts ...Option) (*Gibbs, error) {
	// 1. Validate inputs.
	if net == nil {
		return nil, fmt.Errorf("NewGibbs: %w", ErrNilNetwork)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("NewGibbs: %w", ErrEmptyOrder)
	}
	cfg := newSampleConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("NewGibbs: %w", ErrNeedRandSource)
	}

	// 2. Children index: one scan per variable, reused by every Next.
	children := make(map[string][]*core.Variable, len(order))
	for _, v := range order {
		children[v.Name()] = net.Children(v)
	}

	return &Gibbs{order: order, children: children, cfg: cfg}, nil
}

// Next produces one new particle from prev: evidence-fixed variables
// retain their evidence value, every other variable is resampled from
// its full conditional given the current values of all others.
func (g *Gibbs) Next(prev core.Particle, evidence core.Observation) (core.Particle, error) {
	// 1. The previous particle must assign every ordered variable.
	for _, v := range g.order {
		if !prev.Has(v.Name()) {
			return nil, fmt.Errorf("Next: %s: %w", v.Name(), ErrIncompleteParticle)
		}
	}

	// 2. Systematic sweep in topological order.
	cur := prev.Clone()
	for _, v := range g.order {
		if val, pinned := evidence.Lookup(v.Name()); pinned {
			cur.Set(v.Name(), val)
			continue
		}
		val, err := g.resample(v, cur)
		if err != nil {
			return nil, fmt.Errorf("Next(%s): %w", v.Name(), err)
		}
		cur.Set(v.Name(), val)
	}

	return cur, nil
}

// resample draws v from its full conditional under the current
// assignment.
func (g *Gibbs) resample(v *core.Variable, cur core.Observation) (core.Value, error) {
	// Own-CPT row is shared by every candidate value.
	own, err := rowFor(v, cur)
	if err != nil {
		return "", err
	}

	cond := core.NewDistribution()
	for _, x := range v.Domain() {
		score := own.Mass(x)
		// Children likelihood: each child keeps its current value, with
		// v hypothetically set to x inside the child's parent tuple.
		for _, c := range g.children[v.Name()] {
			if score == 0 {
				break // annihilated; no point visiting more children
			}
			m, err := g.childMass(c, v.Name(), x, cur)
			if err != nil {
				return "", err
			}
			score *= m
		}
		if err = cond.Set(x, score); err != nil {
			return "", err
		}
	}

	return cond.Sample(g.cfg.rng)
}

// childMass evaluates CPT_c(cur[c] | parents(c)) with the parent named
// override set to x instead of its current value.
func (g *Gibbs) childMass(c *core.Variable, override string, x core.Value, cur core.Observation) (float64, error) {
	cpt := c.CPT()
	if cpt == nil {
		return 0, fmt.Errorf("%s: %w", c.Name(), ErrNoCPT)
	}
	parents := c.Parents()
	tuple := make([]core.Value, len(parents))
	for i, p := range parents {
		if p.Name() == override {
			tuple[i] = x
			continue
		}
		val, ok := cur.Lookup(p.Name())
		if !ok {
			return 0, fmt.Errorf("%s needs %s: %w", c.Name(), p.Name(), ErrUnassignedParent)
		}
		tuple[i] = val
	}
	d, ok := cpt.Lookup(tuple)
	if !ok {
		// An instantiation never seen in training has no likelihood to
		// contribute; score it zero rather than abort the chain.
		return 0, nil
	}
	return d.Mass(cur[c.Name()]), nil
}
