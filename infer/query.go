// SPDX-License-Identifier: MIT
// Package: baynet/infer
//
// query.go — the MCMC inference query driver.
//
// Contract:
//   • A Query captures the network structure (topological order, Gibbs
//     children index) at construction. Editing the structure afterwards
//     leaves the query stale with undefined results; rebuild it — the
//     Network change hook tells collaborators when.
//   • Particle history is append-only, oldest → newest; the trailing
//     window for posterior estimation is the slice tail.
//   • Posterior masses are value counts divided by the window size, so
//     each posterior sums to 1 within tolerance.
//   • Single-threaded: RefineResults runs synchronously, takes no locks,
//     starts no goroutines.

package infer

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/baynet/core"
	"github.com/katalvlaran/baynet/sample"
	"github.com/katalvlaran/baynet/topo"
)

// Query is one posterior-inference session: a network, an evidence
// observation, a growing particle history, and the current posterior map.
type Query struct {
	net      *core.Network
	evidence core.Observation
	order    []*core.Variable
	gibbs    *sample.Gibbs
	rng      *rand.Rand

	history []core.Particle // append-only, oldest → newest
	warmUp  int
	post    map[string]*core.Distribution // memoized posteriors
}

// New builds a query over net conditioned on evidence. A nil evidence is
// treated as the empty observation (pure prior estimation). The
// topological order and the Gibbs children index are computed here, once.
func New(net *core.Network, evidence core.Observation, opts ...Option) (*Query, error) {
	// 1. Validate inputs and resolve options.
	if net == nil {
		return nil, fmt.Errorf("New: %w", ErrNilNetwork)
	}
	if net.Len() == 0 {
		return nil, fmt.Errorf("New: %w", ErrEmptyNetwork)
	}
	cfg := newQueryConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("New: %w", ErrNeedRandSource)
	}
	if evidence == nil {
		evidence = core.NewObservation()
	}

	// 2. Derive the ordering and bind the transition sampler to it.
	order, err := topo.Order(net)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	gibbs, err := sample.NewGibbs(net, order, sample.WithRand(cfg.rng))
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Query{
		net:      net,
		evidence: evidence,
		order:    order,
		gibbs:    gibbs,
		rng:      cfg.rng,
		warmUp:   cfg.warmUp,
		post:     make(map[string]*core.Distribution),
	}, nil
}

// RefineResults extends the chain by steps particles and recomputes the
// posterior map. An empty history is first seeded with one
// ancestral-sampled particle (which counts toward the total). steps may
// be 0 to recompute posteriors alone; negative steps are rejected.
func (q *Query) RefineResults(steps int) error {
	// 1. Validate the batch size.
	if steps < 0 {
		return fmt.Errorf("RefineResults(%d): %w", steps, ErrBadSteps)
	}

	// 2. Seed the chain on first use.
	if len(q.history) == 0 {
		seed, err := sample.Ancestral(q.order, sample.WithRand(q.rng))
		if err != nil {
			return fmt.Errorf("RefineResults: seed: %w", err)
		}
		q.history = append(q.history, seed)
	}

	// 3. Append one Gibbs transition per step, each from the newest
	//    particle and the query's evidence.
	for i := 0; i < steps; i++ {
		next, err := q.gibbs.Next(q.history[len(q.history)-1], q.evidence)
		if err != nil {
			return fmt.Errorf("RefineResults: step %d: %w", i, err)
		}
		q.history = append(q.history, next)
	}

	// 4. Recompute posteriors over the trailing window.
	return q.recompute()
}

// window returns the trailing window size: the whole history while it
// fits inside the warm-up, everything after the warm-up once exceeded.
func (q *Query) window() int {
	total := len(q.history)
	if total <= q.warmUp {
		return total
	}
	return total - q.warmUp
}

// recompute rebuilds the posterior map from the trailing window. Masses
// are counts divided by the window size (every posterior sums to 1).
func (q *Query) recompute() error {
	win := q.window()
	if win == 0 {
		return nil
	}
	tail := q.history[len(q.history)-win:]

	post := make(map[string]*core.Distribution, len(q.order))
	for _, v := range q.order {
		// Count occurrences with a stable first-seen value order so the
		// posterior support is deterministic for a fixed seed.
		var seen []core.Value
		counts := make(map[core.Value]int)
		for _, p := range tail {
			val, ok := p.Lookup(v.Name())
			if !ok {
				continue // particles are complete; tolerate anyway
			}
			if counts[val] == 0 {
				seen = append(seen, val)
			}
			counts[val]++
		}
		d := core.NewDistribution()
		for _, val := range seen {
			if err := d.Set(val, float64(counts[val])/float64(win)); err != nil {
				return fmt.Errorf("recompute(%s): %w", v.Name(), err)
			}
		}
		post[v.Name()] = d
	}

	q.post = post
	return nil
}

// RefinementCount reports how many particles lie beyond the warm-up: 0
// while the total is at most the warm-up size, total − warmUp otherwise.
// Callers use it to decide whether results are trustworthy yet.
func (q *Query) RefinementCount() int {
	if len(q.history) <= q.warmUp {
		return 0
	}
	return len(q.history) - q.warmUp
}

// State reports the query's position in the Empty → Warming → Converging
// progression.
func (q *Query) State() State {
	switch {
	case len(q.history) == 0:
		return Empty
	case len(q.history) <= q.warmUp:
		return Warming
	default:
		return Converging
	}
}

// Particles returns the total number of particles generated so far.
func (q *Query) Particles() int {
	return len(q.history)
}

// WarmUp returns the current warm-up size.
func (q *Query) WarmUp() int {
	return q.warmUp
}

// SetWarmUp changes the warm-up size; the next refinement re-windows
// accordingly. Negative sizes are rejected.
func (q *Query) SetWarmUp(n int) error {
	if n < 0 {
		return fmt.Errorf("SetWarmUp(%d): %w", n, ErrBadWarmUp)
	}
	q.warmUp = n
	return nil
}

// Posterior returns the current estimate for the named variable, if one
// has been computed. The returned Distribution is shared; treat it as
// read-only.
func (q *Query) Posterior(name string) (*core.Distribution, bool) {
	d, ok := q.post[name]
	return d, ok
}

// Posteriors returns a snapshot of the posterior map (variable name →
// Distribution). The map is a copy; the Distributions are shared and
// read-only.
func (q *Query) Posteriors() map[string]*core.Distribution {
	out := make(map[string]*core.Distribution, len(q.post))
	for k, v := range q.post {
		out[k] = v
	}
	return out
}

// Evidence returns a copy of the evidence observation this query
// conditions on.
func (q *Query) Evidence() core.Observation {
	return q.evidence.Clone()
}

// Once would answer the query with a single likelihood-weighted sample
// outside the Markov chain. It is not implemented: the call always fails
// with ErrUnsupportedOperation. Use sample.LikelihoodWeighted for the
// underlying primitive.
func (q *Query) Once() (core.Particle, float64, error) {
	return nil, 0, fmt.Errorf("Once: %w", ErrUnsupportedOperation)
}
