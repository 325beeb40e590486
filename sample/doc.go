// Package sample produces joint assignments ("particles") from a Bayesian
// network whose CPTs are attached, in three modes:
//
//   - Ancestral(order, opts...): forward sampling along a topological
//     order — each variable drawn from its CPT row for already-assigned
//     parents. Produces one complete, unweighted particle; the inference
//     driver uses it only to seed a chain.
//   - Gibbs transitions: NewGibbs(net, order) precomputes the children
//     index, then Next(prev, evidence) resamples every non-evidence
//     variable from its full conditional over the Markov blanket
//     (its own CPT combined with its children's CPTs), keeping
//     evidence-fixed variables pinned. Exactly one new particle per call.
//   - LikelihoodWeighted(order, evidence, opts...): single pass in
//     topological order; evidence variables adopt their value and
//     multiply the accumulated importance weight by the CPT mass of that
//     value given the sampled parents. Returns a (particle, weight) pair
//     for one-shot queries outside the Markov chain.
//
// Determinism:
//
//	All randomness flows through an explicit *rand.Rand supplied via
//	WithSeed or WithRand; a fixed seed reproduces particle sequences
//	exactly. There is no package-level RNG.
//
// Staleness:
//
//	A Gibbs sampler captures the network structure (children index) at
//	construction. Mutating the network afterwards leaves the sampler
//	stale with undefined results; rebuild it after any structure edit —
//	the Network change hook exists precisely for that.
//
// Errors:
//
//	Sentinel errors only (ErrNoCPT, ErrNoDistribution, ErrNeedRandSource,
//	...); branch with errors.Is. Sampling never panics.
package sample
