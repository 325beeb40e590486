// Package baynet is your in-memory toolkit for building, learning, and
// querying discrete Bayesian networks — from core primitives to MCMC
// posterior inference.
//
// 🚀 What is baynet?
//
//	A deterministic, dependency-light library that brings together:
//		• Core primitives: variables, distributions, CPTs, observation streams
//		• Structure builders: seeded random DAGs & pairwise parent assignment
//		• Topological ordering over the ancestor/descendant partial order
//		• Streaming CPT learning from rewindable observation streams
//		• Sampling: ancestral, Gibbs transitions, likelihood weighting
//		• Inference: warm-up-gated MCMC posterior estimation
//
// ✨ Why choose baynet?
//
//   - Reproducible by construction – every stochastic path takes an explicit
//     seed or *rand.Rand; never a process-wide generator
//   - Rock-solid contracts – sentinel errors, in-code docs, errors.Is friendly
//   - Pure Go – no cgo, no hidden deps
//   - Single-threaded core – callers own serialization; batch sizes are the
//     responsiveness knob
//
// Everything is organized under six subpackages:
//
//	core/    — Value, Observation, Distribution, CPT, Variable, Network
//	builder/ — deterministic structure generation (Random, PairwiseSingle)
//	topo/    — topological ordering with optional pairwise verification
//	learn/   — CPT learning from observation streams
//	sample/  — ancestral, Gibbs, and likelihood-weighted samplers
//	infer/   — MCMC query driver with warm-up and posterior bookkeeping
//
// Quick ASCII example:
//
//	    Rain ──► Sprinkler
//	      │         │
//	      └──► Wet ◄┘
//
//	three variables, two parents for Wet; learn CPTs from data, then ask
//	P(Rain | Wet=yes) by Gibbs refinement.
//
// Dive into the per-package doc.go files for contracts, complexity notes,
// and worked examples.
//
//	go get github.com/katalvlaran/baynet
package baynet
