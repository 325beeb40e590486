// Package core provides the fundamental types of a discrete Bayesian
// network: values, observations, distributions, conditional probability
// tables (CPTs), random variables, the owning Network container, and the
// rewindable observation-stream contract consumed by the learner.
//
// 🚀 What lives here?
//
//   - Value:        an opaque discrete token, compared by equality
//   - Observation:  a partial or total map from variable name to Value
//   - Particle:     a full joint Observation produced by sampling
//   - Distribution: normalized mass per Value with deterministic draws
//   - CPT:          parent-instantiation → Distribution, one per variable
//   - Variable:     identity (unique name), domain, ordered parents, CPT
//   - Network:      node table with stable iteration and change hooks
//   - ObservationStream / SliceStream: the forward cursor with Reset()
//
// Identity & equality:
//
//	A Variable's identity is its Name — membership, evidence lookups and
//	posterior keys all use it. Structural (deep) equality is never used;
//	two variables with the same name are the same variable to a Network.
//
// Concurrency model:
//
//	The core is single-threaded by design. No type here performs internal
//	locking; every operation runs synchronously to completion on the
//	calling goroutine. A host driving learning or inference from worker
//	goroutines must serialize all calls touching one Network or derived
//	state (one dedicated worker per network is the intended shape).
//
// Determinism:
//
//	Distribution.Sample draws over the support in first-set order, so a
//	fixed *rand.Rand seed yields identical draws. No package-level RNG
//	exists anywhere in baynet.
//
// Errors:
//
//	Package-level sentinels only; branch with errors.Is. ErrUnsupported is
//	the shared tag wrapped by every "fail fast, not silently" stub in the
//	builder, learn, and infer packages.
package core
