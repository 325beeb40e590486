// Package infer drives approximate posterior inference by Markov-chain
// sampling: a Query binds one network and one evidence observation,
// grows a particle history through Gibbs transitions, and maintains
// warm-up-gated posterior estimates per variable.
//
// 🚀 Lifecycle
//
//	Empty ──RefineResults──► Warming ──(particles > warm-up)──► Converging
//
//	A fresh query holds no particles (Empty). The first refinement seeds
//	the chain with one ancestral-sampled particle, then each refinement
//	appends a batch of Gibbs transitions. While the total particle count
//	is at most the warm-up size the chain is Warming and RefinementCount
//	reports 0 — estimates exist but are not yet trustworthy. Beyond the
//	warm-up the query is Converging: RefinementCount grows and the
//	posterior map is recomputed over the trailing post-warm-up window.
//	There is no terminal state; keep calling RefineResults to sharpen
//	the estimates.
//
// Posterior bookkeeping:
//
//	The trailing window is the whole history while it fits inside the
//	warm-up, and everything after the warm-up once it is exceeded. Value
//	counts are divided by the window size, so every posterior sums to 1.
//
// Responsiveness:
//
//	RefineResults(steps) runs synchronously to completion. A host that
//	needs cancellation drives the query from its own worker and checks a
//	flag between batches; a modest steps value bounds the latency of one
//	batch. The core takes no locks and starts no goroutines.
//
// One-shot queries:
//
//	Once() — a single likelihood-weighted query outside the chain — is
//	not implemented and fails with ErrUnsupportedOperation (tagged
//	core.ErrUnsupported). Use sample.LikelihoodWeighted directly if you
//	need the primitive.
package infer
