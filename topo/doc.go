// Package topo derives linear orderings of a Bayesian network's variables
// consistent with the DAG partial order: every variable appears after all
// of its ancestors and before all of its descendants.
//
// 🚀 Algorithm
//
//	Incremental insertion over the ancestor/descendant partial order:
//	seed the ordering with an arbitrary first variable, then place each
//	remaining variable by scanning the current ordering from the front
//	for its first descendant and from the back for its last ancestor,
//	and splicing between them. Variables incomparable to everything
//	placed so far go immediately after the head — an arbitrary but
//	stable position.
//
// Performance:
//
//   - Time:   O(n²) insertions·scans (each comparability test walks the
//     ancestor closure). Accepted for small/medium networks; no
//     O(V+E) reconstruction is attempted.
//   - Memory: O(n) for the index-addressable result slice; insertions
//     splice in place, no wholesale rebuilding.
//
// Verification:
//
//	WithVerify() enables the debug self-check: every ordered pair i<j is
//	tested for the ancestor violation order[j] ⇝ order[i]. A violation
//	is an internal-consistency failure (a cycle slipped past the
//	construction-time guarantees) surfaced as ErrOrderViolation; treat
//	it as fatal, never as a recoverable condition.
//
// ⚙️ Usage:
//
//	order, err := topo.Order(net, topo.WithVerify())
//	if err != nil {
//	  // ErrNilNetwork or ErrOrderViolation
//	}
package topo
