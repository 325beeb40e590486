// Package learn fills in conditional probability tables from a rewindable
// observation stream: one full Reset+consume pass per network variable.
//
// 🚀 How learning works
//
//	For each variable, the stream is rewound and swept once through a
//	per-variable accumulator. A training row contributes to the variable
//	only when it assigns values to all of the variable's parents; the
//	parent tuple becomes an instantiation, and the row's value for the
//	variable itself (when present) increments that instantiation's
//	counter. After the sweep, each instantiation's counts are normalized
//	into a Distribution and the assembled CPT replaces any prior table
//	on the variable.
//
// Failure semantics (strict):
//
//   - An instantiation that was observed but never paired with a value
//     for the variable has no learnable distribution: the whole pass
//     fails with ErrInsufficientData. There is no smoothing or back-off
//     policy — that is an explicit extension point, not a silent
//     default.
//   - Structure learning is not implemented: Structure always fails with
//     ErrUnsupportedOperation (tagged core.ErrUnsupported).
//
// Performance:
//
//   - Time:   O(|vars| · |stream|) — the stream is consumed to
//     completion once per variable.
//   - Memory: O(instantiations · values) per variable, released after
//     the CPT is attached.
package learn
