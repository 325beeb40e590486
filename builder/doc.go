// Package builder provides deterministic, seeded structure generation for
// Bayesian networks: given a Network whose variables are already present,
// a Constructor wires parent edges according to a generation mode.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG; resolved once per Build call.
//   - Generation modes (Constructor implementations):
//     – Random(parentLimit):  shuffled order, per-variable parent count
//       drawn in [0, parentLimit], parents from strictly earlier shuffle
//       positions — acyclic by construction.
//     – PairwiseSingle():     shuffled order, consecutive disjoint pairs,
//       first of each pair becomes sole parent of the second.
//     – Sequential():         explicitly unsupported; fails with
//       ErrUnsupportedMode (tagged core.ErrUnsupported), never a silent
//       no-op.
//   - Orchestration:
//     – Build(net, bopts, cons...): resolves options once and applies all
//       constructors in order, wrapping errors at the boundary.
//
// Guarantees:
//
//   - Determinism: the same variable insertion order, mode, seed, and
//     parentLimit produce an identical edge set on every run.
//   - Acyclicity by construction: parents are only ever drawn from
//     earlier shuffle positions, so no generation pass can introduce a
//     cycle. The builder does not re-validate acyclicity for edges added
//     outside these helpers.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; structured sentinel errors (errors.Is friendly) for
//     invalid build parameters.
//
// See individual constructor documentation for detailed contracts and
// performance notes.
package builder
