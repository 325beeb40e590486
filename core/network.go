// SPDX-License-Identifier: MIT
// Package: baynet/core
//
// network.go — the owning container of random variables (node table).
//
// Contract:
//   • Membership is keyed by variable Name (identity); no duplicates.
//   • Iteration order is insertion order and stable across calls unless
//     the network is mutated; no semantic weight attaches to it.
//   • RemoveVariable does not cascade: parent references held by other
//     variables are left untouched, and callers who care about dangling
//     edges must clean them up themselves.
//   • Change hooks fire after every effective structure edit (variable
//     added/removed, edge added through AddEdge) so derived state —
//     orderings, queries, layouts — knows to recompute. Hooks run
//     synchronously on the mutating goroutine.
//
// Complexity:
//   • AddVariable/Var/Has: O(1). RemoveVariable: O(n) (order slice).
//   • Children: O(n · avg parents) scan; no child index is maintained.

package core

import "fmt"

// Network owns a set of Variables and the parent edges between them.
// The union of all parent edges must form one DAG; the construction
// helpers in builder/ guarantee this, hand-wired edges must preserve it.
type Network struct {
	vars  map[string]*Variable // node table: name → variable
	order []*Variable          // insertion order for stable iteration
	hooks []func()             // change-notification callbacks
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{vars: make(map[string]*Variable)}
}

// AddVariable inserts v into the network. Inserting a variable whose name
// is already present is a no-op (add idempotence); nil variables and
// empty names are rejected.
func (n *Network) AddVariable(v *Variable) error {
	if v == nil {
		return fmt.Errorf("AddVariable: %w", ErrNilVariable)
	}
	if v.name == "" {
		return fmt.Errorf("AddVariable: %w", ErrEmptyName)
	}
	if _, dup := n.vars[v.name]; dup {
		return nil
	}
	n.vars[v.name] = v
	n.order = append(n.order, v)
	n.notify()
	return nil
}

// RemoveVariable removes every variable equal to v (equality is name
// identity). Removing an absent variable silently succeeds. Parent edges
// referencing the removed variable are not severed here.
func (n *Network) RemoveVariable(v *Variable) {
	if v == nil {
		return
	}
	n.Remove(v.name)
}

// Remove removes the named variable, silently succeeding if absent.
func (n *Network) Remove(name string) {
	if _, ok := n.vars[name]; !ok {
		return
	}
	delete(n.vars, name)
	for i, w := range n.order {
		if w.name == name {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	n.notify()
}

// Var returns the named member variable, if present.
func (n *Network) Var(name string) (*Variable, bool) {
	v, ok := n.vars[name]
	return v, ok
}

// Has reports membership by name.
func (n *Network) Has(name string) bool {
	_, ok := n.vars[name]
	return ok
}

// Len returns the number of member variables.
func (n *Network) Len() int {
	return len(n.order)
}

// Variables returns a copy of the member set in insertion order.
func (n *Network) Variables() []*Variable {
	out := make([]*Variable, len(n.order))
	copy(out, n.order)
	return out
}

// AddEdge makes parent a parent of child, firing change hooks when the
// edge is new. Both endpoints must already be members. Acyclicity is not
// re-validated here (construction-time guarantee, see package doc).
func (n *Network) AddEdge(parent, child string) error {
	p, ok := n.vars[parent]
	if !ok {
		return fmt.Errorf("AddEdge(%q→%q): parent: %w", parent, child, ErrVarNotFound)
	}
	c, ok := n.vars[child]
	if !ok {
		return fmt.Errorf("AddEdge(%q→%q): child: %w", parent, child, ErrVarNotFound)
	}
	if c.HasParent(parent) {
		return nil
	}
	if err := c.AddParent(p); err != nil {
		return fmt.Errorf("AddEdge(%q→%q): %w", parent, child, err)
	}
	n.notify()
	return nil
}

// EdgeCount returns the total number of parent edges over all members.
func (n *Network) EdgeCount() int {
	var total int
	for _, v := range n.order {
		total += len(v.parents)
	}
	return total
}

// Children returns the member variables that list v among their parents,
// in insertion order. Computed by scan; cache it if called in a hot loop.
func (n *Network) Children(v *Variable) []*Variable {
	if v == nil {
		return nil
	}
	var out []*Variable
	for _, w := range n.order {
		if w.HasParent(v.name) {
			out = append(out, w)
		}
	}
	return out
}

// OnChange registers a hook invoked after every effective structure edit.
// Registration order is invocation order. There is no deregistration;
// hooks live as long as the network.
func (n *Network) OnChange(fn func()) {
	if fn == nil {
		return
	}
	n.hooks = append(n.hooks, fn)
}

// notify fires all registered change hooks.
func (n *Network) notify() {
	for _, fn := range n.hooks {
		fn()
	}
}
