// SPDX-License-Identifier: MIT
// Package: baynet/core
//
// variable.go — a discrete random variable: identity, domain, parents, CPT.
//
// Contract:
//   • Identity is Name; the Network and every lookup key use it.
//   • Parents form an ordered set; AddParent is idempotent by name and
//     edges are added one at a time (there is no atomic set-parents).
//   • Acyclicity over a whole network is maintained by the construction
//     helpers in builder/, not re-validated on each AddParent; callers
//     wiring edges by hand own the invariant.
//   • A CPT is attached only after learning and replaces any prior table.
//
// Complexity:
//   • AddParent/HasParent: O(len(parents)). Ancestor checks: O(reachable
//     ancestor closure).

package core

import "fmt"

// Variable is one node of a Bayesian network: a unique name, a finite
// value domain, an ordered parent set, and an optional learned CPT.
type Variable struct {
	name    string
	domain  []Value
	parents []*Variable
	cpt     *CPT
}

// NewVariable creates a standalone variable with the given name and
// domain. The domain order is preserved and exposed by Domain.
func NewVariable(name string, domain ...Value) *Variable {
	dom := make([]Value, len(domain))
	copy(dom, domain)
	return &Variable{name: name, domain: dom}
}

// Name returns the variable's identity.
func (v *Variable) Name() string {
	return v.name
}

// Domain returns a copy of the variable's value domain, in declared order.
func (v *Variable) Domain() []Value {
	out := make([]Value, len(v.domain))
	copy(out, v.domain)
	return out
}

// DomainLen returns the domain size without copying.
func (v *Variable) DomainLen() int {
	return len(v.domain)
}

// AddParent appends p to the ordered parent set. Adding an existing
// parent (by name) is a no-op; nil and self edges are rejected.
func (v *Variable) AddParent(p *Variable) error {
	if p == nil {
		return fmt.Errorf("AddParent: %w", ErrNilVariable)
	}
	if p.name == v.name {
		return fmt.Errorf("AddParent(%q): %w", p.name, ErrSelfParent)
	}
	if v.HasParent(p.name) {
		return nil
	}
	v.parents = append(v.parents, p)
	return nil
}

// HasParent reports whether a parent with the given name is present.
func (v *Variable) HasParent(name string) bool {
	for _, p := range v.parents {
		if p.name == name {
			return true
		}
	}
	return false
}

// Parents returns a copy of the ordered parent set. The order defines the
// instantiation tuple layout of the variable's CPT.
func (v *Variable) Parents() []*Variable {
	out := make([]*Variable, len(v.parents))
	copy(out, v.parents)
	return out
}

// ParentCount returns the number of parents without copying.
func (v *Variable) ParentCount() int {
	return len(v.parents)
}

// SetCPT attaches a learned table, replacing any prior one.
func (v *Variable) SetCPT(c *CPT) {
	v.cpt = c
}

// CPT returns the attached table, or nil before learning.
func (v *Variable) CPT() *CPT {
	return v.cpt
}

// IsAncestorOf reports whether v is reachable from other by following
// parent edges upward (v is a proper ancestor of other). A variable is
// not its own ancestor.
func (v *Variable) IsAncestorOf(other *Variable) bool {
	if other == nil {
		return false
	}
	// Iterative DFS over other's parent closure; seen guards shared
	// ancestors (a DAG need not be a tree).
	seen := make(map[string]bool)
	stack := make([]*Variable, 0, len(other.parents))
	stack = append(stack, other.parents...)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[p.name] {
			continue
		}
		seen[p.name] = true
		if p.name == v.name {
			return true
		}
		stack = append(stack, p.parents...)
	}
	return false
}

// IsDescendantOf reports whether v lies below other in the DAG
// (other is a proper ancestor of v).
func (v *Variable) IsDescendantOf(other *Variable) bool {
	if other == nil {
		return false
	}
	return other.IsAncestorOf(v)
}
