// SPDX-License-Identifier: MIT
// Package: baynet/core
//
// cpt.go — conditional probability table: parent instantiation → Distribution.
//
// Contract:
//   • An instantiation is the ordered tuple of parent values, in the
//     owning variable's parent order; roots use the empty tuple.
//   • Keys are produced by InstKey; the unit separator keeps distinct
//     tuples distinct for any printable Values.
//   • Every instantiation observed during learning must map to a
//     Distribution — the learner enforces this, the table just stores.

package core

import "strings"

// instSep joins tuple elements inside an instantiation key. U+001F (unit
// separator) never occurs in printable domain tokens.
const instSep = "\x1f"

// InstKey encodes an ordered tuple of parent values as a CPT row key.
// The empty tuple (a root variable) encodes as "".
func InstKey(vals []Value) string {
	if len(vals) == 0 {
		return ""
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, instSep)
}

// CPT is a variable's conditional probability table: one Distribution per
// parent-value instantiation.
type CPT struct {
	rows map[string]*Distribution
}

// NewCPT returns an empty table.
func NewCPT() *CPT {
	return &CPT{rows: make(map[string]*Distribution)}
}

// Put stores d under the given instantiation, replacing any prior row.
func (c *CPT) Put(inst []Value, d *Distribution) {
	c.rows[InstKey(inst)] = d
}

// Lookup returns the Distribution for the given instantiation, if any.
func (c *CPT) Lookup(inst []Value) (*Distribution, bool) {
	d, ok := c.rows[InstKey(inst)]
	return d, ok
}

// LookupKey is Lookup for a pre-encoded key (hot paths that reuse keys).
func (c *CPT) LookupKey(key string) (*Distribution, bool) {
	d, ok := c.rows[key]
	return d, ok
}

// Len returns the number of stored instantiations.
func (c *CPT) Len() int {
	return len(c.rows)
}
