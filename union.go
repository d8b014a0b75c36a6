// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import "fmt"

// Union returns a fresh NFA recognizing the union of the languages of the
// given automata: a new initial state with an ε-edge to each operand's
// (renamed) initial state, and finals the union of the renamed operand
// finals. Operand states are renamed to avoid collisions between operands;
// none of the operands is modified. The result is typically
// non-deterministic.
func Union(operands ...*Automaton) *Automaton {
	out := &Automaton{
		name:          "union",
		present:       make(map[StateID]struct{}),
		finals:        make(map[StateID]struct{}),
		edges:         make(map[StateID][]Edge),
		alphabet:      make(map[Symbol]int),
		deterministic: false,
		deadStateName: "_error",
		nextSuffix:    make(map[StateID]int),
	}
	start := StateID("start")
	out.addStateUnchecked(start)
	out.initial = start

	for i, op := range operands {
		rename := func(id StateID) StateID {
			return StateID(fmt.Sprintf("u%d_%s", i, id))
		}
		for _, s := range op.states {
			out.addStateUnchecked(rename(s))
		}
		for _, s := range op.states {
			for _, e := range op.edges[s] {
				_ = out.AddEdge(rename(s), e.Label, rename(e.Dest))
			}
		}
		for _, s := range op.Finals() {
			out.finals[rename(s)] = struct{}{}
		}
		_ = out.AddEdge(start, Epsilon, rename(op.initial))
	}

	out.dirty = true
	return out
}
