// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import "fmt"

// AddState inserts id with an empty outgoing edge set. Fails with
// ErrDuplicateElement if id is already present.
func (a *Automaton) AddState(id StateID) error {
	if a.HasState(id) {
		return newDuplicateElement(a.name, "AddState", string(id))
	}
	a.addStateUnchecked(id)
	return nil
}

// hasEdge reports whether src already has an outgoing edge (label, dst).
func (a *Automaton) hasEdge(src StateID, label Symbol, dst StateID) bool {
	for _, e := range a.edges[src] {
		if e.Label == label && e.Dest == dst {
			return true
		}
	}
	return false
}

// AddEdge adds an edge src --label--> dst, creating dst if it does not yet
// exist (matching the source semantics). label == Epsilon denotes an
// ε-edge. Fails with ErrNoSuchNode if src is missing, ErrDuplicateElement if
// the edge already exists out of src. Updates the alphabet multiset and the
// determinism cache (eagerly: set false when the new edge introduces
// nondeterminism, never set back to true here).
func (a *Automaton) AddEdge(src StateID, label Symbol, dst StateID) error {
	if !a.HasState(src) {
		return newNoSuchNode(a.name, "AddEdge", string(src))
	}
	if !a.HasState(dst) {
		a.addStateUnchecked(dst)
	}
	if a.hasEdge(src, label, dst) {
		return newDuplicateElement(a.name, "AddEdge", fmt.Sprintf("%s -%s-> %s", src, labelString(label), dst))
	}

	introducesNondeterminism := label == Epsilon
	if !introducesNondeterminism {
		for _, e := range a.edges[src] {
			if e.Label == label {
				introducesNondeterminism = true
				break
			}
		}
	}

	a.edges[src] = append(a.edges[src], Edge{Label: label, Dest: dst})
	a.alphabetAdd(label)
	if !a.dirty && a.deterministic && introducesNondeterminism {
		a.deterministic = false
	}
	return nil
}

// RemoveEdge removes the edge src --label--> dst. Fails with ErrNoSuchNode if
// src is missing, ErrNoSuchEdge if the edge does not exist. Removal can only
// restore determinism, never break it, so a non-deterministic automaton is
// simply marked dirty for lazy recheck (I5) rather than rescanned eagerly.
func (a *Automaton) RemoveEdge(src StateID, label Symbol, dst StateID) error {
	if !a.HasState(src) {
		return newNoSuchNode(a.name, "RemoveEdge", string(src))
	}
	es := a.edges[src]
	idx := -1
	for i, e := range es {
		if e.Label == label && e.Dest == dst {
			idx = i
			break
		}
	}
	if idx < 0 {
		return newNoSuchEdge(a.name, "RemoveEdge", fmt.Sprintf("%s -%s-> %s", src, labelString(label), dst))
	}
	a.edges[src] = append(es[:idx], es[idx+1:]...)
	a.alphabetRemove(label)
	if !a.deterministic {
		a.dirty = true
	}
	return nil
}

// RemoveState removes id and every edge touching it (each via RemoveEdge, so
// the alphabet multiset stays consistent). Fails with ErrNoSuchNode if id is
// missing, or ErrInvalidAutomaton if id is the current initial state (Open
// Question (a): rejected rather than left dangling, see DESIGN.md).
func (a *Automaton) RemoveState(id StateID) error {
	if !a.HasState(id) {
		return newNoSuchNode(a.name, "RemoveState", string(id))
	}
	if id == a.initial {
		return newInvalidAutomaton(a.name, "RemoveState", string(id))
	}

	for _, s := range a.states {
		for _, e := range append([]Edge(nil), a.edges[s]...) {
			if e.Dest == id {
				_ = a.RemoveEdge(s, e.Label, e.Dest)
			}
		}
	}
	for _, e := range append([]Edge(nil), a.edges[id]...) {
		_ = a.RemoveEdge(id, e.Label, e.Dest)
	}

	delete(a.present, id)
	delete(a.finals, id)
	delete(a.edges, id)
	for i, s := range a.states {
		if s == id {
			a.states = append(a.states[:i], a.states[i+1:]...)
			break
		}
	}
	return nil
}

// AddEdges chains a run of symbols from src to dst through freshly generated
// intermediate states: src -sym[0]-> f1 -sym[1]-> f2 -...-> dst. Fails with
// ErrNoSuchNode if src is missing. Returns the intermediate states created,
// in order (not including src or dst).
func (a *Automaton) AddEdges(src StateID, syms []Symbol, dst StateID) ([]StateID, error) {
	if !a.HasState(src) {
		return nil, newNoSuchNode(a.name, "AddEdges", string(src))
	}
	if len(syms) == 0 {
		return nil, a.AddEdge(src, Epsilon, dst)
	}

	intermediates := make([]StateID, 0, len(syms)-1)
	cur := src
	for i, sym := range syms {
		var next StateID
		if i == len(syms)-1 {
			next = dst
		} else {
			next = a.freshStateName(StateID(fmt.Sprintf("%s_%d", src, i+1)))
			a.addStateUnchecked(next)
			intermediates = append(intermediates, next)
		}
		if err := a.AddEdge(cur, sym, next); err != nil {
			return intermediates, err
		}
		cur = next
	}
	return intermediates, nil
}

// reachableFrom returns the set of states reachable from start by following
// any edge (not just ε), including start itself.
func (a *Automaton) reachableFrom(start StateID) map[StateID]struct{} {
	seen := map[StateID]struct{}{start: {}}
	queue := []StateID{start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, e := range a.edges[s] {
			if _, ok := seen[e.Dest]; !ok {
				seen[e.Dest] = struct{}{}
				queue = append(queue, e.Dest)
			}
		}
	}
	return seen
}

func labelString(sym Symbol) string {
	if sym == Epsilon {
		return "ε"
	}
	return string(rune(sym))
}
