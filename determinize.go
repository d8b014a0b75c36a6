// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import (
	"fmt"
	"sort"
)

// sortedAlphabet returns the active alphabet sorted by symbol value, so
// determinization and totalization iterate symbols in a reproducible order.
func (a *Automaton) sortedAlphabet() []Symbol {
	syms := a.Alphabet()
	sortSymbols(syms)
	return syms
}

// sortSymbols sorts syms by symbol value in place.
func sortSymbols(syms []Symbol) {
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
}

type stateSet map[StateID]struct{}

func (s stateSet) key() string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	return fmt.Sprint(ids)
}

func (s stateSet) intersects(other map[StateID]struct{}) bool {
	for id := range s {
		if _, ok := other[id]; ok {
			return true
		}
	}
	return false
}

// delta advances every state in S by symbol sym and returns the raw
// (not yet ε-closed) destination set.
func (a *Automaton) delta(s stateSet, sym Symbol) stateSet {
	out := stateSet{}
	for id := range s {
		for _, e := range a.edges[id] {
			if e.Label == sym {
				out[e.Dest] = struct{}{}
			}
		}
	}
	return out
}

// MakeDeterministic replaces the automaton's state graph with a DFA
// recognizing the same language via subset construction, naming states
// "q0", "q1", ... in discovery order. A no-op if the automaton is already
// deterministic. Resulting states with no transitions at all for some
// alphabet symbol are left partial; see MakeTotal.
func (a *Automaton) MakeDeterministic() {
	if a.IsDeterministic() {
		return
	}

	start := stateSet(a.EpsilonClosure(a.initial))
	type queued struct {
		set  stateSet
		name StateID
	}
	seen := map[string]StateID{start.key(): "q0"}
	queue := []queued{{start, "q0"}}

	type newEdge struct {
		src, dst StateID
		sym      Symbol
	}
	var newEdges []newEdge
	var newStates []StateID
	newFinals := map[StateID]struct{}{}
	count := 1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		newStates = append(newStates, cur.name)
		if cur.set.intersects(a.finals) {
			newFinals[cur.name] = struct{}{}
		}

		for _, sym := range a.sortedAlphabet() {
			raw := a.delta(cur.set, sym)
			if len(raw) == 0 {
				continue
			}
			target := stateSet(a.epsilonClosureSet(raw))
			key := target.key()
			name, ok := seen[key]
			if !ok {
				name = StateID(fmt.Sprintf("q%d", count))
				count++
				seen[key] = name
				queue = append(queue, queued{target, name})
			}
			newEdges = append(newEdges, newEdge{cur.name, name, sym})
		}
	}

	a.states = nil
	a.present = make(map[StateID]struct{})
	a.edges = make(map[StateID][]Edge)
	a.alphabet = make(map[Symbol]int)
	a.finals = newFinals
	a.nextSuffix = make(map[StateID]int)

	for _, s := range newStates {
		a.addStateUnchecked(s)
	}
	a.initial = "q0"
	for _, e := range newEdges {
		_ = a.AddEdge(e.src, e.sym, e.dst)
	}
	a.deterministic = true
	a.dirty = false
}
