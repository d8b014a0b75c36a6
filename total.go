// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

// IsTotal reports whether δ is defined for every (state, symbol) pair in the
// current alphabet: every state has at least one outgoing edge for every
// active symbol. It does not check that the edge is unique.
func (a *Automaton) IsTotal() bool {
	alphabet := a.Alphabet()
	for _, s := range a.states {
		have := map[Symbol]struct{}{}
		for _, e := range a.edges[s] {
			have[e.Label] = struct{}{}
		}
		for _, sym := range alphabet {
			if _, ok := have[sym]; !ok {
				return false
			}
		}
	}
	return true
}

// MakeTotal completes the automaton so δ is defined for every (state,
// symbol) pair in the current alphabet: any state missing an outgoing edge
// for some symbol gets one to a shared sink (named by WithDeadStateName,
// "_error" by default). The sink is created only if actually needed, is
// never final, and self-loops on every alphabet symbol.
func (a *Automaton) MakeTotal() {
	a.makeTotalOver(a.sortedAlphabet())
}

// makeTotalOver totalizes against an explicit symbol set rather than the
// automaton's own alphabet. Intersect uses this to totalize each operand
// over the union of both operands' alphabets, so a symbol only one side
// actually uses still routes the other side to its sink instead of leaving
// the product transition undefined.
func (a *Automaton) makeTotalOver(alphabet []Symbol) {
	if len(alphabet) == 0 {
		return
	}

	var sink StateID
	haveSink := false
	ensureSink := func() StateID {
		if !haveSink {
			sink = a.deadStateName
			if a.HasState(sink) {
				sink = a.freshStateName(sink)
			}
			a.addStateUnchecked(sink)
			haveSink = true
		}
		return sink
	}

	for _, s := range a.states {
		have := map[Symbol]struct{}{}
		for _, e := range a.edges[s] {
			have[e.Label] = struct{}{}
		}
		for _, sym := range alphabet {
			if _, ok := have[sym]; ok {
				continue
			}
			dst := ensureSink()
			_ = a.AddEdge(s, sym, dst)
		}
	}

	if haveSink {
		for _, sym := range alphabet {
			if !a.hasEdge(sink, sym, sink) {
				_ = a.AddEdge(sink, sym, sink)
			}
		}
	}
}
