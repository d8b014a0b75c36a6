// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

// Accepts reports whether w is in the automaton's language. Starting from
// the ε-closure of the initial state, it advances the current state set by
// each symbol of w in turn and re-closes under ε, returning true iff the
// final state set intersects the finals. Works directly on NFAs with
// ε-edges; does not require prior determinization.
func (a *Automaton) Accepts(w []Symbol) bool {
	cur := stateSet(a.EpsilonClosure(a.initial))
	for _, sym := range w {
		raw := a.delta(cur, sym)
		if len(raw) == 0 {
			return false
		}
		cur = stateSet(a.epsilonClosureSet(raw))
	}
	return cur.intersects(a.finals)
}

// IsEmpty reports whether the automaton's language is empty: no final state
// is reachable from the initial state. A plain reachability test over every
// edge (ε or labeled) suffices; no determinization is required.
func (a *Automaton) IsEmpty() bool {
	for s := range a.reachableFrom(a.initial) {
		if a.IsFinal(s) {
			return false
		}
	}
	return true
}

// Equivalent reports whether a and b accept the same language. It builds the
// symmetric difference intersect(a, complement(b)) ∪ intersect(complement(a),
// b) and tests it for emptiness; neither a nor b is modified.
//
// Both complements are taken over the union of a's and b's alphabets, not
// each operand's own: complementing b over an alphabet missing a's symbols
// would route those symbols to a non-final sink that Intersect's later
// re-totalization then treats as rejecting, silently shrinking ¬L(b) to
// miss words outside b's own alphabet and making two automata over
// different alphabets compare equivalent when they are not.
func Equivalent(a, b *Automaton) bool {
	alphabet := unionAlphabet(a, b)

	notB := b.Clone()
	notB.MakeDeterministic()
	notB.makeTotalOver(alphabet)
	notB.flipFinals()

	notA := a.Clone()
	notA.MakeDeterministic()
	notA.makeTotalOver(alphabet)
	notA.flipFinals()

	left := Intersect(a, notB)
	right := Intersect(notA, b)
	diff := Union(left, right)
	return diff.IsEmpty()
}
