// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

// Complement mutates the automaton in place to accept the complement
// language. It first determinizes and totalizes (both no-ops if already
// satisfied), then flips every state's final/non-final status. Correctness
// depends on totality: an automaton with an omitted transition implicitly
// rejects on that transition, and flipping finals without totalizing first
// would silently keep that implicit rejection instead of turning it into
// acceptance.
func (a *Automaton) Complement() {
	a.MakeDeterministic()
	a.MakeTotal()
	a.flipFinals()
}

// flipFinals replaces finals with its complement within the current state
// set. Factored out of Complement so callers that need to totalize over an
// alphabet wider than the receiver's own (e.g. Equivalent, comparing two
// automata with different alphabets) can do so before flipping.
func (a *Automaton) flipFinals() {
	flipped := make(map[StateID]struct{})
	for _, s := range a.states {
		if !a.IsFinal(s) {
			flipped[s] = struct{}{}
		}
	}
	a.finals = flipped
}
