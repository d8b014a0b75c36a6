// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

// EpsilonClosure returns the smallest set containing s and every state
// reachable from s through ε-edges only. Runs in O(|states|+|ε-edges|) via a
// worklist over a visited set.
func (a *Automaton) EpsilonClosure(s StateID) map[StateID]struct{} {
	return a.epsilonClosureSet(map[StateID]struct{}{s: {}})
}

// EpsilonClosureSet returns the ε-closure of the union of the given states.
func (a *Automaton) EpsilonClosureSet(states map[StateID]struct{}) map[StateID]struct{} {
	return a.epsilonClosureSet(states)
}

func (a *Automaton) epsilonClosureSet(seed map[StateID]struct{}) map[StateID]struct{} {
	closure := make(map[StateID]struct{}, len(seed))
	queue := make([]StateID, 0, len(seed))
	for s := range seed {
		closure[s] = struct{}{}
		queue = append(queue, s)
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, e := range a.edges[s] {
			if !e.isEpsilon() {
				continue
			}
			if _, ok := closure[e.Dest]; !ok {
				closure[e.Dest] = struct{}{}
				queue = append(queue, e.Dest)
			}
		}
	}
	return closure
}

// IsDeterministic reports whether the automaton is currently deterministic:
// no state has an ε-out-edge, and no state has two out-edges sharing a
// label. The result is cached; a dirty cache (set by RemoveEdge on a
// non-deterministic automaton) is recomputed here by a full scan and then
// cleared.
func (a *Automaton) IsDeterministic() bool {
	if !a.dirty {
		return a.deterministic
	}
	a.deterministic = a.scanDeterministic()
	a.dirty = false
	return a.deterministic
}

func (a *Automaton) scanDeterministic() bool {
	for _, s := range a.states {
		seen := make(map[Symbol]struct{})
		for _, e := range a.edges[s] {
			if e.isEpsilon() {
				return false
			}
			if _, ok := seen[e.Label]; ok {
				return false
			}
			seen[e.Label] = struct{}{}
		}
	}
	return true
}
