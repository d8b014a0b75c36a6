// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import "fmt"

// Intersect returns a fresh total DFA recognizing the intersection of the
// languages of first and rest (product construction, folded pairwise left
// to right over three or more operands). Every operand is determinized and
// totalized on a private copy; none of them is modified. Product states are
// pairs (sa, sb) reachable from (initial_a, initial_b), renamed "q0", "q1",
// ... in BFS discovery order; a product state is final iff both components
// are. Each operand is totalized against the union of both operands'
// alphabets (not just its own), so a symbol only one side actually uses
// still routes the other side to its sink instead of leaving that product
// transition undefined; the result is a complete DFA over that union.
func Intersect(first *Automaton, rest ...*Automaton) *Automaton {
	result := first.Clone()
	result.MakeDeterministic()
	result.MakeTotal()

	for _, b := range rest {
		result = intersectPair(result, b)
	}
	return result
}

func intersectPair(a, b *Automaton) *Automaton {
	a = a.Clone()
	b = b.Clone()
	a.MakeDeterministic()
	b.MakeDeterministic()
	alphabet := unionAlphabet(a, b)
	a.makeTotalOver(alphabet)
	b.makeTotalOver(alphabet)

	type pair struct{ sa, sb StateID }
	key := func(p pair) string { return string(p.sa) + "\x00" + string(p.sb) }

	start := pair{a.initial, b.initial}
	names := map[string]StateID{key(start): "q0"}
	queue := []pair{start}
	count := 1

	out := &Automaton{
		name:          fmt.Sprintf("intersect(%s,%s)", a.name, b.name),
		present:       make(map[StateID]struct{}),
		finals:        make(map[StateID]struct{}),
		edges:         make(map[StateID][]Edge),
		alphabet:      make(map[Symbol]int),
		deterministic: true,
		deadStateName: "_error",
		nextSuffix:    make(map[StateID]int),
	}
	out.addStateUnchecked(names[key(start)])
	out.initial = names[key(start)]

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curName := names[key(cur)]

		if a.IsFinal(cur.sa) && b.IsFinal(cur.sb) {
			out.finals[curName] = struct{}{}
		}

		for _, sym := range alphabet {
			na, oka := findDest(a, cur.sa, sym)
			nb, okb := findDest(b, cur.sb, sym)
			if !oka || !okb {
				continue
			}
			next := pair{na, nb}
			nk := key(next)
			name, ok := names[nk]
			if !ok {
				name = StateID(fmt.Sprintf("q%d", count))
				count++
				names[nk] = name
				out.addStateUnchecked(name)
				queue = append(queue, next)
			}
			_ = out.AddEdge(curName, sym, name)
		}
	}

	out.deterministic = true
	out.dirty = false
	return out
}

func unionAlphabet(a, b *Automaton) []Symbol {
	seen := map[Symbol]struct{}{}
	for _, s := range a.Alphabet() {
		seen[s] = struct{}{}
	}
	for _, s := range b.Alphabet() {
		seen[s] = struct{}{}
	}
	out := make([]Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sortSymbols(out)
	return out
}

func findDest(a *Automaton, s StateID, sym Symbol) (StateID, bool) {
	for _, e := range a.edges[s] {
		if e.Label == sym {
			return e.Dest, true
		}
	}
	return "", false
}
