// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import (
	"fmt"

	"github.com/cznic/mathutil"
)

// Minimize mutates the automaton in place into the minimal DFA for its
// language: MakeDeterministic and MakeTotal first, then a reachability
// prune, then Moore-style partition refinement to a fixed point. Quotient
// states are named "q0", "q1", ... in BFS discovery order starting from the
// block containing the initial state. Dead states (no path to any final)
// are not pruned; only unreachable states are, per the specification.
func (a *Automaton) Minimize() {
	a.MakeDeterministic()
	a.MakeTotal()
	a.pruneUnreachable()

	alphabet := a.sortedAlphabet()
	blocks := a.initialPartition()
	blockOf := make(map[StateID]int)
	assign := func() {
		for bi, blk := range blocks {
			for _, s := range blk {
				blockOf[s] = bi
			}
		}
	}
	assign()

	for {
		changed := false
		var next [][]StateID
		for _, blk := range blocks {
			groups, order := splitBlock(a, blk, alphabet, blockOf)
			if len(order) == 1 {
				next = append(next, blk)
				continue
			}
			changed = true
			bestKey := order[0]
			for _, k := range order[1:] {
				if mathutil.Max(len(groups[k]), len(groups[bestKey])) != len(groups[bestKey]) {
					bestKey = k
				}
			}
			next = append(next, groups[bestKey])
			for _, k := range order {
				if k == bestKey {
					continue
				}
				next = append(next, groups[k])
			}
		}
		blocks = next
		assign()
		if !changed {
			break
		}
	}

	a.rebuildFromPartition(blocks, blockOf, alphabet)
}

// pruneUnreachable removes every state with no path from the initial state.
func (a *Automaton) pruneUnreachable() {
	reachable := a.reachableFrom(a.initial)
	for _, s := range append([]StateID(nil), a.states...) {
		if _, ok := reachable[s]; !ok {
			_ = a.RemoveState(s)
		}
	}
}

func (a *Automaton) initialPartition() [][]StateID {
	var finals, nonFinals []StateID
	for _, s := range a.states {
		if a.IsFinal(s) {
			finals = append(finals, s)
		} else {
			nonFinals = append(nonFinals, s)
		}
	}
	var blocks [][]StateID
	if len(finals) > 0 {
		blocks = append(blocks, finals)
	}
	if len(nonFinals) > 0 {
		blocks = append(blocks, nonFinals)
	}
	return blocks
}

// splitBlock partitions blk by the signature (block index of δ(s,sym) for
// each sym in alphabet, in order) and returns the resulting groups keyed by
// signature, plus the signatures in first-seen order.
func splitBlock(a *Automaton, blk []StateID, alphabet []Symbol, blockOf map[StateID]int) (map[string][]StateID, []string) {
	groups := make(map[string][]StateID)
	var order []string
	for _, s := range blk {
		sig := ""
		for _, sym := range alphabet {
			dst, _ := findDest(a, s, sym)
			sig += fmt.Sprintf("%d,", blockOf[dst])
		}
		if _, ok := groups[sig]; !ok {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], s)
	}
	return groups, order
}

func (a *Automaton) rebuildFromPartition(blocks [][]StateID, blockOf map[StateID]int, alphabet []Symbol) {
	names := make(map[int]StateID)
	var discovery []int
	count := 0
	startIdx := blockOf[a.initial]
	queue := []int{startIdx}
	names[startIdx] = "q0"
	count++
	for len(queue) > 0 {
		bi := queue[0]
		queue = queue[1:]
		discovery = append(discovery, bi)
		rep := blocks[bi][0]
		for _, sym := range alphabet {
			dst, _ := findDest(a, rep, sym)
			dbi := blockOf[dst]
			if _, ok := names[dbi]; !ok {
				names[dbi] = StateID(fmt.Sprintf("q%d", count))
				count++
				queue = append(queue, dbi)
			}
		}
	}
	for bi := range blocks {
		if _, ok := names[bi]; !ok {
			names[bi] = StateID(fmt.Sprintf("q%d", count))
			count++
			discovery = append(discovery, bi)
		}
	}

	newStates := make([]StateID, 0, len(blocks))
	newFinals := make(map[StateID]struct{})
	type newEdge struct {
		src, dst StateID
		sym      Symbol
	}
	var newEdges []newEdge

	for _, bi := range discovery {
		name := names[bi]
		newStates = append(newStates, name)
		rep := blocks[bi][0]
		if a.IsFinal(rep) {
			newFinals[name] = struct{}{}
		}
		for _, sym := range alphabet {
			dst, _ := findDest(a, rep, sym)
			dbi := blockOf[dst]
			newEdges = append(newEdges, newEdge{name, names[dbi], sym})
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
