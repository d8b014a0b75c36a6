// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import "github.com/cznic/mathutil"

// Stats is a read-only snapshot of an automaton's size, for a caller (e.g.
// the external DSL's println) that wants a summary without parsing String's
// text dump.
type Stats struct {
	States        int
	Edges         int
	AlphabetSize  int
	Deterministic bool
	MaxOutDegree  int
}

// Stats returns a snapshot of the automaton's current size and shape.
func (a *Automaton) Stats() Stats {
	edgeCount := 0
	maxOut := 0
	for _, s := range a.states {
		n := len(a.edges[s])
		edgeCount += n
		maxOut = mathutil.Max(maxOut, n)
	}
	return Stats{
		States:        len(a.states),
		Edges:         edgeCount,
		AlphabetSize:  len(a.alphabet),
		Deterministic: a.IsDeterministic(),
		MaxOutDegree:  maxOut,
	}
}
