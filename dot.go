// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import (
	"bytes"
	"fmt"
)

// DOT renders the automaton as a Graphviz "digraph" string: left-to-right
// layout, double-circle nodes for finals, single-circle for the rest,
// ε-edges without a label attribute, and isolated states (no in- and no
// out-edges) listed explicitly so they are not silently dropped by
// Graphviz. A pure string producer; it performs no I/O.
func (a *Automaton) DOT() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "digraph %s {\n", a.name)
	b.WriteString("\trankdir=LR;\n")

	if finals := a.Finals(); len(finals) > 0 {
		b.WriteString("\tnode [shape = doublecircle]; ")
		for i, f := range finals {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(string(f))
		}
		b.WriteString(";\n")
	}
	b.WriteString("\tnode [shape = circle];\n")

	hasIncoming := make(map[StateID]bool)
	for _, s := range a.states {
		for _, e := range a.edges[s] {
			hasIncoming[e.Dest] = true
		}
	}
	for _, s := range a.states {
		if len(a.edges[s]) == 0 && !hasIncoming[s] {
			fmt.Fprintf(&b, "\t%s;\n", s)
		}
	}

	for _, s := range a.states {
		for _, e := range a.edges[s] {
			if e.isEpsilon() {
				fmt.Fprintf(&b, "\t%s -> %s;\n", s, e.Dest)
			} else {
				fmt.Fprintf(&b, "\t%s -> %s [ label = %s ];\n", s, e.Dest, labelString(e.Label))
			}
		}
	}

	b.WriteString("}\n")
	return b.String()
}
