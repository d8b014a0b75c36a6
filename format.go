// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import (
	"bytes"
	"sort"

	"github.com/cznic/strutil"
)

var (
	isAcceptingL = map[bool]string{true: "["}
	isAcceptingR = map[bool]string{true: "]"}
	isStart      = map[bool]string{true: "->"}
	isSep        = map[bool]string{true: " "}
)

// String implements fmt.Stringer for debugging and test golden output: one
// line per state, "->" marking the initial state and "[...]" marking final
// states, followed by its outgoing edges on indented lines sorted by label.
func (a *Automaton) String() string {
	var b bytes.Buffer
	f := strutil.IndentFormatter(&b, "\t")
	for _, s := range a.states {
		f.Format("%s%s%s%s\n%i",
			isStart[s == a.initial],
			isAcceptingL[a.IsFinal(s)],
			s,
			isAcceptingR[a.IsFinal(s)],
		)

		edges := append([]Edge(nil), a.edges[s]...)
		sort.Slice(edges, func(i, j int) bool {
			if edges[i].Label != edges[j].Label {
				return edges[i].Label < edges[j].Label
			}
			return edges[i].Dest < edges[j].Dest
		})
		bySymbol := map[Symbol][]StateID{}
		var order []Symbol
		for _, e := range edges {
			if _, ok := bySymbol[e.Label]; !ok {
				order = append(order, e.Label)
			}
			bySymbol[e.Label] = append(bySymbol[e.Label], e.Dest)
		}
		for _, sym := range order {
			if sym == Epsilon {
				f.Format("ε -> ")
			} else {
				f.Format("%s -> ", labelString(sym))
			}
			for i, dst := range bySymbol[sym] {
				f.Format("%s%s", isSep[i > 0], dst)
			}
			f.Format("\n")
		}
		f.Format("%u")
	}
	return b.String()
}
