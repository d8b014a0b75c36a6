// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import "sort"

func sortStateIDs(ids []StateID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func mustCompile(t interface{ Fatalf(string, ...interface{}) }, pattern string) *Automaton {
	a, err := CompileRegex(pattern)
	if err != nil {
		t.Fatalf("CompileRegex(%q): %v", pattern, err)
	}
	return a
}

func word(s string) []Symbol {
	out := make([]Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, Symbol(r))
	}
	return out
}
