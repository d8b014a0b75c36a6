// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinimizePreservesLanguage(t *testing.T) {
	a := mustCompile(t, "a*bb*")
	words := []string{"", "a", "b", "ab", "abb", "aab", "aabb", "ba"}
	before := make(map[string]bool)
	for _, w := range words {
		before[w] = a.Accepts(word(w))
	}

	a.Minimize()
	require.True(t, a.IsDeterministic())
	require.True(t, a.IsTotal())

	for _, w := range words {
		require.Equal(t, before[w], a.Accepts(word(w)), "word %q", w)
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	a := mustCompile(t, "a*bb*|aa*bc*")
	a.Minimize()
	statesAfterFirst := len(a.States())

	a.Minimize()
	require.Equal(t, statesAfterFirst, len(a.States()))
}

func TestMinimizePrunesUnreachableStates(t *testing.T) {
	a := NewAutomaton("unreachable", "q0", []StateID{"q1", "ghost"})
	require.NoError(t, a.SetFinal("q1", true))
	require.NoError(t, a.AddEdge("q0", 'a', "q1"))
	require.NoError(t, a.AddEdge("q1", 'a', "q1"))
	// "ghost" has an edge but is never reachable from q0.
	require.NoError(t, a.AddEdge("ghost", 'a', "ghost"))

	a.Minimize()
	require.False(t, a.HasState("ghost"))
}
