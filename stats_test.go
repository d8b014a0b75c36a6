// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatsOnRawNFA(t *testing.T) {
	a := NewAutomaton("nfa", "q0", []StateID{"q1", "q2"})
	require.NoError(t, a.SetFinal("q2", true))
	require.NoError(t, a.AddEdge("q0", 'a', "q1"))
	require.NoError(t, a.AddEdge("q0", 'b', "q1"))
	require.NoError(t, a.AddEdge("q1", 'a', "q2"))

	s := a.Stats()
	require.Equal(t, 3, s.States)
	require.Equal(t, 3, s.Edges)
	require.Equal(t, 2, s.AlphabetSize)
	require.True(t, s.Deterministic) // no state repeats a label and there are no ε-edges
	require.Equal(t, 2, s.MaxOutDegree)
}

func TestStatsAfterMinimize(t *testing.T) {
	a := mustCompile(t, "a*bb*")
	a.Minimize()
	s := a.Stats()
	require.True(t, s.Deterministic)
	require.Equal(t, len(a.States()), s.States)
}
