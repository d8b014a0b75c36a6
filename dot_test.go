// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 6: DOT output of a two-state automaton q0 --a--> q1, q1 final.
func TestDOTScenario6(t *testing.T) {
	a := NewAutomaton("g", "q0", []StateID{"q1"})
	require.NoError(t, a.SetFinal("q1", true))
	require.NoError(t, a.AddEdge("q0", 'a', "q1"))

	out := a.DOT()
	require.Contains(t, out, "rankdir=LR;")
	require.Contains(t, out, "doublecircle]; q1")
	require.Contains(t, out, "q0 -> q1 [ label = a ];")
}

func TestDOTListsIsolatedStates(t *testing.T) {
	a := NewAutomaton("g", "q0", []StateID{"lonely"})
	out := a.DOT()
	require.Contains(t, out, "\tlonely;\n")
}

func TestDOTEpsilonEdgeHasNoLabel(t *testing.T) {
	a := NewAutomaton("g", "q0", []StateID{"q1"})
	require.NoError(t, a.AddEdge("q0", Epsilon, "q1"))
	out := a.DOT()
	require.True(t, strings.Contains(out, "q0 -> q1;\n"))
	require.False(t, strings.Contains(out, "q0 -> q1 [ label"))
}
