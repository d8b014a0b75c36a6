// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 2 from the specification: determinism transitions as edges are
// added and removed.
func TestAddEdgeRemoveEdgeDeterminism(t *testing.T) {
	a := NewAutomaton("ex2", "init", []StateID{"q1", "q2", "q3"})
	require.True(t, a.IsDeterministic())

	require.NoError(t, a.AddEdge("q1", 'a', "q2"))
	require.True(t, a.IsDeterministic())

	require.NoError(t, a.AddEdge("q1", 'a', "q3"))
	require.False(t, a.IsDeterministic())

	require.NoError(t, a.AddEdge("q1", Epsilon, "q3"))
	require.False(t, a.IsDeterministic())

	require.NoError(t, a.RemoveEdge("q1", 'a', "q3"))
	require.NoError(t, a.RemoveEdge("q1", Epsilon, "q3"))
	require.True(t, a.IsDeterministic())
}

func TestAddEdgesChain(t *testing.T) {
	a := NewAutomaton("ex2b", "init", []StateID{"q1", "q2"})
	require.Equal(t, 3, len(a.States()))

	intermediates, err := a.AddEdges("q1", []Symbol{'a', 'b', 'c'}, "q2")
	require.NoError(t, err)
	require.Len(t, intermediates, 2)
	require.Equal(t, StateID("q1_1"), intermediates[0])
	require.Equal(t, StateID("q1_2"), intermediates[1])
	require.Len(t, a.States(), 5)

	require.True(t, a.hasEdge("q1", 'a', "q1_1"))
	require.True(t, a.hasEdge("q1_1", 'b', "q1_2"))
	require.True(t, a.hasEdge("q1_2", 'c', "q2"))
}

func TestAddStateDuplicate(t *testing.T) {
	a := NewAutomaton("dup", "q0", nil)
	require.NoError(t, a.AddState("q1"))
	err := a.AddState("q1")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDuplicateElement))
}

func TestAddEdgeNoSuchNode(t *testing.T) {
	a := NewAutomaton("missing", "q0", nil)
	err := a.AddEdge("ghost", 'a', "q0")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoSuchNode))
}

func TestAddEdgeDuplicateEdge(t *testing.T) {
	a := NewAutomaton("dupedge", "q0", []StateID{"q1"})
	require.NoError(t, a.AddEdge("q0", 'a', "q1"))
	err := a.AddEdge("q0", 'a', "q1")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDuplicateElement))
}

func TestRemoveEdgeNoSuchEdge(t *testing.T) {
	a := NewAutomaton("noedge", "q0", []StateID{"q1"})
	err := a.RemoveEdge("q0", 'a', "q1")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoSuchEdge))
}

func TestAddEdgeCreatesMissingDest(t *testing.T) {
	a := NewAutomaton("autocreate", "q0", nil)
	require.NoError(t, a.AddEdge("q0", 'a', "q1"))
	require.True(t, a.HasState("q1"))
}

func TestRemoveStateRejectsInitial(t *testing.T) {
	a := NewAutomaton("protectinit", "q0", []StateID{"q1"})
	err := a.RemoveState("q0")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidAutomaton))
}

func TestRemoveStateCleansEdgesAndAlphabet(t *testing.T) {
	a := NewAutomaton("cleanup", "q0", []StateID{"q1", "q2"})
	require.NoError(t, a.AddEdge("q0", 'a', "q1"))
	require.NoError(t, a.AddEdge("q1", 'b', "q2"))
	require.NoError(t, a.AddEdge("q2", 'a', "q1"))

	require.NoError(t, a.RemoveState("q1"))
	require.False(t, a.HasState("q1"))
	require.Empty(t, a.Edges("q0"))
	require.Empty(t, a.Edges("q2"))
	require.NotContains(t, a.Alphabet(), Symbol('b'))
	require.NotContains(t, a.Alphabet(), Symbol('a'))
}

func TestAlphabetRefcounting(t *testing.T) {
	a := NewAutomaton("refcount", "q0", []StateID{"q1", "q2"})
	require.NoError(t, a.AddEdge("q0", 'a', "q1"))
	require.NoError(t, a.AddEdge("q1", 'a', "q2"))
	require.Contains(t, a.Alphabet(), Symbol('a'))

	require.NoError(t, a.RemoveEdge("q0", 'a', "q1"))
	require.Contains(t, a.Alphabet(), Symbol('a'))

	require.NoError(t, a.RemoveEdge("q1", 'a', "q2"))
	require.NotContains(t, a.Alphabet(), Symbol('a'))
}
