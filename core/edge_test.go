// SPDX-License-Identifier: MIT
package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/specgraph/core"
	"github.com/katalvlaran/specgraph/ids"
)

// TestScenario_GenericEdgeBetweenSpecializedVertices covers an unregistered
// edge label connecting two specialized vertices.
func TestScenario_GenericEdgeBetweenSpecializedVertices(t *testing.T) {
	g := newPersonGraph(t)
	a := mustVertex(t, g, "Person", "name", "alice", "age", 30)
	b := mustVertex(t, g, "Person", "name", "bob", "age", 25)

	knows := mustEdge(t, a, "Knows", b)
	assert.False(t, knows.Specialized())

	assert.Equal(t, []ids.ID{b.ID()}, idsOf(a.Vertices(core.Out, "Knows")))
	assert.Equal(t, []ids.ID{a.ID()}, idsOf(b.Vertices(core.In, "Knows")))
	assert.Equal(t, [][2]any{{"name", "alice"}, {"age", 30}}, pairsOf(a.Properties()))
}

func TestScenario_SpecializedEdge(t *testing.T) {
	g := newPersonGraph(t)
	a := mustVertex(t, g, "Person", "name", "alice", "age", 30)
	b := mustVertex(t, g, "Person", "name", "bob", "age", 25)

	e := mustEdge(t, a, "Likes", b, "score", 5)
	assert.True(t, e.Specialized())
	assert.Equal(t, []string{"score"}, e.Keys())

	out := slices.Collect(a.Edges(core.Out, "Likes"))
	require.Len(t, out, 1)
	assert.Same(t, e, out[0])
	score, err := out[0].Value("score")
	require.NoError(t, err)
	assert.Equal(t, 5, score)

	in := slices.Collect(b.Edges(core.In, "Likes"))
	require.Len(t, in, 1)
	assert.Same(t, e, in[0])

	assert.Empty(t, slices.Collect(a.Edges(core.Out, "Unknown")))
	assert.Empty(t, slices.Collect(a.Edges(core.In, "Likes")))
	assert.Equal(t, 1, g.SpecializedEdgeCount())
}

func TestSpecializedEdge_UnrecognizedKeyAndMutation(t *testing.T) {
	g := newPersonGraph(t)
	a := mustVertex(t, g, "Person", "name", "alice")
	b := mustVertex(t, g, "Person", "name", "bob")
	e := mustEdge(t, a, "Likes", b, "score", 5, "weight", 0.5)

	_, err := e.Property("weight")
	assert.ErrorIs(t, err, core.ErrUnrecognizedKey)
	_, err = e.SetProperty("score", 6)
	assert.ErrorIs(t, err, core.ErrUnsupportedMutation)

	score, err := e.Value("score")
	require.NoError(t, err)
	assert.Equal(t, 5, score)
	assert.Equal(t, map[string][]any{"score": {5}}, core.ValueMap(e))
}

func TestAddEdge_Preconditions(t *testing.T) {
	g := newPersonGraph(t)
	a := mustVertex(t, g, "Person", "name", "alice")
	b := mustVertex(t, g, "Person", "name", "bob")

	_, err := a.AddEdge("Knows", nil)
	assert.ErrorIs(t, err, core.ErrNullTarget)

	other := newPersonGraph(t)
	stranger := mustVertex(t, other, "Person", "name", "mallory")
	_, err = a.AddEdge("Knows", stranger)
	assert.ErrorIs(t, err, core.ErrForeignElement)

	require.NoError(t, b.Remove())
	_, err = a.AddEdge("Knows", b)
	assert.ErrorIs(t, err, core.ErrElementRemoved)

	require.NoError(t, a.Remove())
	_, err = a.AddEdge("Knows", nil)
	assert.ErrorIs(t, err, core.ErrNullTarget, "null target is checked first")
	_, err = a.AddEdge("Knows", stranger)
	assert.ErrorIs(t, err, core.ErrSourceRemoved)

	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_DuplicateIDLeavesGraphUnchanged(t *testing.T) {
	for _, label := range []string{"Knows", "Likes"} {
		t.Run(label, func(t *testing.T) {
			g := newPersonGraph(t)
			a := mustVertex(t, g, "Person", "name", "alice")
			b := mustVertex(t, g, "Person", "name", "bob")

			first := mustEdge(t, a, label, b, core.TokenID, 7)
			assert.Equal(t, int64(7), first.ID())

			_, err := a.AddEdge(label, b, core.TokenID, int64(7))
			require.ErrorIs(t, err, core.ErrDuplicateID)
			_, err = b.AddEdge(label, a, core.TokenID, "7")
			require.ErrorIs(t, err, core.ErrDuplicateID)

			assert.Equal(t, 1, g.EdgeCount())
			assert.Equal(t, []ids.ID{int64(7)}, idsOf(g.Edges()))
			assert.Equal(t, []ids.ID{int64(7)}, idsOf(a.Edges(core.Both)))
			assert.Empty(t, idsOf(b.Edges(core.Out)))
		})
	}
}

func TestAddEdge_InvalidIdentifier(t *testing.T) {
	g := newPersonGraph(t)
	a := mustVertex(t, g, "Person", "name", "alice")

	_, err := a.AddEdge("Knows", a, core.TokenID, "not-a-number")
	assert.ErrorIs(t, err, core.ErrInvalidIdentifier)
	_, err = a.AddEdge("Knows", a, "odd")
	assert.ErrorIs(t, err, core.ErrInvalidKeyValues)
	_, err = a.AddEdge("Knows", a, 3, "x")
	assert.ErrorIs(t, err, core.ErrInvalidKeyValues)
	_, err = a.AddEdge("Knows", a, "weight", nil)
	assert.ErrorIs(t, err, core.ErrInvalidPropertyValue)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_MixedEndpointsRejected(t *testing.T) {
	g := newPersonGraph(t)
	require.NoError(t, g.Registry().RegisterVertex(core.VertexType{
		Label:   "Robot",
		Keys:    []string{"name"},
		Factory: newPerson,
	}))
	a := mustVertex(t, g, "Person", "name", "alice")
	plain := mustVertex(t, g, "thing")
	robot := mustVertex(t, g, "Robot", "name", "r2")

	cases := []struct {
		name    string
		out, in core.Vertex
	}{
		{"specialized to generic", a, plain},
		{"generic to specialized", plain, a},
		{"target type lacks in slot", a, robot},
		{"source type lacks out slot", robot, a},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.out.AddEdge("Likes", tc.in, "score", 1)
			require.ErrorIs(t, err, core.ErrUnsupportedEdgeType)
			assert.Equal(t, 0, g.EdgeCount())
			assert.Empty(t, idsOf(tc.out.Edges(core.Both)))
			assert.Empty(t, idsOf(tc.in.Edges(core.Both)))
		})
	}
}

func TestEdges_OrderAcrossLabelsAndDirections(t *testing.T) {
	g := newPersonGraph(t)
	a := mustVertex(t, g, "Person", "name", "alice")
	b := mustVertex(t, g, "Person", "name", "bob")

	k1 := mustEdge(t, a, "Knows", b)
	l1 := mustEdge(t, a, "Likes", b, "score", 1)
	k2 := mustEdge(t, b, "Knows", a)
	l2 := mustEdge(t, b, "Likes", a, "score", 2)
	k3 := mustEdge(t, a, "Knows", b)

	// requested label order is preserved; out precedes in per label
	assert.Equal(t, []ids.ID{k1.ID(), k3.ID(), k2.ID(), l1.ID(), l2.ID()},
		idsOf(a.Edges(core.Both, "Knows", "Likes")))
	assert.Equal(t, []ids.ID{l1.ID(), l2.ID(), k1.ID(), k3.ID(), k2.ID()},
		idsOf(a.Edges(core.Both, "Likes", "Knows")))

	// no labels: declared slots first, then generic labels by first use
	assert.Equal(t, []ids.ID{l1.ID(), l2.ID(), k1.ID(), k3.ID(), k2.ID()},
		idsOf(a.Edges(core.Both)))
	assert.Equal(t, []ids.ID{l1.ID(), k1.ID(), k3.ID()}, idsOf(a.Edges(core.Out)))
	assert.Equal(t, []ids.ID{l2.ID(), k2.ID()}, idsOf(a.Edges(core.In)))
}

// TestVertices_BothKeepsDuplicates pins the projection of BOTH: every matching
// edge contributes its out vertex then its in vertex, without deduplication.
func TestVertices_BothKeepsDuplicates(t *testing.T) {
	g := newPersonGraph(t)
	a := mustVertex(t, g, "Person", "name", "alice")
	b := mustVertex(t, g, "Person", "name", "bob")
	mustEdge(t, a, "Knows", b)
	mustEdge(t, a, "Knows", b)

	assert.Equal(t, []ids.ID{b.ID(), b.ID()}, idsOf(a.Vertices(core.Out, "Knows")))
	assert.Equal(t, []ids.ID{a.ID(), b.ID(), a.ID(), b.ID()}, idsOf(a.Vertices(core.Both, "Knows")))
	assert.Equal(t, []ids.ID{a.ID(), a.ID()}, idsOf(b.Vertices(core.In)))
}

func TestEdges_SinglePassAndRemovalDuringIteration(t *testing.T) {
	g := newPersonGraph(t)
	a := mustVertex(t, g, "Person", "name", "alice")
	b := mustVertex(t, g, "Person", "name", "bob")
	for i := 0; i < 4; i++ {
		mustEdge(t, a, "Likes", b, "score", i)
	}

	seen := 0
	for e := range a.Edges(core.Out, "Likes") {
		require.NoError(t, e.Remove())
		seen++
	}
	assert.Equal(t, 4, seen)
	assert.Empty(t, idsOf(a.Edges(core.Out)))
	assert.Empty(t, idsOf(b.Edges(core.In)))
	assert.Equal(t, 0, g.SpecializedEdgeCount())

	// stopping early is honored
	mustEdge(t, a, "Likes", b, "score", 9)
	mustEdge(t, a, "Likes", b, "score", 10)
	n := 0
	for range a.Edges(core.Out) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestEdgeRemove_Idempotent(t *testing.T) {
	g := newPersonGraph(t)
	a := mustVertex(t, g, "Person", "name", "alice")
	b := mustVertex(t, g, "thing")
	e := mustEdge(t, a, "Knows", b, "since", 2020)
	p, err := e.Property("since")
	require.NoError(t, err)

	require.NoError(t, e.Remove())
	require.NoError(t, e.Remove())
	assert.True(t, e.Removed())
	assert.True(t, p.Removed())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, idsOf(a.Edges(core.Both)))
	assert.Empty(t, idsOf(b.Edges(core.Both)))

	_, err = g.Edge(e.ID())
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestVertexRemove_CascadesEdges(t *testing.T) {
	g := newPersonGraph(t)
	a := mustVertex(t, g, "Person", "name", "alice")
	b := mustVertex(t, g, "Person", "name", "bob")
	c := mustVertex(t, g, "thing")
	mustEdge(t, a, "Likes", b, "score", 1)
	mustEdge(t, b, "Knows", a)
	mustEdge(t, a, "Knows", a)
	keep := mustEdge(t, b, "Knows", c)

	require.NoError(t, a.Remove())
	assert.Equal(t, []ids.ID{keep.ID()}, idsOf(g.Edges()))
	assert.Equal(t, []ids.ID{keep.ID()}, idsOf(b.Edges(core.Both)))
	assert.Equal(t, 0, g.SpecializedEdgeCount())
	assert.Equal(t, 2, g.VertexCount())
}

func TestGenericEdge_Properties(t *testing.T) {
	g := core.NewGraph(core.WithLogger(quietLogger()))
	a := mustVertex(t, g, "thing")
	b := mustVertex(t, g, "thing")
	e := mustEdge(t, a, "", b, "w", 1, "note", "x")

	assert.Equal(t, core.DefaultEdgeLabel, e.Label())
	assert.Same(t, a, e.OutVertex())
	assert.Same(t, b, e.InVertex())
	assert.Equal(t, []string{"w", "note"}, e.Keys())

	old, err := e.Property("w")
	require.NoError(t, err)
	fresh, err := e.SetProperty("w", 2)
	require.NoError(t, err)
	assert.True(t, old.Removed())
	assert.Equal(t, 2, fresh.Value())
	assert.Equal(t, []string{"w", "note"}, e.Keys(), "replacing keeps key order")

	require.NoError(t, fresh.Remove())
	assert.Equal(t, []string{"note"}, e.Keys())
	absent, err := e.Property("w")
	require.NoError(t, err)
	assert.False(t, absent.IsPresent())
	assert.Equal(t, "e[1][1-edge->2]", e.(interface{ String() string }).String())
}
