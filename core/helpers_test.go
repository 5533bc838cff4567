// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/specgraph/core"
	"github.com/katalvlaran/specgraph/ids"
)

// Person field codes follow the key order registered below.
const (
	personName = iota
	personAge
)

// person is a fixed-field record for the "Person" label.
type person struct {
	name string
	age  int
	set  [2]bool
}

func (p *person) Field(code int) (any, bool) {
	if code < 0 || code >= len(p.set) || !p.set[code] {
		return nil, false
	}
	if code == personName {
		return p.name, true
	}
	return p.age, true
}

func newPerson(_ ids.ID, values map[string]any) (core.Fields, error) {
	p := &person{}
	if v, ok := values["name"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("name: %T: %w", v, core.ErrInvalidPropertyValue)
		}
		p.name, p.set[personName] = s, true
	}
	if v, ok := values["age"]; ok {
		n, ok := v.(int)
		if !ok {
			return nil, fmt.Errorf("age: %T: %w", v, core.ErrInvalidPropertyValue)
		}
		p.age, p.set[personAge] = n, true
	}

	return p, nil
}

// likes is a fixed-field record for the "Likes" edge label.
type likes struct {
	score int
	ok    bool
}

func (l *likes) Field(code int) (any, bool) {
	if code == 0 && l.ok {
		return l.score, true
	}
	return nil, false
}

func newLikes(_ ids.ID, _, _ core.Vertex, values map[string]any) (core.Fields, error) {
	l := &likes{}
	if v, ok := values["score"]; ok {
		n, ok := v.(int)
		if !ok {
			return nil, fmt.Errorf("score: %T: %w", v, core.ErrInvalidPropertyValue)
		}
		l.score, l.ok = n, true
	}

	return l, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newPersonGraph returns a graph with Person vertices and Likes edges registered.
func newPersonGraph(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(append([]core.GraphOption{core.WithLogger(quietLogger())}, opts...)...)
	require.NoError(t, g.Registry().RegisterVertex(core.VertexType{
		Label:         "Person",
		Keys:          []string{"name", "age"},
		OutEdgeLabels: []string{"Likes"},
		InEdgeLabels:  []string{"Likes"},
		Factory:       newPerson,
	}))
	require.NoError(t, g.Registry().RegisterEdge(core.EdgeType{
		Label:   "Likes",
		Keys:    []string{"score"},
		Factory: newLikes,
	}))

	return g
}

func mustVertex(t *testing.T, g *core.Graph, label string, kv ...any) core.Vertex {
	t.Helper()
	v, err := g.AddVertex(label, kv...)
	require.NoError(t, err)

	return v
}

func mustEdge(t *testing.T, out core.Vertex, label string, in core.Vertex, kv ...any) core.Edge {
	t.Helper()
	e, err := out.AddEdge(label, in, kv...)
	require.NoError(t, err)

	return e
}

// idsOf drains a sequence of elements into their IDs.
func idsOf[E core.Element](s iter.Seq[E]) []ids.ID {
	var out []ids.ID
	for e := range s {
		out = append(out, e.ID())
	}

	return out
}

// pairsOf drains properties into key/value pairs, absent ones as nil.
func pairsOf(s iter.Seq[*core.Property]) [][2]any {
	var out [][2]any
	for p := range s {
		out = append(out, [2]any{p.Key(), p.Value()})
	}

	return out
}
