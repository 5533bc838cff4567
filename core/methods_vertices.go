// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & catalog queries.
//
// Determinism:
//   - Vertices() yields in insertion order.
//
// Concurrency:
//   - None. Callers serialize access to a Graph.
package core

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/katalvlaran/specgraph/ids"
)

// AddVertex creates a vertex of label from an alternating key/value list.
//
// Implementation:
//   - Stage 1: Parse keyValues; TokenID carries an explicit identifier.
//   - Stage 2: Convert the explicit ID or draw the next free one; reject duplicates.
//   - Stage 3: If label is registered, build field storage through the factory,
//     passing only the recognized keys. Otherwise build a generic vertex and
//     apply every pair with the graph's creation cardinality.
//   - Stage 4: Insert into the catalog and the value index.
//
// Behavior highlights:
//   - Empty label means DefaultVertexLabel.
//   - Keys outside a specialized label's key set are dropped silently.
//   - On error the graph is unchanged.
//
// Errors:
//   - ErrGraphClosed, ErrInvalidKeyValues, ErrInvalidIdentifier, ErrDuplicateID,
//     ErrInvalidPropertyValue, or the factory's error.
//
// Complexity:
//   - Time O(k) for k pairs plus the factory cost.
func (g *Graph) AddVertex(label string, keyValues ...any) (Vertex, error) {
	if label == "" {
		label = DefaultVertexLabel
	}
	v, err := g.addVertex(label, keyValues)
	if err != nil {
		recordRejected(kindVertex, err)
		g.logger.Debug("vertex rejected", slog.String("label", label), slog.Any("error", err))
		return nil, fmt.Errorf("AddVertex(%q): %w", label, err)
	}
	recordCreated(kindVertex, v.Specialized())
	g.logger.Debug("vertex added",
		slog.Any("id", v.ID()),
		slog.String("label", label),
		slog.Bool("specialized", v.Specialized()))

	return v, nil
}

func (g *Graph) addVertex(label string, keyValues []any) (Vertex, error) {
	if g.closed {
		return nil, ErrGraphClosed
	}
	b, err := parseKeyValues(keyValues)
	if err != nil {
		return nil, err
	}
	id, err := resolveID(g.vertexIDs, b.id, g.hasVertex)
	if err != nil {
		return nil, err
	}

	if typ, ok := g.registry.ResolveVertex(label); ok {
		fields, err := typ.Factory(id, b.restrict(typ.codes))
		if err != nil {
			return nil, fmt.Errorf("factory %q: %w", label, err)
		}
		if fields == nil {
			return nil, fmt.Errorf("factory %q returned nil fields: %w", label, ErrInvalidSchema)
		}
		v := newSpecializedVertex(g, id, typ, fields)
		g.vertices.Set(id, v)
		g.specializedVertices++
		g.index.indexVertex(v)

		return v, nil
	}

	for _, p := range b.pairs {
		if p.value == nil {
			return nil, fmt.Errorf("key %q: nil value: %w", p.key, ErrInvalidPropertyValue)
		}
	}
	v := newGenericVertex(g, id, label)
	g.vertices.Set(id, v)
	for _, p := range b.pairs {
		if _, err := v.SetProperty(g.cardinality, p.key, p.value); err != nil {
			_ = g.removeVertex(v)
			return nil, err
		}
	}

	return v, nil
}

// resolveID converts raw through m, or draws a fresh ID when raw is nil.
func resolveID(m ids.Manager, raw any, inUse ids.InUseFunc) (ids.ID, error) {
	if raw == nil {
		return m.NextID(inUse), nil
	}
	id, err := m.Convert(raw)
	if err != nil {
		return nil, err
	}
	if inUse(id) {
		return nil, fmt.Errorf("id %v: %w", id, ErrDuplicateID)
	}

	return id, nil
}

func (g *Graph) hasVertex(id ids.ID) bool {
	_, ok := g.vertices.Get(id)
	return ok
}

// Vertex looks a vertex up by raw identifier.
//
// Errors: ErrInvalidIdentifier, ErrVertexNotFound.
func (g *Graph) Vertex(raw any) (Vertex, error) {
	id, err := g.vertexIDs.Convert(raw)
	if err != nil {
		return nil, fmt.Errorf("Vertex(%v): %w", raw, err)
	}
	if v, ok := g.vertices.Get(id); ok {
		return v, nil
	}

	return nil, fmt.Errorf("Vertex(%v): %w", raw, ErrVertexNotFound)
}

// Vertices yields every vertex in insertion order.
func (g *Graph) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for p := g.vertices.Oldest(); p != nil; {
			next := p.Next()
			if !yield(p.Value) {
				return
			}
			p = next
		}
	}
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return g.vertices.Len() }

// SpecializedVertexCount returns the number of vertices with fixed-field storage.
func (g *Graph) SpecializedVertexCount() int { return g.specializedVertices }

// RemoveVertex removes the vertex with the given raw identifier.
func (g *Graph) RemoveVertex(raw any) error {
	v, err := g.Vertex(raw)
	if err != nil {
		return err
	}

	return g.removeVertex(v)
}

// removeVertex detaches v and every incident edge.
//
// Implementation:
//   - Stage 1: Remove incident edges (collected first; removal edits adjacency).
//   - Stage 2: Drop v's entries from the value index while properties are readable.
//   - Stage 3: Delete from the catalog and mark v and its properties removed.
//
// Idempotent.
func (g *Graph) removeVertex(v Vertex) error {
	if v.Removed() {
		return nil
	}
	if v.Graph() != g {
		return fmt.Errorf("remove %v: %w", v.ID(), ErrForeignElement)
	}
	for _, e := range slices.Collect(v.Edges(Both)) {
		if err := g.removeEdge(e); err != nil {
			return err
		}
	}
	g.index.unindexVertex(v)
	g.vertices.Delete(v.ID())
	if v.Specialized() {
		g.specializedVertices--
	}
	v.markRemoved()

	recordRemoved(kindVertex, v.Specialized())
	g.logger.Debug("vertex removed", slog.Any("id", v.ID()), slog.String("label", v.Label()))

	return nil
}
