// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge-creation protocol, edge removal & catalog queries.
//
// Determinism:
//   - Edges() yields in insertion order.
//
// AI-Hints (file):
//   - Every rejection happens before any catalog or adjacency write, so a
//     failed AddEdge leaves the graph unchanged.
package core

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/specgraph/ids"
)

// AddEdge creates an edge out -label-> in.
//
// Implementation:
//   - Stage 1: Reject a nil target (typed nil included), a removed source, a
//     removed or foreign target.
//   - Stage 2: Parse keyValues; convert an explicit TokenID identifier and
//     reject duplicates.
//   - Stage 3: If label is a registered edge type, both endpoints must be
//     specialized vertices declaring label in their out and in slots
//     respectively. The factory receives the recognized keys only; the edge
//     is then inserted and recorded on both endpoints.
//   - Stage 4: Otherwise build a generic edge and record it in the label
//     adjacency of both endpoints.
//
// Errors:
//   - ErrNullTarget, ErrSourceRemoved, ErrElementRemoved, ErrForeignElement,
//     ErrInvalidKeyValues, ErrInvalidIdentifier, ErrDuplicateID,
//     ErrUnsupportedEdgeType, ErrInvalidPropertyValue, ErrGraphClosed, or the
//     factory's error.
//
// Complexity:
//   - Time O(k) for k pairs plus the factory cost.
func (g *Graph) AddEdge(out Vertex, label string, in Vertex, keyValues ...any) (Edge, error) {
	if label == "" {
		label = DefaultEdgeLabel
	}
	e, err := g.addEdge(out, label, in, keyValues)
	if err != nil {
		recordRejected(kindEdge, err)
		g.logger.Debug("edge rejected", slog.String("label", label), slog.Any("error", err))
		return nil, fmt.Errorf("AddEdge(%q): %w", label, err)
	}
	recordCreated(kindEdge, e.Specialized())
	g.logger.Debug("edge added",
		slog.Any("id", e.ID()),
		slog.String("label", label),
		slog.Any("out", out.ID()),
		slog.Any("in", in.ID()),
		slog.Bool("specialized", e.Specialized()))

	return e, nil
}

func (g *Graph) addEdge(out Vertex, label string, in Vertex, keyValues []any) (Edge, error) {
	if g.closed {
		return nil, ErrGraphClosed
	}
	if in == nil || in.IsNil() {
		return nil, ErrNullTarget
	}
	if out == nil || out.IsNil() || out.Removed() {
		return nil, ErrSourceRemoved
	}
	if in.Removed() {
		return nil, fmt.Errorf("target %v: %w", in.ID(), ErrElementRemoved)
	}
	if out.Graph() != g || in.Graph() != g {
		return nil, ErrForeignElement
	}

	b, err := parseKeyValues(keyValues)
	if err != nil {
		return nil, err
	}
	var id ids.ID
	if b.id != nil {
		if id, err = resolveID(g.edgeIDs, b.id, g.hasEdge); err != nil {
			return nil, err
		}
	}

	if typ, ok := g.registry.ResolveEdge(label); ok {
		return g.addSpecializedEdge(typ, id, out, in, b)
	}

	return g.addGenericEdge(label, id, out, in, b)
}

func (g *Graph) addSpecializedEdge(typ *EdgeType, id ids.ID, out, in Vertex, b bag) (Edge, error) {
	tail, ok := out.(SpecializedVertex)
	if !ok || !tail.Type().HoldsOut(typ.Label) {
		return nil, fmt.Errorf("out vertex %v cannot hold %q: %w", out.ID(), typ.Label, ErrUnsupportedEdgeType)
	}
	head, ok := in.(SpecializedVertex)
	if !ok || !head.Type().HoldsIn(typ.Label) {
		return nil, fmt.Errorf("in vertex %v cannot hold %q: %w", in.ID(), typ.Label, ErrUnsupportedEdgeType)
	}

	if id == nil {
		id = g.edgeIDs.NextID(g.hasEdge)
	}
	fields, err := typ.Factory(id, out, in, b.restrict(typ.codes))
	if err != nil {
		return nil, fmt.Errorf("factory %q: %w", typ.Label, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("factory %q returned nil fields: %w", typ.Label, ErrInvalidSchema)
	}

	e := newSpecializedEdge(g, id, typ, out, in, fields)
	if err = tail.AddSpecializedOutEdge(e); err != nil {
		return nil, err
	}
	if err = head.AddSpecializedInEdge(e); err != nil {
		g.unlinkSpecialized(e)
		return nil, err
	}
	g.edges.Set(id, e)
	g.specializedEdges++

	return e, nil
}

func (g *Graph) addGenericEdge(label string, id ids.ID, out, in Vertex, b bag) (Edge, error) {
	for _, p := range b.pairs {
		if p.value == nil {
			return nil, fmt.Errorf("key %q: nil value: %w", p.key, ErrInvalidPropertyValue)
		}
	}
	if id == nil {
		id = g.edgeIDs.NextID(g.hasEdge)
	}

	e := newGenericEdge(g, id, label, out, in)
	for _, p := range b.pairs {
		e.attach(p.key, p.value)
	}
	g.edges.Set(id, e)
	out.base().out.add(label, e)
	in.base().in.add(label, e)

	return e, nil
}

func (g *Graph) hasEdge(id ids.ID) bool {
	_, ok := g.edges.Get(id)
	return ok
}

// unlinkSpecialized drops e from the slot adjacency of both endpoints.
func (g *Graph) unlinkSpecialized(e *specializedEdge) {
	if sv, ok := e.out.(*specializedVertex); ok {
		if slot, ok := sv.typ.outSlots[e.label]; ok {
			sv.outTyped.remove(slot, e.id)
		}
	}
	if sv, ok := e.in.(*specializedVertex); ok {
		if slot, ok := sv.typ.inSlots[e.label]; ok {
			sv.inTyped.remove(slot, e.id)
		}
	}
}

// Edge looks an edge up by raw identifier.
//
// Errors: ErrInvalidIdentifier, ErrEdgeNotFound.
func (g *Graph) Edge(raw any) (Edge, error) {
	id, err := g.edgeIDs.Convert(raw)
	if err != nil {
		return nil, fmt.Errorf("Edge(%v): %w", raw, err)
	}
	if e, ok := g.edges.Get(id); ok {
		return e, nil
	}

	return nil, fmt.Errorf("Edge(%v): %w", raw, ErrEdgeNotFound)
}

// Edges yields every edge in insertion order.
func (g *Graph) Edges() iter.Seq[Edge] {
	return edgesOf(g.edges)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return g.edges.Len() }

// SpecializedEdgeCount returns the number of edges with fixed-field storage.
func (g *Graph) SpecializedEdgeCount() int { return g.specializedEdges }

// RemoveEdge removes the edge with the given raw identifier.
func (g *Graph) RemoveEdge(raw any) error {
	e, err := g.Edge(raw)
	if err != nil {
		return err
	}

	return g.removeEdge(e)
}

// removeEdge detaches e from both endpoints and the catalog. Idempotent.
func (g *Graph) removeEdge(e Edge) error {
	if e.Removed() {
		return nil
	}
	if e.Graph() != g {
		return fmt.Errorf("remove %v: %w", e.ID(), ErrForeignElement)
	}
	if se, ok := e.(*specializedEdge); ok {
		g.unlinkSpecialized(se)
		g.specializedEdges--
	} else {
		e.OutVertex().base().out.remove(e.Label(), e.ID())
		e.InVertex().base().in.remove(e.Label(), e.ID())
	}
	g.edges.Delete(e.ID())
	e.markRemoved()

	recordRemoved(kindEdge, e.Specialized())
	g.logger.Debug("edge removed", slog.Any("id", e.ID()), slog.String("label", e.Label()))

	return nil
}
