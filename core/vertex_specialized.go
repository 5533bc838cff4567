// SPDX-License-Identifier: MIT
// File: vertex_specialized.go
// Role: Specialized vertex: fixed key set resolved through the registry,
//       field storage built by the label's factory, and slot-indexed
//       adjacency for the edge labels its type declares.
// Determinism:
//   - Edges(dir) with no labels walks declared out slots, then declared in
//     slots, then generic labels in first-use order.
//   - Per label, specialized edges precede generic ones; for Both, out
//     precedes in.

package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/specgraph/ids"
)

// SpecializedVertex exposes the adjacency write primitives of a specialized
// vertex. Both fail with ErrUnsupportedEdgeType when the vertex type has no
// slot for the edge's label.
type SpecializedVertex interface {
	Vertex
	// Type returns the vertex type captured at creation.
	Type() *VertexType
	// AddSpecializedOutEdge records e under its label's out slot.
	AddSpecializedOutEdge(e Edge) error
	// AddSpecializedInEdge records e under its label's in slot.
	AddSpecializedInEdge(e Edge) error
}

type specializedVertex struct {
	vertexBase
	typ      *VertexType
	record   fixedRecord
	outTyped slotAdjacency
	inTyped  slotAdjacency
}

var _ SpecializedVertex = (*specializedVertex)(nil)

func newSpecializedVertex(g *Graph, id ids.ID, typ *VertexType, fields Fields) *specializedVertex {
	v := &specializedVertex{
		vertexBase: vertexBase{element: element{g: g, id: id, label: typ.Label}},
		typ:        typ,
	}
	v.record = fixedRecord{owner: v, keys: typ.Keys, codes: typ.codes, fields: fields}

	return v
}

func (v *specializedVertex) IsNil() bool { return v == nil }

func (v *specializedVertex) Specialized() bool { return true }

func (v *specializedVertex) Type() *VertexType { return v.typ }

func (v *specializedVertex) Keys() []string {
	return append([]string(nil), v.typ.Keys...)
}

func (v *specializedVertex) Property(key string) (*Property, error) {
	if v.removed {
		return nil, fmt.Errorf("Property(%q) on %s: %w", key, v, ErrElementRemoved)
	}

	return v.record.property(key)
}

func (v *specializedVertex) Properties(keys ...string) iter.Seq[*Property] {
	if v.removed {
		return empty[*Property]()
	}

	return v.record.properties(keys)
}

func (v *specializedVertex) Value(key string) (any, error) { return valueOf(v, key) }

func (v *specializedVertex) SetProperty(_ Cardinality, key string, _ any) (*Property, error) {
	return nil, fmt.Errorf("SetProperty(%q) on %s: %w", key, v, ErrUnsupportedMutation)
}

func (v *specializedVertex) removeProperty(p *Property) error {
	return fmt.Errorf("remove property %q on %s: %w", p.key, v, ErrUnsupportedMutation)
}

func (v *specializedVertex) AddSpecializedOutEdge(e Edge) error {
	slot, err := v.slotFor(e, v.typ.outSlots)
	if err != nil {
		return fmt.Errorf("AddSpecializedOutEdge on %s: %w", v, err)
	}
	v.outTyped.add(slot, len(v.typ.OutEdgeLabels), e)

	return nil
}

func (v *specializedVertex) AddSpecializedInEdge(e Edge) error {
	slot, err := v.slotFor(e, v.typ.inSlots)
	if err != nil {
		return fmt.Errorf("AddSpecializedInEdge on %s: %w", v, err)
	}
	v.inTyped.add(slot, len(v.typ.InEdgeLabels), e)

	return nil
}

// slotFor accepts only specialized edges whose label has a slot.
func (v *specializedVertex) slotFor(e Edge, slots map[string]int) (int, error) {
	if e == nil || e.IsNil() || !e.Specialized() {
		return 0, fmt.Errorf("edge is not specialized: %w", ErrUnsupportedEdgeType)
	}
	slot, ok := slots[e.Label()]
	if !ok {
		return 0, fmt.Errorf("label %q: %w", e.Label(), ErrUnsupportedEdgeType)
	}

	return slot, nil
}

// labels returns every edge label this vertex may yield for dir.
func (v *specializedVertex) labels(dir Direction) []string {
	seen := make(map[string]struct{})
	var out []string
	if dir == Out || dir == Both {
		out = appendUnique(out, seen, v.typ.OutEdgeLabels)
	}
	if dir == In || dir == Both {
		out = appendUnique(out, seen, v.typ.InEdgeLabels)
	}

	return v.genericLabels(dir, seen, out)
}

func (v *specializedVertex) Edges(dir Direction, labels ...string) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if v.removed {
			return
		}
		sel := labels
		if len(sel) == 0 {
			sel = v.labels(dir)
		}
		for _, l := range sel {
			if dir == Out || dir == Both {
				if !v.yieldLabel(l, v.typ.outSlots, &v.outTyped, &v.out, yield) {
					return
				}
			}
			if dir == In || dir == Both {
				if !v.yieldLabel(l, v.typ.inSlots, &v.inTyped, &v.in, yield) {
					return
				}
			}
		}
	}
}

// yieldLabel walks the specialized set of label, then its generic set.
func (v *specializedVertex) yieldLabel(label string, slots map[string]int, typed *slotAdjacency, generic *labelAdjacency, yield func(Edge) bool) bool {
	seqs := []iter.Seq[Edge]{generic.seq(label)}
	if slot, ok := slots[label]; ok {
		seqs = []iter.Seq[Edge]{typed.seq(slot), generic.seq(label)}
	}
	for e := range concat(seqs...) {
		if !yield(e) {
			return false
		}
	}

	return true
}

func (v *specializedVertex) Vertices(dir Direction, labels ...string) iter.Seq[Vertex] {
	return adjacentVertices(v.Edges(dir, labels...), dir)
}

func (v *specializedVertex) AddEdge(label string, target Vertex, keyValues ...any) (Edge, error) {
	return v.g.AddEdge(v, label, target, keyValues...)
}

func (v *specializedVertex) Remove() error { return v.g.removeVertex(v) }

func (v *specializedVertex) markRemoved() {
	v.record.release()
	v.removed = true
}

func (v *specializedVertex) String() string { return fmt.Sprintf("v[%v]", v.id) }
