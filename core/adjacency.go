// SPDX-License-Identifier: MIT
// File: adjacency.go
// Role: Per-vertex adjacency containers.
//   - labelAdjacency: label-keyed edge sets used by generic edges on every vertex.
//   - slotAdjacency: slot-indexed edge sets of a specialized vertex; the slot
//     is the position of the edge label in VertexType.Out/InEdgeLabels.
// Determinism:
//   - Edge sets preserve insertion order.
//   - labelAdjacency.labels preserves first-use order.
// Notes:
//   - Sets are created lazily on first insert and pruned when emptied.

package core

import (
	"iter"

	"github.com/katalvlaran/specgraph/ids"
)

type labelAdjacency struct {
	labels []string
	sets   map[string]*edgeSet
}

func (a *labelAdjacency) add(label string, e Edge) {
	if a.sets == nil {
		a.sets = make(map[string]*edgeSet)
	}
	s := a.sets[label]
	if s == nil {
		s = newEdgeSet()
		a.sets[label] = s
		a.labels = append(a.labels, label)
	}
	s.Set(e.ID(), e)
}

func (a *labelAdjacency) remove(label string, id ids.ID) {
	s := a.sets[label]
	if s == nil {
		return
	}
	s.Delete(id)
	if s.Len() > 0 {
		return
	}
	delete(a.sets, label)
	for i, l := range a.labels {
		if l == label {
			a.labels = append(a.labels[:i], a.labels[i+1:]...)
			break
		}
	}
}

func (a *labelAdjacency) seq(label string) iter.Seq[Edge] {
	return edgesOf(a.sets[label])
}

func (a *labelAdjacency) len() int {
	n := 0
	for _, s := range a.sets {
		n += s.Len()
	}

	return n
}

type slotAdjacency struct {
	sets []*edgeSet
}

// add inserts e into slot, allocating the slot table (size n) and the set on
// first use.
func (a *slotAdjacency) add(slot, n int, e Edge) {
	if a.sets == nil {
		a.sets = make([]*edgeSet, n)
	}
	if a.sets[slot] == nil {
		a.sets[slot] = newEdgeSet()
	}
	a.sets[slot].Set(e.ID(), e)
}

func (a *slotAdjacency) remove(slot int, id ids.ID) {
	if a.sets == nil || a.sets[slot] == nil {
		return
	}
	a.sets[slot].Delete(id)
	if a.sets[slot].Len() == 0 {
		a.sets[slot] = nil
	}
}

func (a *slotAdjacency) seq(slot int) iter.Seq[Edge] {
	if a.sets == nil {
		return empty[Edge]()
	}
	return edgesOf(a.sets[slot])
}
