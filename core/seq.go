// SPDX-License-Identifier: MIT
// File: seq.go
// Role: Lazy sequence plumbing for adjacency queries: concatenation, mapping,
//       and iteration over insertion-ordered edge sets.

package core

import (
	"iter"

	"github.com/katalvlaran/specgraph/ids"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// edgeSet is an insertion-ordered set of edges keyed by edge ID.
type edgeSet = orderedmap.OrderedMap[ids.ID, Edge]

func newEdgeSet() *edgeSet {
	return orderedmap.New[ids.ID, Edge]()
}

// edgesOf yields the members of s in insertion order. The successor is read
// before yielding so the consumer may remove the current edge.
func edgesOf(s *edgeSet) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if s == nil {
			return
		}
		for p := s.Oldest(); p != nil; {
			next := p.Next()
			if !yield(p.Value) {
				return
			}
			p = next
		}
	}
}

// concat chains seqs in order.
func concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range seqs {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// empty yields nothing.
func empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}

// adjacentVertices projects edges onto vertices: In → OutVertex, Out → InVertex,
// Both → OutVertex then InVertex of every edge (no deduplication).
func adjacentVertices(edges iter.Seq[Edge], dir Direction) iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for e := range edges {
			switch dir {
			case Out:
				if !yield(e.InVertex()) {
					return
				}
			case In:
				if !yield(e.OutVertex()) {
					return
				}
			case Both:
				if !yield(e.OutVertex()) || !yield(e.InVertex()) {
					return
				}
			}
		}
	}
}
