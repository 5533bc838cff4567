// SPDX-License-Identifier: MIT
// File: api.go
// Role: Graph-level surface beyond element lifecycle: registry access, value
//       index management, statistics and teardown.
package core

import (
	"fmt"
	"log/slog"
)

// Registry returns the element type registry consulted on creation.
func (g *Graph) Registry() *Registry { return g.registry }

// Logger returns the graph's logger.
func (g *Graph) Logger() *slog.Logger { return g.logger }

// CreateIndex starts indexing vertex values under key and back-fills every
// existing vertex. Creating an existing index is a no-op.
// Complexity: O(V·p) for p properties per vertex.
func (g *Graph) CreateIndex(key string) error {
	if key == "" {
		return fmt.Errorf("CreateIndex: empty key: %w", ErrInvalidKeyValues)
	}
	if !g.index.create(key) {
		return nil
	}
	for v := range g.Vertices() {
		for p := range v.Properties(key) {
			if p.IsPresent() {
				g.index.add(key, p.value, v)
			}
		}
	}
	g.logger.Info("value index created", slog.String("key", key))

	return nil
}

// DropIndex stops indexing key. Unknown keys are ignored.
func (g *Graph) DropIndex(key string) {
	if g.index.indexed(key) {
		g.index.drop(key)
		g.logger.Info("value index dropped", slog.String("key", key))
	}
}

// IndexedKeys returns the indexed keys sorted.
func (g *Graph) IndexedKeys() []string { return g.index.indexedKeys() }

// VerticesByValue returns the vertices holding value under key, in the order
// they were first indexed. Falls back to a catalog scan when key is not indexed.
func (g *Graph) VerticesByValue(key string, value any) []Vertex {
	if g.index.indexed(key) {
		return g.index.lookup(key, value)
	}
	var out []Vertex
	for v := range g.Vertices() {
		for p := range v.Properties(key) {
			if p.IsPresent() && equalValues(p.value, value) {
				out = append(out, v)
				break
			}
		}
	}

	return out
}

// ValueMap gathers the present values of e's properties by key. No keys means
// every key of e.
func ValueMap(e Element, keys ...string) map[string][]any {
	out := make(map[string][]any)
	for p := range e.Properties(keys...) {
		if p.IsPresent() {
			out[p.key] = append(out[p.key], p.value)
		}
	}

	return out
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Vertices            int
	Edges               int
	SpecializedVertices int
	SpecializedEdges    int
	VertexTypes         []string
	EdgeTypes           []string
	IndexedKeys         []string
}

// GenericVertices returns the number of map-backed vertices.
func (s *GraphStats) GenericVertices() int { return s.Vertices - s.SpecializedVertices }

// GenericEdges returns the number of map-backed edges.
func (s *GraphStats) GenericEdges() int { return s.Edges - s.SpecializedEdges }

// Stats summarizes the graph.
func (g *Graph) Stats() *GraphStats {
	vt, et := g.registry.Labels()

	return &GraphStats{
		Vertices:            g.vertices.Len(),
		Edges:               g.edges.Len(),
		SpecializedVertices: g.specializedVertices,
		SpecializedEdges:    g.specializedEdges,
		VertexTypes:         vt,
		EdgeTypes:           et,
		IndexedKeys:         g.index.indexedKeys(),
	}
}

// Clear removes every vertex and edge. Identifier managers keep their state,
// so new IDs never collide with IDs handed out before. Index definitions survive.
func (g *Graph) Clear() {
	for e := range g.Edges() {
		e.markRemoved()
	}
	for v := range g.Vertices() {
		v.markRemoved()
	}
	g.vertices = newVertexCatalog()
	g.edges = newEdgeSet()
	g.specializedVertices, g.specializedEdges = 0, 0
	for _, k := range g.index.indexedKeys() {
		g.index.drop(k)
		g.index.create(k)
	}
	g.logger.Info("graph cleared")
}

// Close clears the graph and rejects further creations with ErrGraphClosed.
// Safe to call more than once.
func (g *Graph) Close() error {
	if g.closed {
		return nil
	}
	g.Clear()
	g.closed = true
	g.logger.Info("graph closed")

	return nil
}
