// SPDX-License-Identifier: MIT
// File: registry.go
// Role: Element Type Registry. Binds a label to its fixed key set, its
//       supported adjacency labels and the factory that builds the compact
//       per-label field storage.
// Determinism:
//   - Key codes are the positions of keys in VertexType.Keys / EdgeType.Keys.
//   - Labels() returns labels sorted lexicographically.
// Concurrency:
//   - Guarded by an RWMutex so one registry can be shared by several graphs.

package core

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/katalvlaran/specgraph/ids"
)

// Fields is the compact storage of one specialized element. Field returns the
// value stored under the enumerated key code (the key's index in the type's
// Keys) and false when the slot holds no value.
type Fields interface {
	Field(code int) (any, bool)
}

// VertexFactory builds the field storage of a specialized vertex. values only
// contains keys recognized by the label.
type VertexFactory func(id ids.ID, values map[string]any) (Fields, error)

// EdgeFactory builds the field storage of a specialized edge. values only
// contains keys recognized by the label.
type EdgeFactory func(id ids.ID, out, in Vertex, values map[string]any) (Fields, error)

// VertexType is the schema of one specialized vertex label.
type VertexType struct {
	// Label is the bound type name.
	Label string
	// Keys is the fixed key set; a key's index is its code.
	Keys []string
	// OutEdgeLabels lists specialized edge labels this vertex may hold as out vertex.
	OutEdgeLabels []string
	// InEdgeLabels lists specialized edge labels this vertex may hold as in vertex.
	InEdgeLabels []string
	// Factory builds the field storage.
	Factory VertexFactory

	codes    map[string]int
	outSlots map[string]int
	inSlots  map[string]int
}

// Code returns the enumerated code of key.
func (t *VertexType) Code(key string) (int, bool) {
	c, ok := t.codes[key]
	return c, ok
}

// HoldsOut reports whether vertices of this type accept label as out edges.
func (t *VertexType) HoldsOut(label string) bool {
	_, ok := t.outSlots[label]
	return ok
}

// HoldsIn reports whether vertices of this type accept label as in edges.
func (t *VertexType) HoldsIn(label string) bool {
	_, ok := t.inSlots[label]
	return ok
}

// EdgeType is the schema of one specialized edge label.
type EdgeType struct {
	// Label is the bound type name.
	Label string
	// Keys is the fixed key set; a key's index is its code.
	Keys []string
	// Factory builds the field storage.
	Factory EdgeFactory

	codes map[string]int
}

// Code returns the enumerated code of key.
func (t *EdgeType) Code(key string) (int, bool) {
	c, ok := t.codes[key]
	return c, ok
}

// DuplicatePolicy decides what RegisterVertex/RegisterEdge do with a label
// that is already bound.
type DuplicatePolicy uint8

const (
	// DuplicateFail rejects the registration with ErrLabelRegistered.
	DuplicateFail DuplicatePolicy = iota
	// DuplicateReplace swaps the binding. Elements already built keep the old type.
	DuplicateReplace
)

// RegistryOption configures a Registry.
type RegistryOption func(r *Registry)

// WithDuplicatePolicy sets the re-registration policy (default DuplicateFail).
func WithDuplicatePolicy(p DuplicatePolicy) RegistryOption {
	return func(r *Registry) { r.policy = p }
}

// WithRegistryLogger sets the logger used to report replaced bindings.
// Panics on nil.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	if l == nil {
		panic("core: WithRegistryLogger(nil)")
	}
	return func(r *Registry) { r.logger = l }
}

// Registry maps labels to specialized element types.
type Registry struct {
	mu       sync.RWMutex
	policy   DuplicatePolicy
	logger   *slog.Logger
	vertices map[string]*VertexType
	edges    map[string]*EdgeType
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		policy:   DuplicateFail,
		logger:   slog.Default(),
		vertices: make(map[string]*VertexType),
		edges:    make(map[string]*EdgeType),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Policy returns the re-registration policy.
func (r *Registry) Policy() DuplicatePolicy {
	return r.policy
}

// RegisterVertex binds t.Label to a specialized vertex type.
//
// Errors:
//   - ErrInvalidSchema: empty label, empty or repeated key, nil factory,
//     empty or repeated adjacency label.
//   - ErrLabelRegistered: label bound and policy is DuplicateFail.
//
// Complexity: O(|Keys| + |OutEdgeLabels| + |InEdgeLabels|).
func (r *Registry) RegisterVertex(t VertexType) error {
	if t.Factory == nil {
		return fmt.Errorf("RegisterVertex(%q): nil factory: %w", t.Label, ErrInvalidSchema)
	}
	codes, err := codeTable(t.Label, t.Keys)
	if err != nil {
		return fmt.Errorf("RegisterVertex: %w", err)
	}
	outSlots, err := codeTable(t.Label, t.OutEdgeLabels)
	if err != nil {
		return fmt.Errorf("RegisterVertex(%q) out edge labels: %w", t.Label, err)
	}
	inSlots, err := codeTable(t.Label, t.InEdgeLabels)
	if err != nil {
		return fmt.Errorf("RegisterVertex(%q) in edge labels: %w", t.Label, err)
	}

	prepared := &VertexType{
		Label:         t.Label,
		Keys:          append([]string(nil), t.Keys...),
		OutEdgeLabels: append([]string(nil), t.OutEdgeLabels...),
		InEdgeLabels:  append([]string(nil), t.InEdgeLabels...),
		Factory:       t.Factory,
		codes:         codes,
		outSlots:      outSlots,
		inSlots:       inSlots,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.vertices[t.Label]; exists {
		if r.policy == DuplicateFail {
			return fmt.Errorf("RegisterVertex(%q): %w", t.Label, ErrLabelRegistered)
		}
		r.logger.Warn("replacing specialized vertex type", slog.String("label", t.Label))
	}
	r.vertices[t.Label] = prepared

	return nil
}

// RegisterEdge binds t.Label to a specialized edge type.
//
// Errors:
//   - ErrInvalidSchema: empty label, empty or repeated key, nil factory.
//   - ErrLabelRegistered: label bound and policy is DuplicateFail.
func (r *Registry) RegisterEdge(t EdgeType) error {
	if t.Factory == nil {
		return fmt.Errorf("RegisterEdge(%q): nil factory: %w", t.Label, ErrInvalidSchema)
	}
	codes, err := codeTable(t.Label, t.Keys)
	if err != nil {
		return fmt.Errorf("RegisterEdge: %w", err)
	}
	prepared := &EdgeType{
		Label:   t.Label,
		Keys:    append([]string(nil), t.Keys...),
		Factory: t.Factory,
		codes:   codes,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.edges[t.Label]; exists {
		if r.policy == DuplicateFail {
			return fmt.Errorf("RegisterEdge(%q): %w", t.Label, ErrLabelRegistered)
		}
		r.logger.Warn("replacing specialized edge type", slog.String("label", t.Label))
	}
	r.edges[t.Label] = prepared

	return nil
}

// ResolveVertex returns the vertex type bound to label. false means the
// caller should use the generic path.
func (r *Registry) ResolveVertex(label string) (*VertexType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.vertices[label]

	return t, ok
}

// ResolveEdge returns the edge type bound to label.
func (r *Registry) ResolveEdge(label string) (*EdgeType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.edges[label]

	return t, ok
}

// VertexKeys returns a copy of the key set of a vertex label, or nil when
// the label is not registered.
func (r *Registry) VertexKeys(label string) []string {
	if t, ok := r.ResolveVertex(label); ok {
		return append([]string(nil), t.Keys...)
	}
	return nil
}

// EdgeKeys returns a copy of the key set of an edge label, or nil.
func (r *Registry) EdgeKeys(label string) []string {
	if t, ok := r.ResolveEdge(label); ok {
		return append([]string(nil), t.Keys...)
	}
	return nil
}

// Labels returns the registered vertex and edge labels, each sorted.
func (r *Registry) Labels() (vertexLabels, edgeLabels []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vertexLabels = make([]string, 0, len(r.vertices))
	for l := range r.vertices {
		vertexLabels = append(vertexLabels, l)
	}
	edgeLabels = make([]string, 0, len(r.edges))
	for l := range r.edges {
		edgeLabels = append(edgeLabels, l)
	}
	sort.Strings(vertexLabels)
	sort.Strings(edgeLabels)

	return vertexLabels, edgeLabels
}

// codeTable validates names and maps each to its position.
func codeTable(label string, names []string) (map[string]int, error) {
	if label == "" {
		return nil, fmt.Errorf("empty label: %w", ErrInvalidSchema)
	}
	codes := make(map[string]int, len(names))
	for i, n := range names {
		if n == "" {
			return nil, fmt.Errorf("label %q: empty name at position %d: %w", label, i, ErrInvalidSchema)
		}
		if _, dup := codes[n]; dup {
			return nil, fmt.Errorf("label %q: repeated name %q: %w", label, n, ErrInvalidSchema)
		}
		codes[n] = i
	}

	return codes, nil
}
