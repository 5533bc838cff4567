// SPDX-License-Identifier: MIT
// File: types.go
// Role: Sentinel errors, directions, cardinality, the Element/Vertex/Edge
//       contracts, GraphOption constructors and the Graph struct.

package core

import (
	"errors"
	"iter"
	"log/slog"

	"github.com/katalvlaran/specgraph/ids"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidIdentifier indicates a raw ID whose type or format does not match
	// the configured ID manager.
	ErrInvalidIdentifier = ids.ErrInvalidIdentifier

	// ErrDuplicateID indicates the resolved ID is already used in the target collection.
	ErrDuplicateID = errors.New("core: element id already exists")

	// ErrUnrecognizedKey indicates a property key outside the label's fixed key set.
	ErrUnrecognizedKey = errors.New("core: key not recognized by label")

	// ErrUnsupportedMutation indicates a property write on a specialized element.
	ErrUnsupportedMutation = errors.New("core: specialized element is write-once")

	// ErrUnsupportedEdgeType indicates an edge the vertex's adjacency storage cannot hold.
	ErrUnsupportedEdgeType = errors.New("core: edge type not supported by vertex")

	// ErrNullTarget indicates AddEdge was called without a target vertex.
	ErrNullTarget = errors.New("core: target vertex is nil")

	// ErrSourceRemoved indicates AddEdge was called on a removed vertex.
	ErrSourceRemoved = errors.New("core: source vertex already removed")

	// ErrElementRemoved indicates an operation on a removed element.
	ErrElementRemoved = errors.New("core: element already removed")

	// ErrForeignElement indicates an element owned by a different Graph.
	ErrForeignElement = errors.New("core: element belongs to another graph")

	// ErrVertexNotFound indicates a lookup referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a lookup referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrPropertyNotFound indicates Value was asked for an absent property.
	ErrPropertyNotFound = errors.New("core: property not present")

	// ErrLabelRegistered indicates a label is already bound and the registry
	// policy is DuplicateFail.
	ErrLabelRegistered = errors.New("core: label already registered")

	// ErrInvalidSchema indicates a malformed VertexType or EdgeType.
	ErrInvalidSchema = errors.New("core: invalid element type")

	// ErrInvalidKeyValues indicates a malformed key/value list.
	ErrInvalidKeyValues = errors.New("core: invalid key/value list")

	// ErrInvalidPropertyValue indicates a nil value or a value a factory cannot store.
	ErrInvalidPropertyValue = errors.New("core: invalid property value")

	// ErrGraphClosed indicates a mutation on a graph after Close.
	ErrGraphClosed = errors.New("core: graph is closed")
)

// Default labels applied when the caller passes an empty label.
const (
	DefaultVertexLabel = "vertex"
	DefaultEdgeLabel   = "edge"
)

// Direction selects which incident edges an adjacency query walks.
type Direction uint8

const (
	// Out selects edges whose OutVertex is the queried vertex.
	Out Direction = iota
	// In selects edges whose InVertex is the queried vertex.
	In
	// Both selects out edges followed by in edges.
	Both
)

// String returns "OUT", "IN" or "BOTH".
func (d Direction) String() string {
	switch d {
	case Out:
		return "OUT"
	case In:
		return "IN"
	case Both:
		return "BOTH"
	default:
		return "UNKNOWN"
	}
}

// Cardinality controls how SetProperty treats existing values of a key on
// generic vertices.
type Cardinality uint8

const (
	// Single replaces every existing value of the key.
	Single Cardinality = iota
	// List appends, keeping duplicates.
	List
	// Set appends unless an equal value is already present.
	Set
)

// Token is a reserved, non-string key accepted in key/value lists.
type Token uint8

const (
	// TokenID carries an explicit element identifier in a key/value list.
	TokenID Token = iota + 1
)

// Element is the capability set shared by vertices and edges of both the
// generic and the specialized representation.
type Element interface {
	// ID returns the canonical identifier.
	ID() ids.ID
	// Label returns the element's type name.
	Label() string
	// Graph returns the owning graph.
	Graph() *Graph
	// Keys returns the property keys of the element. For specialized elements
	// this is exactly the label's key set.
	Keys() []string
	// Property returns the property under key. Specialized elements fail with
	// ErrUnrecognizedKey for keys outside their key set; generic elements
	// return an absent property instead.
	Property(key string) (*Property, error)
	// Properties yields properties lazily. No keys means every key.
	Properties(keys ...string) iter.Seq[*Property]
	// Value returns the value under key or ErrPropertyNotFound.
	Value(key string) (any, error)
	// Specialized reports whether the element uses fixed-field storage.
	Specialized() bool
	// Remove detaches the element from every index. Idempotent.
	Remove() error
	// Removed reports whether Remove has completed.
	Removed() bool
	// IsNil reports a typed nil stored in the interface.
	IsNil() bool

	removeProperty(p *Property) error
	markRemoved()
}

// Vertex is a graph vertex.
type Vertex interface {
	Element
	// SetProperty writes a property. Specialized vertices always fail with
	// ErrUnsupportedMutation.
	SetProperty(card Cardinality, key string, value any) (*Property, error)
	// AddEdge runs the edge-creation protocol with this vertex as out vertex.
	AddEdge(label string, target Vertex, keyValues ...any) (Edge, error)
	// Edges yields incident edges for the given direction and labels.
	Edges(dir Direction, labels ...string) iter.Seq[Edge]
	// Vertices projects Edges to adjacent vertices.
	Vertices(dir Direction, labels ...string) iter.Seq[Vertex]

	base() *vertexBase
}

// Edge is a directed graph edge. It does not own its endpoints.
type Edge interface {
	Element
	// SetProperty writes a property. Specialized edges always fail with
	// ErrUnsupportedMutation.
	SetProperty(key string, value any) (*Property, error)
	// OutVertex returns the tail of the edge.
	OutVertex() Vertex
	// InVertex returns the head of the edge.
	InVertex() Vertex
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithVertexIDManager sets the identifier manager for vertices.
// Panics on nil.
func WithVertexIDManager(m ids.Manager) GraphOption {
	if m == nil {
		panic("core: WithVertexIDManager(nil)")
	}
	return func(g *Graph) { g.vertexIDs = m }
}

// WithEdgeIDManager sets the identifier manager for edges.
// Panics on nil.
func WithEdgeIDManager(m ids.Manager) GraphOption {
	if m == nil {
		panic("core: WithEdgeIDManager(nil)")
	}
	return func(g *Graph) { g.edgeIDs = m }
}

// WithPropertyIDManager sets the identifier manager for property values.
// Panics on nil.
func WithPropertyIDManager(m ids.Manager) GraphOption {
	if m == nil {
		panic("core: WithPropertyIDManager(nil)")
	}
	return func(g *Graph) { g.propertyIDs = m }
}

// WithRegistry shares an element type registry with the graph.
// Panics on nil.
func WithRegistry(r *Registry) GraphOption {
	if r == nil {
		panic("core: WithRegistry(nil)")
	}
	return func(g *Graph) { g.registry = r }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) GraphOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(g *Graph) { g.logger = l }
}

// WithCardinality sets the cardinality used for properties supplied at
// generic vertex creation.
func WithCardinality(c Cardinality) GraphOption {
	return func(g *Graph) { g.cardinality = c }
}

// WithIndex creates value indexes for keys at construction time.
func WithIndex(keys ...string) GraphOption {
	return func(g *Graph) {
		for _, k := range keys {
			g.index.create(k)
		}
	}
}

// Graph is the root registry: it owns the vertex and edge catalogs, the
// identifier managers, the element type registry and the value index.
//
// Graph applies no internal locking. Concurrent mutation, or reads racing
// with mutation, must be serialized by the caller.
type Graph struct {
	vertices *orderedmap.OrderedMap[ids.ID, Vertex] // insertion-ordered vertex catalog
	edges    *orderedmap.OrderedMap[ids.ID, Edge]   // insertion-ordered edge catalog

	vertexIDs   ids.Manager
	edgeIDs     ids.Manager
	propertyIDs ids.Manager

	registry *Registry
	index    *valueIndex
	logger   *slog.Logger

	cardinality Cardinality

	specializedVertices int
	specializedEdges    int
	closed              bool
}

// NewGraph creates an empty Graph. By default every identifier space uses an
// ids.Int64Manager, the registry is private to the graph and nothing is indexed.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:    newVertexCatalog(),
		edges:       newEdgeSet(),
		vertexIDs:   ids.NewInt64Manager(),
		edgeIDs:     ids.NewInt64Manager(),
		propertyIDs: ids.NewInt64Manager(),
		registry:    NewRegistry(),
		index:       newValueIndex(),
		logger:      slog.Default(),
		cardinality: Single,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
