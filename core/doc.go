// Package core provides an in-memory property graph whose elements come in
// two storage variants behind one capability set:
//
//   - Generic elements keep their properties in maps. Any key may be set;
//     vertices support multi-valued keys through Cardinality.
//   - Specialized elements belong to a label registered in the element type
//     Registry. Their key set is fixed, their values live in compact field
//     storage built by the label's factory, and they are write-once.
//
// Creation is routed by label: AddVertex and AddEdge consult the Registry and
// fall back to the generic variant for unregistered labels. Key/value lists
// alternate string keys and values; TokenID carries an explicit identifier.
//
// Identifiers:
//
//	Each graph owns three ids.Manager values (vertices, edges, properties).
//	Explicit IDs are converted by the manager; generated IDs skip values
//	already in use (WithVertexIDManager, WithEdgeIDManager, WithPropertyIDManager).
//
// Adjacency:
//
//	A specialized vertex stores edges of its declared labels in per-label
//	slots (VertexType.OutEdgeLabels / InEdgeLabels). Every vertex also keeps a
//	label-keyed set for generic edges, so unregistered labels still connect
//	specialized vertices. Edges(dir, labels...) and Vertices(dir, labels...)
//	are lazy iter.Seq values; no labels means every label the vertex holds.
//
// Value index:
//
//	CreateIndex(key) / WithIndex(keys...) maintain (key, value) → vertices.
//	Removing one of several equal values keeps the entry until the last goes.
//
// Core Methods:
//
//	// Schema
//	Registry().RegisterVertex(VertexType) error
//	Registry().RegisterEdge(EdgeType) error
//
//	// Lifecycle
//	AddVertex(label string, keyValues ...any) (Vertex, error)           // O(k)
//	AddEdge(out Vertex, label string, in Vertex, kv ...any) (Edge, error) // O(k)
//	RemoveVertex(raw any) error                                         // O(deg(v))
//	RemoveEdge(raw any) error                                           // O(1)
//
//	// Query
//	Vertex(raw any) (Vertex, error), Edge(raw any) (Edge, error)
//	Vertices() iter.Seq[Vertex], Edges() iter.Seq[Edge]                 // insertion order
//	VerticesByValue(key string, value any) []Vertex
//	Stats() *GraphStats
//
//	// Maintenance
//	Clear(), Close() error
//
// Errors:
//
//	ErrInvalidIdentifier    – raw ID incompatible with the ID manager
//	ErrDuplicateID          – resolved ID already in the catalog
//	ErrUnrecognizedKey      – key outside a specialized label's key set
//	ErrUnsupportedMutation  – property write on a specialized element
//	ErrUnsupportedEdgeType  – endpoint type has no slot for the edge label
//	ErrNullTarget           – AddEdge with a nil target
//	ErrSourceRemoved        – AddEdge on a removed source
//
// Graph applies no locking; see Graph.
package core
