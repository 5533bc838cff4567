// Package specgraph is an in-memory property graph whose labels can be bound
// to fixed key sets and compact per-label storage.
//
// What is specgraph?
//
//	A storage engine for graph-shaped data where two element representations
//	coexist behind one interface:
//		• Generic elements: map-backed, any key, multi-valued vertex properties
//		• Specialized elements: a label registered with a fixed key set and a
//		  factory producing typed field storage; write-once
//		• Label- and direction-aware adjacency, lazily iterated (iter.Seq)
//		• A (key, value) → vertices index with duplicate-value semantics
//
// Layout:
//
//	ids/           : identifier managers (int64, prefixed string, UUID, any comparable)
//	core/          : Graph, Vertex, Edge, Property, element type Registry, value index
//	schema/        : YAML schema files → registered labels; dataset loading
//	cmd/specgraph  : CLI: check a schema, load a dataset, inspect adjacency
//	examples/      : runnable programs
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.Registry().RegisterVertex(core.VertexType{Label: "Person", Keys: []string{"name"}, Factory: newPerson})
//	a, _ := g.AddVertex("Person", "name", "alice")
//	b, _ := g.AddVertex("Person", "name", "bob")
//	_, _ = a.AddEdge("knows", b)
//	for v := range a.Vertices(core.Out, "knows") { … }
//
//	go get github.com/katalvlaran/specgraph
package specgraph
