// Package schema declares specialized element types in YAML and binds them to
// a core.Registry.
//
// A schema file has three sections:
//
//	graph:              # identifier managers, re-registration policy, indexes
//	  vertex_ids: int64 # int64 | string | uuid | any
//	  on_duplicate_label: fail
//	  indexes: [name]
//	vertices:           # specialized vertex labels
//	  - label: Person
//	    keys: [{name: name, type: string, required: true}, {name: age, type: int}]
//	    out_edges: [Likes]
//	    in_edges: [Likes]
//	edges:              # specialized edge labels
//	  - label: Likes
//	    keys: [{name: score, type: int}]
//
// Every declared label gets a slot-backed core.Fields whose factory coerces
// incoming values to the declared key type (string, int → int64, float →
// float64, bool, any). A Dataset file lists vertices and edges to load into a
// graph built from the schema.
package schema
