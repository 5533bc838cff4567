// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/specgraph/core"
	"github.com/katalvlaran/specgraph/ids"
)

type city struct{ name string }

func (c city) Field(code int) (any, bool) {
	if code == 0 && c.name != "" {
		return c.name, true
	}
	return nil, false
}

// ExampleGraph_AddVertex shows label-based routing between the specialized
// and the generic representation.
func ExampleGraph_AddVertex() {
	g := core.NewGraph(core.WithLogger(quietLogger()))
	_ = g.Registry().RegisterVertex(core.VertexType{
		Label: "City",
		Keys:  []string{"name"},
		Factory: func(_ ids.ID, values map[string]any) (core.Fields, error) {
			name, _ := values["name"].(string)
			return city{name: name}, nil
		},
	})

	paris, _ := g.AddVertex("City", "name", "Paris", "population", 2100000)
	note, _ := g.AddVertex("note", "text", "hello", "lang", "en")

	fmt.Println(paris.Specialized(), paris.Keys())
	fmt.Println(note.Specialized(), note.Keys())

	_, err := paris.Property("population")
	fmt.Println(err != nil)
	// Output:
	// true [name]
	// false [text lang]
	// true
}

// ExampleVertex_Edges walks adjacency lazily.
func ExampleVertex_Edges() {
	g := core.NewGraph(core.WithLogger(quietLogger()))
	a, _ := g.AddVertex("person", "name", "alice")
	b, _ := g.AddVertex("person", "name", "bob")
	c, _ := g.AddVertex("person", "name", "carol")
	_, _ = a.AddEdge("knows", b)
	_, _ = a.AddEdge("knows", c)
	_, _ = c.AddEdge("knows", a)

	for v := range a.Vertices(core.Out, "knows") {
		name, _ := v.Value("name")
		fmt.Println("out:", name)
	}
	for v := range a.Vertices(core.In) {
		name, _ := v.Value("name")
		fmt.Println("in:", name)
	}
	// Output:
	// out: bob
	// out: carol
	// in: carol
}
