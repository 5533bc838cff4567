// SPDX-License-Identifier: MIT
// File: index.go
// Role: Secondary value index (key, value) → vertices holding it.
// Invariant:
//   - For an indexed key, an entry (key, value) exists iff at least one live,
//     non-removed property with that key and value exists on some vertex.
//   - Empty vertex sets are pruned immediately.
// Notes:
//   - Values whose dynamic type cannot key a map are not indexed.

package core

import (
	"sort"

	"github.com/katalvlaran/specgraph/ids"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type vertexSet = orderedmap.OrderedMap[ids.ID, Vertex]

func newVertexCatalog() *vertexSet {
	return orderedmap.New[ids.ID, Vertex]()
}

type valueIndex struct {
	keys map[string]map[any]*vertexSet
}

func newValueIndex() *valueIndex {
	return &valueIndex{keys: make(map[string]map[any]*vertexSet)}
}

// create registers key; false if it was already indexed.
func (ix *valueIndex) create(key string) bool {
	if _, ok := ix.keys[key]; ok {
		return false
	}
	ix.keys[key] = make(map[any]*vertexSet)

	return true
}

func (ix *valueIndex) drop(key string) {
	delete(ix.keys, key)
}

func (ix *valueIndex) indexed(key string) bool {
	_, ok := ix.keys[key]
	return ok
}

func (ix *valueIndex) indexedKeys() []string {
	out := make([]string, 0, len(ix.keys))
	for k := range ix.keys {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// add records that v holds (key, value). No-op for unindexed keys.
func (ix *valueIndex) add(key string, value any, v Vertex) {
	values, ok := ix.keys[key]
	if !ok || !hashable(value) {
		return
	}
	set := values[value]
	if set == nil {
		set = newVertexCatalog()
		values[value] = set
	}
	set.Set(v.ID(), v)
}

// remove drops v from the (key, value) entry and prunes the entry when empty.
func (ix *valueIndex) remove(key string, value any, v Vertex) {
	values, ok := ix.keys[key]
	if !ok || !hashable(value) {
		return
	}
	set := values[value]
	if set == nil {
		return
	}
	set.Delete(v.ID())
	if set.Len() == 0 {
		delete(values, value)
	}
}

// lookup returns the vertices holding (key, value) in insertion order.
func (ix *valueIndex) lookup(key string, value any) []Vertex {
	values, ok := ix.keys[key]
	if !ok || !hashable(value) {
		return nil
	}
	set := values[value]
	if set == nil {
		return nil
	}
	out := make([]Vertex, 0, set.Len())
	for p := set.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}

	return out
}

// indexVertex adds every present property of v on indexed keys.
func (ix *valueIndex) indexVertex(v Vertex) {
	if len(ix.keys) == 0 {
		return
	}
	for p := range v.Properties() {
		if p.IsPresent() {
			ix.add(p.key, p.value, v)
		}
	}
}

// unindexVertex removes v from every entry it appears in.
func (ix *valueIndex) unindexVertex(v Vertex) {
	if len(ix.keys) == 0 {
		return
	}
	for p := range v.Properties() {
		if p.IsPresent() {
			ix.remove(p.key, p.value, v)
		}
	}
}
