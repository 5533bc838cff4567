// SPDX-License-Identifier: MIT
// File: element.go
// Role: Shared element state (identity, label, removal flag), the vertex base
//       carrying generic adjacency, and fixedRecord: the field-slot property
//       storage shared by specialized vertices and edges.

package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/specgraph/ids"
)

// element is embedded by every vertex and edge variant.
type element struct {
	g       *Graph
	id      ids.ID
	label   string
	removed bool
}

// ID returns the canonical identifier.
func (e *element) ID() ids.ID { return e.id }

// Label returns the type name.
func (e *element) Label() string { return e.label }

// Graph returns the owning graph.
func (e *element) Graph() *Graph { return e.g }

// Removed reports whether the element has been removed.
func (e *element) Removed() bool { return e.removed }

// vertexBase adds the label-keyed adjacency used by generic edges. Both vertex
// variants embed it, so a specialized vertex can still take part in generic
// edges of unregistered labels.
type vertexBase struct {
	element
	out labelAdjacency
	in  labelAdjacency
}

func (v *vertexBase) base() *vertexBase { return v }

// genericLabels lists generic edge labels in first-use order, out before in.
func (v *vertexBase) genericLabels(dir Direction, seen map[string]struct{}, dst []string) []string {
	if dir == Out || dir == Both {
		dst = appendUnique(dst, seen, v.out.labels)
	}
	if dir == In || dir == Both {
		dst = appendUnique(dst, seen, v.in.labels)
	}

	return dst
}

// appendUnique appends the members of src not yet in seen.
func appendUnique(dst []string, seen map[string]struct{}, src []string) []string {
	for _, s := range src {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		dst = append(dst, s)
	}

	return dst
}

// valueOf implements Element.Value on top of Property.
func valueOf(e Element, key string) (any, error) {
	p, err := e.Property(key)
	if err != nil {
		return nil, err
	}
	if !p.IsPresent() {
		return nil, fmt.Errorf("Value(%q): %w", key, ErrPropertyNotFound)
	}

	return p.value, nil
}

// fixedRecord adapts a Fields value to the Property surface. Properties are
// materialized per slot on first access and cached, so repeated lookups return
// the same *Property with a stable ID.
type fixedRecord struct {
	owner  Element
	keys   []string
	codes  map[string]int
	fields Fields
	cache  []*Property
}

func (r *fixedRecord) slot(code int) *Property {
	if r.cache == nil {
		r.cache = make([]*Property, len(r.keys))
	}
	if p := r.cache[code]; p != nil {
		return p
	}
	key := r.keys[code]
	var p *Property
	if val, ok := r.fields.Field(code); ok && val != nil {
		p = newProperty(r.owner, key, val)
	} else {
		p = absentProperty(r.owner, key)
	}
	r.cache[code] = p

	return p
}

func (r *fixedRecord) property(key string) (*Property, error) {
	code, ok := r.codes[key]
	if !ok {
		return nil, fmt.Errorf("Property(%q) on label %q: %w", key, r.owner.Label(), ErrUnrecognizedKey)
	}

	return r.slot(code), nil
}

// properties yields one property per recognized key when keys is empty, else
// the recognized subset of keys in caller order. Unrecognized keys are dropped.
func (r *fixedRecord) properties(keys []string) iter.Seq[*Property] {
	return func(yield func(*Property) bool) {
		if len(keys) == 0 {
			for code := range r.keys {
				if !yield(r.slot(code)) {
					return
				}
			}
			return
		}
		seen := make(map[int]struct{}, len(keys))
		for _, k := range keys {
			code, ok := r.codes[k]
			if !ok {
				continue
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			if !yield(r.slot(code)) {
				return
			}
		}
	}
}

// release marks every materialized property removed.
func (r *fixedRecord) release() {
	for _, p := range r.cache {
		if p != nil {
			p.removed = true
		}
	}
}
