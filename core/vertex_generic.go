// SPDX-License-Identifier: MIT
// File: vertex_generic.go
// Role: Generic, map-backed vertex used for labels without a registered type.
// Determinism:
//   - Keys() lists keys in first-set order.
//   - Multi-valued keys keep values in insertion order.

package core

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/specgraph/ids"
)

type genericVertex struct {
	vertexBase
	props    map[string][]*Property
	keyOrder []string
}

func newGenericVertex(g *Graph, id ids.ID, label string) *genericVertex {
	return &genericVertex{
		vertexBase: vertexBase{element: element{g: g, id: id, label: label}},
		props:      make(map[string][]*Property),
	}
}

func (v *genericVertex) IsNil() bool { return v == nil }

func (v *genericVertex) Specialized() bool { return false }

func (v *genericVertex) Keys() []string {
	return append([]string(nil), v.keyOrder...)
}

// Property returns the first value under key, or an absent property.
func (v *genericVertex) Property(key string) (*Property, error) {
	if v.removed {
		return nil, fmt.Errorf("Property(%q) on %s: %w", key, v, ErrElementRemoved)
	}
	if ps := v.props[key]; len(ps) > 0 {
		return ps[0], nil
	}

	return absentProperty(v, key), nil
}

func (v *genericVertex) Properties(keys ...string) iter.Seq[*Property] {
	return func(yield func(*Property) bool) {
		if v.removed {
			return
		}
		sel := keys
		if len(sel) == 0 {
			sel = v.Keys()
		} else {
			sel = appendUnique(nil, make(map[string]struct{}, len(keys)), keys)
		}
		for _, k := range sel {
			for _, p := range append([]*Property(nil), v.props[k]...) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

func (v *genericVertex) Value(key string) (any, error) { return valueOf(v, key) }

// SetProperty writes key under the given cardinality. Single removes every
// existing value of key first; Set returns the existing property when an equal
// value is already held.
func (v *genericVertex) SetProperty(card Cardinality, key string, value any) (*Property, error) {
	if v.removed {
		return nil, fmt.Errorf("SetProperty(%q) on %s: %w", key, v, ErrElementRemoved)
	}
	if key == "" {
		return nil, fmt.Errorf("SetProperty: empty key: %w", ErrInvalidKeyValues)
	}
	if value == nil {
		return nil, fmt.Errorf("SetProperty(%q): nil value: %w", key, ErrInvalidPropertyValue)
	}
	switch card {
	case Single:
		for _, p := range append([]*Property(nil), v.props[key]...) {
			if err := v.removeProperty(p); err != nil {
				return nil, err
			}
		}
	case Set:
		for _, p := range v.props[key] {
			if equalValues(p.value, value) {
				return p, nil
			}
		}
	}

	return v.attach(key, value), nil
}

// attach appends a new property and indexes it.
func (v *genericVertex) attach(key string, value any) *Property {
	p := newProperty(v, key, value)
	if _, ok := v.props[key]; !ok {
		v.keyOrder = append(v.keyOrder, key)
	}
	v.props[key] = append(v.props[key], p)
	v.g.index.add(key, value, v)

	return p
}

// removeProperty detaches p. The (key, value) index entry for this vertex is
// dropped only when no remaining value under the same key equals p's value.
func (v *genericVertex) removeProperty(p *Property) error {
	list := v.props[p.key]
	at := -1
	for i, q := range list {
		if q == p {
			at = i
			break
		}
	}
	if at < 0 {
		p.removed = true
		return nil
	}

	rest := append(list[:at:at], list[at+1:]...)
	if len(rest) == 0 {
		delete(v.props, p.key)
		v.keyOrder = removeString(v.keyOrder, p.key)
	} else {
		v.props[p.key] = rest
	}

	shared := false
	for _, q := range rest {
		if equalValues(q.value, p.value) {
			shared = true
			break
		}
	}
	if !shared {
		v.g.index.remove(p.key, p.value, v)
	}
	p.removed = true

	v.g.logger.Debug("vertex property removed",
		slog.Any("vertex", v.id),
		slog.String("key", p.key),
		slog.Bool("index_kept", shared))

	return nil
}

func (v *genericVertex) AddEdge(label string, target Vertex, keyValues ...any) (Edge, error) {
	return v.g.AddEdge(v, label, target, keyValues...)
}

func (v *genericVertex) Edges(dir Direction, labels ...string) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		if v.removed {
			return
		}
		sel := labels
		if len(sel) == 0 {
			sel = v.genericLabels(dir, make(map[string]struct{}), nil)
		}
		for _, l := range sel {
			if dir == Out || dir == Both {
				for e := range v.out.seq(l) {
					if !yield(e) {
						return
					}
				}
			}
			if dir == In || dir == Both {
				for e := range v.in.seq(l) {
					if !yield(e) {
						return
					}
				}
			}
		}
	}
}

func (v *genericVertex) Vertices(dir Direction, labels ...string) iter.Seq[Vertex] {
	return adjacentVertices(v.Edges(dir, labels...), dir)
}

func (v *genericVertex) Remove() error { return v.g.removeVertex(v) }

func (v *genericVertex) markRemoved() {
	for _, ps := range v.props {
		for _, p := range ps {
			p.removed = true
		}
	}
	v.removed = true
}

func (v *genericVertex) String() string { return fmt.Sprintf("v[%v]", v.id) }

// removeString deletes the first occurrence of s.
func removeString(list []string, s string) []string {
	for i, x := range list {
		if x == s {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
