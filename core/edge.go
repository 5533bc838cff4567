// SPDX-License-Identifier: MIT
// File: edge.go
// Role: Edge variants.
//   - genericEdge: map-backed, single-valued, mutable properties.
//   - specializedEdge: write-once field storage built by the label's factory.

package core

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/specgraph/ids"
)

// edgeBase holds the endpoints. Edges reference, never own, their vertices.
type edgeBase struct {
	element
	out Vertex
	in  Vertex
}

// OutVertex returns the tail.
func (e *edgeBase) OutVertex() Vertex { return e.out }

// InVertex returns the head.
func (e *edgeBase) InVertex() Vertex { return e.in }

func (e *edgeBase) String() string {
	return fmt.Sprintf("e[%v][%v-%s->%v]", e.id, e.out.ID(), e.label, e.in.ID())
}

type genericEdge struct {
	edgeBase
	props    map[string]*Property
	keyOrder []string
}

func newGenericEdge(g *Graph, id ids.ID, label string, out, in Vertex) *genericEdge {
	return &genericEdge{
		edgeBase: edgeBase{element: element{g: g, id: id, label: label}, out: out, in: in},
		props:    make(map[string]*Property),
	}
}

func (e *genericEdge) IsNil() bool { return e == nil }

func (e *genericEdge) Specialized() bool { return false }

func (e *genericEdge) Keys() []string {
	return append([]string(nil), e.keyOrder...)
}

func (e *genericEdge) Property(key string) (*Property, error) {
	if e.removed {
		return nil, fmt.Errorf("Property(%q) on %s: %w", key, e, ErrElementRemoved)
	}
	if p, ok := e.props[key]; ok {
		return p, nil
	}

	return absentProperty(e, key), nil
}

func (e *genericEdge) Properties(keys ...string) iter.Seq[*Property] {
	return func(yield func(*Property) bool) {
		if e.removed {
			return
		}
		sel := keys
		if len(sel) == 0 {
			sel = e.Keys()
		} else {
			sel = appendUnique(nil, make(map[string]struct{}, len(keys)), keys)
		}
		for _, k := range sel {
			p, ok := e.props[k]
			if !ok {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func (e *genericEdge) Value(key string) (any, error) { return valueOf(e, key) }

// SetProperty replaces any existing value of key.
func (e *genericEdge) SetProperty(key string, value any) (*Property, error) {
	if e.removed {
		return nil, fmt.Errorf("SetProperty(%q) on %s: %w", key, e, ErrElementRemoved)
	}
	if key == "" {
		return nil, fmt.Errorf("SetProperty: empty key: %w", ErrInvalidKeyValues)
	}
	if value == nil {
		return nil, fmt.Errorf("SetProperty(%q): nil value: %w", key, ErrInvalidPropertyValue)
	}

	return e.attach(key, value), nil
}

func (e *genericEdge) attach(key string, value any) *Property {
	if old, ok := e.props[key]; ok {
		old.removed = true
	} else {
		e.keyOrder = append(e.keyOrder, key)
	}
	p := newProperty(e, key, value)
	e.props[key] = p

	return p
}

func (e *genericEdge) removeProperty(p *Property) error {
	if cur, ok := e.props[p.key]; ok && cur == p {
		delete(e.props, p.key)
		e.keyOrder = removeString(e.keyOrder, p.key)
		e.g.logger.Debug("edge property removed", slog.Any("edge", e.id), slog.String("key", p.key))
	}
	p.removed = true

	return nil
}

func (e *genericEdge) Remove() error { return e.g.removeEdge(e) }

func (e *genericEdge) markRemoved() {
	for _, p := range e.props {
		p.removed = true
	}
	e.removed = true
}

type specializedEdge struct {
	edgeBase
	typ    *EdgeType
	record fixedRecord
}

func newSpecializedEdge(g *Graph, id ids.ID, typ *EdgeType, out, in Vertex, fields Fields) *specializedEdge {
	e := &specializedEdge{
		edgeBase: edgeBase{element: element{g: g, id: id, label: typ.Label}, out: out, in: in},
		typ:      typ,
	}
	e.record = fixedRecord{owner: e, keys: typ.Keys, codes: typ.codes, fields: fields}

	return e
}

func (e *specializedEdge) IsNil() bool { return e == nil }

func (e *specializedEdge) Specialized() bool { return true }

// Type returns the edge type captured at creation.
func (e *specializedEdge) Type() *EdgeType { return e.typ }

func (e *specializedEdge) Keys() []string {
	return append([]string(nil), e.typ.Keys...)
}

func (e *specializedEdge) Property(key string) (*Property, error) {
	if e.removed {
		return nil, fmt.Errorf("Property(%q) on %s: %w", key, e, ErrElementRemoved)
	}

	return e.record.property(key)
}

func (e *specializedEdge) Properties(keys ...string) iter.Seq[*Property] {
	if e.removed {
		return empty[*Property]()
	}

	return e.record.properties(keys)
}

func (e *specializedEdge) Value(key string) (any, error) { return valueOf(e, key) }

func (e *specializedEdge) SetProperty(key string, _ any) (*Property, error) {
	return nil, fmt.Errorf("SetProperty(%q) on %s: %w", key, e, ErrUnsupportedMutation)
}

func (e *specializedEdge) removeProperty(p *Property) error {
	return fmt.Errorf("remove property %q on %s: %w", p.key, e, ErrUnsupportedMutation)
}

func (e *specializedEdge) Remove() error { return e.g.removeEdge(e) }

func (e *specializedEdge) markRemoved() {
	e.record.release()
	e.removed = true
}
