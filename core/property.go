// SPDX-License-Identifier: MIT
// File: property.go
// Role: Property value type. A Property is immutable once built: "updating"
//       means removing it and creating a new one.

package core

import (
	"fmt"
	"math"
	"reflect"

	"github.com/katalvlaran/specgraph/ids"
)

// Property is one identified (key, value) pair owned by exactly one element.
// An absent property (IsPresent false) stands for a recognized key with no value.
type Property struct {
	id      ids.ID
	owner   Element
	key     string
	value   any
	present bool
	removed bool
}

// newProperty allocates a present property with an ID from the graph's
// property manager.
func newProperty(owner Element, key string, value any) *Property {
	return &Property{
		id:      owner.Graph().propertyIDs.NextID(nil),
		owner:   owner,
		key:     key,
		value:   value,
		present: true,
	}
}

// absentProperty returns the placeholder for key on owner.
func absentProperty(owner Element, key string) *Property {
	return &Property{owner: owner, key: key}
}

// ID returns the property identifier; nil for absent properties.
func (p *Property) ID() ids.ID { return p.id }

// Key returns the property key.
func (p *Property) Key() string { return p.key }

// Value returns the stored value; nil for absent properties.
func (p *Property) Value() any { return p.value }

// Element returns the owning element.
func (p *Property) Element() Element { return p.owner }

// IsPresent reports whether the property holds a value.
func (p *Property) IsPresent() bool { return p != nil && p.present }

// Removed reports whether Remove has completed.
func (p *Property) Removed() bool { return p.removed }

// Equal reports (owner, key, value) equality.
func (p *Property) Equal(o *Property) bool {
	if p == nil || o == nil {
		return p == o
	}

	return p.owner == o.owner && p.key == o.key && p.present == o.present && equalValues(p.value, o.value)
}

// Remove detaches the property from its owner and, for vertex properties,
// from the value index. A second call is a no-op. Specialized owners fail
// with ErrUnsupportedMutation.
func (p *Property) Remove() error {
	if p.removed || !p.present {
		return nil
	}

	return p.owner.removeProperty(p)
}

// String renders "p[key->value]" or "p[empty]".
func (p *Property) String() string {
	if !p.IsPresent() {
		return "p[empty]"
	}
	return fmt.Sprintf("p[%s->%v]", p.key, p.value)
}

// equalValues compares values with == when the dynamic types allow it and
// falls back to reflect.DeepEqual otherwise.
func equalValues(a, b any) bool {
	if hashable(a) && hashable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// hashable reports whether v may key a map and match itself there. The
// check inspects the value, so an interface field holding a slice fails it.
// NaN never equals itself and is treated as unhashable.
func hashable(v any) bool {
	switch f := v.(type) {
	case nil:
		return true
	case float64:
		return !math.IsNaN(f)
	case float32:
		return !math.IsNaN(float64(f))
	}

	return reflect.ValueOf(v).Comparable()
}
