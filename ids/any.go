// SPDX-License-Identifier: MIT
// File: any.go
// Role: Manager for caller-chosen identifiers of any comparable value.

package ids

import (
	"math"
	"reflect"
	"sync/atomic"
)

// AnyManager generates int64 identifiers but accepts any comparable value
// supplied by the caller, unchanged.
type AnyManager struct {
	last atomic.Int64
}

// NewAnyManager returns an opaque-ID manager.
func NewAnyManager() *AnyManager {
	return &AnyManager{}
}

// NextID returns the next int64 not reported as taken.
func (m *AnyManager) NextID(inUse InUseFunc) ID {
	for {
		n := m.last.Add(1)
		if inUse == nil || !inUse(n) {
			return n
		}
	}
}

// Convert passes raw through when the value is comparable. Slices, maps, funcs,
// structs whose interface fields hold such values, and NaN are rejected.
func (m *AnyManager) Convert(raw any) (ID, error) {
	if raw == nil {
		return nil, nil
	}
	if !keyable(raw) {
		return nil, invalid(raw, "a comparable value")
	}
	return raw, nil
}

func keyable(v any) bool {
	switch f := v.(type) {
	case float64:
		return !math.IsNaN(f)
	case float32:
		return !math.IsNaN(float64(f))
	}

	return reflect.ValueOf(v).Comparable()
}
