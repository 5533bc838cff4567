// SPDX-License-Identifier: MIT
// File: factory.go
// Role: Slot-backed field storage for schema-declared labels and value
//       coercion to the declared key types.

package schema

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/specgraph/core"
)

// Key types accepted in KeySpec.Type. Empty means TypeAny.
const (
	TypeString = "string"
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeBool   = "bool"
	TypeAny    = "any"
)

// record stores one value per key code; a nil slot is absent.
type record []any

// Field implements core.Fields.
func (r record) Field(code int) (any, bool) {
	if code < 0 || code >= len(r) || r[code] == nil {
		return nil, false
	}
	return r[code], true
}

// buildRecord coerces values into slots ordered like keys.
func buildRecord(label string, keys []KeySpec, values map[string]any) (record, error) {
	r := make(record, len(keys))
	for i, k := range keys {
		raw, ok := values[k.Name]
		if !ok || raw == nil {
			if k.Required {
				return nil, fmt.Errorf("%s.%s: missing required value: %w", label, k.Name, core.ErrInvalidPropertyValue)
			}
			continue
		}
		v, err := Coerce(k.Type, raw)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", label, k.Name, err)
		}
		r[i] = v
	}

	return r, nil
}

// Coerce converts raw to the canonical Go type of typ: string, int64,
// float64, bool, or raw itself for TypeAny. Textual numbers and booleans are
// parsed. Fails with core.ErrInvalidPropertyValue.
func Coerce(typ string, raw any) (any, error) {
	switch typ {
	case "", TypeAny:
		return raw, nil
	case TypeString:
		switch v := raw.(type) {
		case string:
			return v, nil
		case fmt.Stringer:
			return v.String(), nil
		}
	case TypeInt:
		if n, ok := toInt64(raw); ok {
			return n, nil
		}
	case TypeFloat:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f, nil
			}
		default:
			if n, ok := toInt64(raw); ok {
				return float64(n), nil
			}
		}
	case TypeBool:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			if b, err := strconv.ParseBool(v); err == nil {
				return b, nil
			}
		}
	}

	return nil, fmt.Errorf("%T(%v) is not %s: %w", raw, raw, typ, core.ErrInvalidPropertyValue)
}

func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int16:
		return int64(v), true
	case int8:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case float64:
		if v != math.Trunc(v) || v >= 1<<63 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	}

	return 0, false
}
