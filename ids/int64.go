// SPDX-License-Identifier: MIT
// File: int64.go
// Role: Monotonic int64 identifiers and conversion from integer-like raw values.

package ids

import (
	"math"
	"strconv"
	"sync/atomic"
)

// Int64Manager hands out 1, 2, 3, … as int64 identifiers.
type Int64Manager struct {
	last atomic.Int64
}

// NewInt64Manager returns a manager whose first NextID is 1.
func NewInt64Manager() *Int64Manager {
	return &Int64Manager{}
}

// NextID reserves the next counter value that inUse does not report as taken.
// Complexity: O(1) amortized; O(k) when k consecutive values were supplied
// explicitly by callers.
func (m *Int64Manager) NextID(inUse InUseFunc) ID {
	for {
		n := m.last.Add(1)
		if inUse == nil || !inUse(n) {
			return n
		}
	}
}

// Convert accepts every Go integer kind (range-checked), integral float64 values
// (JSON and YAML decoders produce them) and base-10 strings.
func (m *Int64Manager) Convert(raw any) (ID, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return nil, invalid(raw, "int64")
		}
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, invalid(raw, "int64")
		}
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || v >= 1<<63 || v < math.MinInt64 {
			return nil, invalid(raw, "int64")
		}
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, invalid(raw, "int64")
		}
		return n, nil
	default:
		return nil, invalid(raw, "int64")
	}
}
