// SPDX-License-Identifier: MIT
// File: string.go
// Role: Prefixed decimal string identifiers.

package ids

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// StringManager hands out prefix+decimal identifiers ("v1", "v2", …).
type StringManager struct {
	prefix string
	last   atomic.Uint64
}

// NewStringManager returns a manager producing prefix-numbered identifiers.
// An empty prefix yields "1", "2", ….
func NewStringManager(prefix string) *StringManager {
	return &StringManager{prefix: prefix}
}

// NextID returns the next textual identifier without fmt allocations.
func (m *StringManager) NextID(inUse InUseFunc) ID {
	for {
		n := m.last.Add(1)
		buf := make([]byte, 0, len(m.prefix)+20) // prefix + up to 20 digits for uint64
		buf = append(buf, m.prefix...)
		buf = strconv.AppendUint(buf, n, 10)
		id := string(buf)
		if inUse == nil || !inUse(id) {
			return id
		}
	}
}

// Convert accepts non-empty strings, fmt.Stringer values and integers, which
// are rendered in base 10.
func (m *StringManager) Convert(raw any) (ID, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, invalid(raw, "string")
		}
		return v, nil
	case fmt.Stringer:
		s := v.String()
		if s == "" {
			return nil, invalid(raw, "string")
		}
		return s, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	default:
		return nil, invalid(raw, "string")
	}
}
