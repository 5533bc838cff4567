// SPDX-License-Identifier: MIT
// File: keyvalues.go
// Role: Parsing of the alternating key/value lists accepted by AddVertex and
//       AddEdge, and the FromMap helper that produces them.

package core

import (
	"fmt"
	"sort"
)

// pair is one (key, value) entry of a key/value list.
type pair struct {
	key   string
	value any
}

// bag is a parsed key/value list. Later entries win over earlier ones with the
// same key in lookups; pairs keeps every entry in caller order.
type bag struct {
	id    any
	pairs []pair
}

// parseKeyValues validates an alternating key/value list. Keys are non-empty
// strings or TokenID.
func parseKeyValues(kv []any) (bag, error) {
	var b bag
	if len(kv)%2 != 0 {
		return b, fmt.Errorf("odd length %d: %w", len(kv), ErrInvalidKeyValues)
	}
	b.pairs = make([]pair, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		switch k := kv[i].(type) {
		case Token:
			if k != TokenID {
				return b, fmt.Errorf("unknown token %d at %d: %w", k, i, ErrInvalidKeyValues)
			}
			b.id = kv[i+1]
		case string:
			if k == "" {
				return b, fmt.Errorf("empty key at %d: %w", i, ErrInvalidKeyValues)
			}
			b.pairs = append(b.pairs, pair{key: k, value: kv[i+1]})
		default:
			return b, fmt.Errorf("key at %d has type %T: %w", i, kv[i], ErrInvalidKeyValues)
		}
	}

	return b, nil
}

// restrict returns the last value of every pair whose key has a code.
func (b bag) restrict(codes map[string]int) map[string]any {
	out := make(map[string]any, len(codes))
	for _, p := range b.pairs {
		if _, ok := codes[p.key]; ok {
			out[p.key] = p.value
		}
	}

	return out
}

// FromMap flattens m into a key/value list with keys in lexicographic order.
// A nil id is omitted; otherwise it is carried under TokenID.
func FromMap(id any, m map[string]any) []any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := make([]any, 0, 2*len(keys)+2)
	if id != nil {
		kv = append(kv, TokenID, id)
	}
	for _, k := range keys {
		kv = append(kv, k, m[k])
	}

	return kv
}
