// SPDX-License-Identifier: MIT

package ids_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/specgraph/ids"
)

type stringerID struct{ s string }

func (s stringerID) String() string { return s.s }

func TestInt64Manager_NextIDMonotonic(t *testing.T) {
	m := ids.NewInt64Manager()
	assert.Equal(t, int64(1), m.NextID(nil))
	assert.Equal(t, int64(2), m.NextID(nil))

	taken := map[ids.ID]bool{int64(3): true, int64(4): true}
	got := m.NextID(func(id ids.ID) bool { return taken[id] })
	assert.Equal(t, int64(5), got, "values in use must be skipped")
	assert.Equal(t, int64(6), m.NextID(nil))
}

func TestInt64Manager_Convert(t *testing.T) {
	m := ids.NewInt64Manager()
	cases := []struct {
		name string
		raw  any
		want ids.ID
	}{
		{"nil", nil, nil},
		{"int", 7, int64(7)},
		{"int32", int32(8), int64(8)},
		{"uint16", uint16(9), int64(9)},
		{"float integral", float64(10), int64(10)},
		{"string", "11", int64(11)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.Convert(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, raw := range []any{"x1", 1.5, uint64(math.MaxUint64), true, []int{1}, math.Exp2(63), math.Exp2(64)} {
		_, err := m.Convert(raw)
		assert.ErrorIs(t, err, ids.ErrInvalidIdentifier, "raw=%v", raw)
	}
}

func TestStringManager(t *testing.T) {
	m := ids.NewStringManager("e")
	assert.Equal(t, "e1", m.NextID(nil))
	assert.Equal(t, "e3", m.NextID(func(id ids.ID) bool { return id == "e2" }))

	got, err := m.Convert("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got)

	got, err = m.Convert(stringerID{"bob"})
	require.NoError(t, err)
	assert.Equal(t, "bob", got)

	got, err = m.Convert(42)
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	_, err = m.Convert("")
	assert.ErrorIs(t, err, ids.ErrInvalidIdentifier)
	_, err = m.Convert(3.14)
	assert.ErrorIs(t, err, ids.ErrInvalidIdentifier)
}

func TestUUIDManager(t *testing.T) {
	m := ids.NewUUIDManager()
	a, b := m.NextID(nil), m.NextID(nil)
	require.IsType(t, uuid.UUID{}, a)
	assert.NotEqual(t, a, b)

	want := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	got, err := m.Convert(want.String())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = m.Convert([16]byte(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = m.Convert("not-a-uuid")
	assert.ErrorIs(t, err, ids.ErrInvalidIdentifier)
	_, err = m.Convert(12)
	assert.ErrorIs(t, err, ids.ErrInvalidIdentifier)
}

func TestAnyManager(t *testing.T) {
	m := ids.NewAnyManager()
	assert.Equal(t, int64(1), m.NextID(nil))

	type key struct{ a, b int }
	got, err := m.Convert(key{1, 2})
	require.NoError(t, err)
	assert.Equal(t, key{1, 2}, got)

	_, err = m.Convert([]string{"a"})
	assert.ErrorIs(t, err, ids.ErrInvalidIdentifier)
	_, err = m.Convert(map[string]int{})
	assert.ErrorIs(t, err, ids.ErrInvalidIdentifier)
}

func TestInt64Manager_ConvertFloatBounds(t *testing.T) {
	m := ids.NewInt64Manager()

	got, err := m.Convert(-math.Exp2(63))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), got)

	got, err = m.Convert(math.Exp2(62))
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<62, got)

	_, err = m.Convert(math.Exp2(63))
	assert.ErrorIs(t, err, ids.ErrInvalidIdentifier)
}

func TestAnyManager_RejectsValuesThatCannotKeyAMap(t *testing.T) {
	m := ids.NewAnyManager()
	type boxed struct{ v any }

	got, err := m.Convert(boxed{"a"})
	require.NoError(t, err)
	assert.Equal(t, boxed{"a"}, got)

	for _, raw := range []any{boxed{[]int{1}}, boxed{map[string]int{}}, math.NaN(), float32(math.NaN())} {
		assert.NotPanics(t, func() {
			_, err = m.Convert(raw)
		})
		assert.ErrorIs(t, err, ids.ErrInvalidIdentifier, "raw=%v", raw)
	}
}

func TestNew(t *testing.T) {
	for _, kind := range []ids.Kind{ids.KindInt64, ids.KindString, ids.KindUUID, ids.KindAny, ""} {
		m, err := ids.New(kind, "p")
		require.NoError(t, err, "kind=%q", kind)
		require.NotNil(t, m)
	}
	s, err := ids.New(ids.KindString, "p")
	require.NoError(t, err)
	assert.Equal(t, "p1", s.NextID(nil))

	_, err = ids.New("roman", "")
	assert.ErrorIs(t, err, ids.ErrInvalidIdentifier)
}
