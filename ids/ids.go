// SPDX-License-Identifier: MIT
// File: ids.go
// Role: ID alias, Manager contract, sentinel error and the Kind-based constructor.

package ids

import (
	"errors"
	"fmt"
)

// ID is the canonical identifier of a graph element. The dynamic value is always
// comparable so it can key the graph's element maps.
type ID = any

// ErrInvalidIdentifier indicates a raw identifier whose type or format is
// incompatible with the manager's canonical ID type.
var ErrInvalidIdentifier = errors.New("ids: invalid identifier")

// InUseFunc reports whether id is currently held by a live element.
type InUseFunc func(id ID) bool

// Manager allocates and validates identifiers of one element collection.
type Manager interface {
	// NextID returns a fresh identifier. inUse may be nil; when set, values it
	// reports as taken are skipped.
	NextID(inUse InUseFunc) ID

	// Convert normalizes raw into the canonical ID type. A nil raw value yields
	// (nil, nil), meaning "no explicit identifier supplied".
	Convert(raw any) (ID, error)
}

// Kind names a Manager implementation in configuration files.
type Kind string

// Supported manager kinds.
const (
	KindInt64  Kind = "int64"
	KindString Kind = "string"
	KindUUID   Kind = "uuid"
	KindAny    Kind = "any"
)

// New returns a fresh Manager of the given kind. prefix is only used by
// KindString. An unknown kind yields ErrInvalidIdentifier.
func New(kind Kind, prefix string) (Manager, error) {
	switch kind {
	case KindInt64, "":
		return NewInt64Manager(), nil
	case KindString:
		return NewStringManager(prefix), nil
	case KindUUID:
		return NewUUIDManager(), nil
	case KindAny:
		return NewAnyManager(), nil
	default:
		return nil, fmt.Errorf("%w: unknown manager kind %q", ErrInvalidIdentifier, kind)
	}
}

// invalid wraps ErrInvalidIdentifier with the offending raw value's type.
func invalid(raw any, want string) error {
	return fmt.Errorf("%w: %T(%v) is not convertible to %s", ErrInvalidIdentifier, raw, raw, want)
}
