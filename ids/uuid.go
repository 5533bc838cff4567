// SPDX-License-Identifier: MIT
// File: uuid.go
// Role: Random UUID identifiers.

package ids

import "github.com/google/uuid"

// UUIDManager hands out random (version 4) UUIDs.
type UUIDManager struct{}

// NewUUIDManager returns a UUID-backed manager.
func NewUUIDManager() *UUIDManager {
	return &UUIDManager{}
}

// NextID returns a random UUID; a collision with a live element is retried.
func (m *UUIDManager) NextID(inUse InUseFunc) ID {
	for {
		id := uuid.New()
		if inUse == nil || !inUse(id) {
			return id
		}
	}
}

// Convert accepts uuid.UUID, its textual forms and 16-byte slices or arrays.
func (m *UUIDManager) Convert(raw any) (ID, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case uuid.UUID:
		return v, nil
	case [16]byte:
		return uuid.UUID(v), nil
	case []byte:
		id, err := uuid.FromBytes(v)
		if err != nil {
			return nil, invalid(raw, "uuid")
		}
		return id, nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, invalid(raw, "uuid")
		}
		return id, nil
	default:
		return nil, invalid(raw, "uuid")
	}
}
