// SPDX-License-Identifier: MIT
// Package ids allocates and validates element identifiers for specgraph.
//
// A Manager owns one identifier space (vertices, edges or properties of a single
// graph). It has two duties:
//
//   - NextID produces a fresh identifier that is not in use by the owning
//     collection. Generation is monotonic; a value is never handed out twice.
//   - Convert normalizes a caller-supplied raw identifier into the canonical
//     type of the manager, failing with ErrInvalidIdentifier when the raw
//     value cannot be represented.
//
// Implementations:
//
//	Int64Manager  – 1, 2, 3, … (accepts any integer kind and numeric strings)
//	StringManager – "v1", "v2", … with a configurable prefix
//	UUIDManager   – random RFC 4122 UUIDs (github.com/google/uuid)
//	AnyManager    – int64 sequence, but accepts any comparable caller value
//
// All managers are safe for concurrent NextID calls; the counters are atomic.
package ids
