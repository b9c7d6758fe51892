// SPDX-License-Identifier: MPL-2.0

// Package decode turns a console input line into a typed value through a
// visitor-driven protocol.
//
// Two entry points exist. The typed path (Typed, Unmarshal) is for callers
// that already know the target shape and supply its ordered field schema.
// The dynamic path (Dynamic, Resolve) is for registry-driven callers: the
// line's first token names a type that is looked up case-insensitively in
// a registry, after which decoding proceeds over the remainder of the line
// with the registration's schema.
//
// Both paths expose their result as map-shaped input drained one entry at
// a time through MapAccess. Each entry's raw text is handed to the
// injected notation decoder; the protocol itself never interprets value
// syntax. Decoding is all-or-nothing per line: every error propagates to
// the caller with no partial result.
//
// Entries are exposed in the argument map's own insertion order, which is
// the order arguments appeared on the line, not schema order. Consumers
// that address fields by name (like Unmarshal) are unaffected; order-
// sensitive consumers must not assume schema order.
package decode
