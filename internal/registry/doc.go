// SPDX-License-Identifier: MPL-2.0

// Package registry maintains the mapping of console type names to their
// decode descriptors.
//
// A Registration carries everything the dynamic decode path needs to turn
// "setgold --gold 100" into a typed value: the short name matched
// case-insensitively against the line's first token, the canonical
// identifier reported back to the consumer, the ordered field schema used
// to place positional arguments, and a factory producing a fresh
// zero-valued instance whose field defaults cover omitted arguments.
//
// The registry is populated once at startup by explicit Register calls and
// is read-only from the decoder's perspective. Registration concurrent
// with decoding must be serialized by the embedder; the registry itself is
// safe for concurrent use.
package registry
