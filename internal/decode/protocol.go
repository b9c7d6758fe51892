// SPDX-License-Identifier: MPL-2.0

package decode

type (
	// Source is one undecoded input. The consumer requests the shape it
	// expects; a Source implements the operations its input can satisfy
	// and returns ErrUnsupportedOperation for the rest.
	Source interface {
		// DecodeStruct decodes struct-shaped input with a known ordered
		// field schema, delivering the result to v as map-shaped data.
		DecodeStruct(fields []string, v Visitor) error
		// DecodeMap decodes map-shaped input whose keys are not known
		// statically.
		DecodeMap(v Visitor) error
		// DecodeScalar decodes a single primitive value into dst.
		DecodeScalar(dst any) error
	}

	// Visitor receives the shape-dispatched result of a decode call.
	Visitor interface {
		// VisitMap is invoked with map-shaped input. The visitor drains m
		// entry by entry; returning an error aborts the decode.
		VisitMap(m MapAccess) error
	}

	// MapAccess yields map entries one at a time. The contract is strict
	// alternation: each successful NextKey is followed by exactly one
	// DecodeValue before the next NextKey.
	MapAccess interface {
		// NextKey returns the next entry's field name, or ok == false once
		// all entries are drained.
		NextKey() (name string, ok bool)
		// DecodeValue decodes the current entry's value into dst, which
		// must be a non-nil pointer.
		DecodeValue(dst any) error
	}
)
