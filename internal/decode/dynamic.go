// SPDX-License-Identifier: MPL-2.0

package decode

import (
	"devcon-cli/internal/cliargs"
	"devcon-cli/internal/notation"
	"devcon-cli/internal/registry"
)

// Dynamic decodes a line whose target type is named by its first token.
// The name is resolved case-insensitively against a registry, and the
// remainder of the line is decoded with the registration's schema. The
// result is exposed as a single-entry map keyed by the registration's
// canonical identifier, so one generic decode call yields both which type
// was named and its decoded value.
type Dynamic struct {
	input string
	reg   *registry.Registry
	dec   notation.Decoder
}

// NewDynamic creates a dynamic decode source over one input line.
func NewDynamic(input string, reg *registry.Registry, dec notation.Decoder) *Dynamic {
	return &Dynamic{input: input, reg: reg, dec: dec}
}

// DecodeMap implements Source.
func (d *Dynamic) DecodeMap(v Visitor) error {
	name, rest := splitTypeName(d.input)
	if name == "" {
		return &cliargs.GrammarError{Msg: "empty input, expected a type name"}
	}
	reg, ok := d.reg.Lookup(name)
	if !ok {
		return &TypeNotFoundError{Name: name}
	}
	return v.VisitMap(&singleMapAccess{
		path: reg.Path,
		args: NewTyped(rest, d.dec),
		reg:  reg,
	})
}

// DecodeStruct implements Source. The schema is not known until the type
// name has been resolved, so the static operation is unsupported here.
func (d *Dynamic) DecodeStruct([]string, Visitor) error {
	return unsupportedf("dynamic input decodes as a map, not a struct")
}

// DecodeScalar implements Source.
func (d *Dynamic) DecodeScalar(any) error {
	return unsupportedf("dynamic input decodes as a map, not a scalar")
}

// splitTypeName strips the first whitespace-delimited run from input.
func splitTypeName(input string) (name, rest string) {
	i := 0
	for i < len(input) && (input[i] == ' ' || input[i] == '\t' || input[i] == '\n') {
		i++
	}
	start := i
	for i < len(input) && input[i] != ' ' && input[i] != '\t' && input[i] != '\n' {
		i++
	}
	return input[start:i], input[i:]
}

// singleMapAccess is the synthetic one-entry map produced by the dynamic
// path: key = canonical type identifier, value = a deferred typed decode
// over the rest of the line.
type singleMapAccess struct {
	path  string
	args  *Typed
	reg   registry.Registration
	index int
}

func (s *singleMapAccess) NextKey() (string, bool) {
	if s.index > 0 {
		return "", false
	}
	return s.path, true
}

func (s *singleMapAccess) DecodeValue(dst any) error {
	if s.index > 0 {
		return unsupportedf("value requested without a key")
	}
	s.index++
	return s.args.DecodeStruct(s.reg.Schema, &structVisitor{dst: dst})
}
