// SPDX-License-Identifier: MPL-2.0

package decode

import (
	"reflect"

	"devcon-cli/internal/cliargs"
	"devcon-cli/internal/notation"
)

// Typed decodes a line whose target shape is statically known. It only
// implements the struct-shaped operation: the caller supplies the ordered
// field schema, positional arguments fill it left to right, and each
// field's raw text is interpreted by the notation decoder.
type Typed struct {
	input string
	dec   notation.Decoder
}

// NewTyped creates a typed decode source over one input line.
func NewTyped(input string, dec notation.Decoder) *Typed {
	return &Typed{input: input, dec: dec}
}

// DecodeStruct implements Source.
func (t *Typed) DecodeStruct(fields []string, v Visitor) error {
	tokens, err := cliargs.Tokenize(t.input)
	if err != nil {
		return err
	}
	args, err := cliargs.Resolve(tokens, fields)
	if err != nil {
		return err
	}
	return v.VisitMap(&argMapAccess{args: args, dec: t.dec})
}

// DecodeMap implements Source. Map-shaped decoding needs a leading type
// name and belongs to the dynamic path.
func (t *Typed) DecodeMap(Visitor) error {
	return unsupportedf("typed input decodes as a struct, not a map")
}

// DecodeScalar implements Source.
func (t *Typed) DecodeScalar(any) error {
	return unsupportedf("typed input decodes as a struct, not a scalar")
}

// argMapAccess drains a resolved ArgMap in its own insertion order.
type argMapAccess struct {
	args  *cliargs.ArgMap
	dec   notation.Decoder
	index int
}

func (a *argMapAccess) NextKey() (string, bool) {
	keys := a.args.Keys()
	if a.index >= len(keys) {
		return "", false
	}
	return keys[a.index], true
}

func (a *argMapAccess) DecodeValue(dst any) error {
	keys := a.args.Keys()
	if a.index >= len(keys) {
		return unsupportedf("value requested without a key")
	}
	field := keys[a.index]
	a.index++

	arg, _ := a.args.Get(field)

	// Optional fields are pointer-typed; decode into a fresh value and
	// point at it, so the notation decoder only ever sees concrete
	// destinations.
	if rv := reflect.ValueOf(dst); rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Pointer {
		if !arg.HasValue {
			return nil
		}
		inner := reflect.New(rv.Elem().Type().Elem())
		if err := a.dec.Decode(arg.Raw, inner.Interface()); err != nil {
			return &ValueError{Field: field, Err: err}
		}
		rv.Elem().Set(inner)
		return nil
	}

	if !arg.HasValue {
		// "--flag" with nothing after it and nowhere to default to.
		return &cliargs.ArityError{Msg: "flag --" + field + " expects a value"}
	}
	if err := a.dec.Decode(arg.Raw, dst); err != nil {
		return &ValueError{Field: field, Err: err}
	}
	return nil
}
