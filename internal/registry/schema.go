// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// FieldsOf derives the ordered field schema of a struct type from v, which
// must be a struct or a pointer to one. Field names come from the `json`
// tag when present (the notation decoders key off the same tag), otherwise
// from the snake-cased Go field name. Unexported fields are skipped.
func FieldsOf(v any) []string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("registry: FieldsOf needs a struct, got %s", t.Kind()))
	}

	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fields = append(fields, fieldName(f))
	}
	return fields
}

// Of builds a Registration for T with a reflect-derived schema and a
// zero-value factory. The canonical path is "devcon/<Ident>".
func Of[T any](ident string) Registration {
	var zero T
	return Registration{
		Ident:  ident,
		Path:   "devcon/" + ident,
		Schema: FieldsOf(zero),
		New:    func() any { return new(T) },
	}
}

// NameOf returns the console spelling of one struct field, following the
// same tag rules as FieldsOf.
func NameOf(f reflect.StructField) string {
	return fieldName(f)
}

func fieldName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("json"); ok {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return snakeCase(f.Name)
}

// snakeCase converts an exported Go field name to its console spelling,
// e.g. TextInput -> text_input, Arg0 -> arg0.
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
