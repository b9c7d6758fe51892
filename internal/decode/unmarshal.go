// SPDX-License-Identifier: MPL-2.0

package decode

import (
	"fmt"
	"reflect"

	"devcon-cli/internal/notation"
	"devcon-cli/internal/registry"
)

// Unmarshal decodes a typed line into dst, a non-nil pointer to a struct.
// The schema lists the target's field names in declaration order; derive
// it with registry.FieldsOf when the target is a Go struct. Fields the
// line omits keep their values in dst, so a zero dst gives zero defaults.
func Unmarshal(input string, schema []string, dst any, dec notation.Decoder) error {
	return NewTyped(input, dec).DecodeStruct(schema, &structVisitor{dst: dst})
}

// Resolve decodes a dynamically named line against a registry. It returns
// the matched registration's canonical identifier and a freshly
// constructed value of the registered type with the line's arguments
// decoded into it.
func Resolve(input string, reg *registry.Registry, dec notation.Decoder) (string, any, error) {
	vis := &resolveVisitor{reg: reg}
	if err := NewDynamic(input, reg, dec).DecodeMap(vis); err != nil {
		return "", nil, err
	}
	return vis.path, vis.value, nil
}

// structVisitor is the reflection-backed protocol consumer: it addresses
// struct fields by name and lets the map access decode into them in place.
type structVisitor struct {
	dst any
}

func (s *structVisitor) VisitMap(m MapAccess) error {
	rv := reflect.ValueOf(s.dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode destination must be a non-nil pointer, got %T", s.dst)
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return fmt.Errorf("decode destination must point to a struct, got %T", s.dst)
	}

	for {
		name, ok := m.NextKey()
		if !ok {
			return nil
		}
		field, ok := fieldNamed(elem, name)
		if !ok {
			return &ValueError{Field: name, Err: errUnknownField}
		}
		if err := m.DecodeValue(field.Addr().Interface()); err != nil {
			return err
		}
	}
}

// fieldNamed locates the exported struct field whose console name matches.
func fieldNamed(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if registry.NameOf(f) == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// resolveVisitor drains the dynamic path's single-entry map, constructing
// the registered type named by the key.
type resolveVisitor struct {
	reg   *registry.Registry
	path  string
	value any
}

func (r *resolveVisitor) VisitMap(m MapAccess) error {
	path, ok := m.NextKey()
	if !ok {
		return unsupportedf("dynamic decode produced no entry")
	}
	reg, ok := r.reg.LookupPath(path)
	if !ok {
		return &TypeNotFoundError{Name: path}
	}
	value := reg.New()
	if err := m.DecodeValue(value); err != nil {
		return err
	}
	r.path = path
	r.value = value
	return nil
}
