// SPDX-License-Identifier: MPL-2.0

package cliargs

type (
	// Arg is one resolved field of an ArgMap.
	Arg struct {
		// Raw is the field's raw text, delimiters included.
		Raw string
		// HasValue is false for a keyed token that arrived without a
		// value; whether that is an error is decided downstream.
		HasValue bool
	}

	// ArgMap maps field names to raw argument text. It remembers first-write
	// insertion order because consumers drain it entry by entry, and that
	// order is the order the arguments appeared on the line.
	ArgMap struct {
		keys   []string
		values map[string]Arg
	}
)

// NewArgMap creates an empty ArgMap.
func NewArgMap() *ArgMap {
	return &ArgMap{values: make(map[string]Arg)}
}

// Set inserts or overwrites the raw text for a field. A later write for the
// same field wins; the field keeps its original position.
func (m *ArgMap) Set(field string, arg Arg) {
	if _, exists := m.values[field]; !exists {
		m.keys = append(m.keys, field)
	}
	m.values[field] = arg
}

// Get returns the raw argument for a field.
func (m *ArgMap) Get(field string) (Arg, bool) {
	arg, ok := m.values[field]
	return arg, ok
}

// Keys returns the field names in insertion order.
func (m *ArgMap) Keys() []string { return m.keys }

// Len returns the number of distinct fields present.
func (m *ArgMap) Len() int { return len(m.keys) }

// Resolve assigns tokens to the fields of an ordered schema. Positional
// tokens fill schema fields left to right; keyed tokens bind to their own
// name as-is. Fields the line never mentions are simply absent from the
// result, left for the target's own defaulting to cover.
func Resolve(tokens []Token, schema []string) (*ArgMap, error) {
	m := NewArgMap()
	positional := 0
	for _, tok := range tokens {
		if tok.Positional() {
			if positional >= len(schema) {
				return nil, arityErrorf("%d positional arguments for %d fields", positional+1, len(schema))
			}
			m.Set(schema[positional], Arg{Raw: tok.Value, HasValue: true})
			positional++
			continue
		}
		m.Set(tok.Key, Arg{Raw: tok.Value, HasValue: tok.HasValue})
	}
	return m, nil
}
