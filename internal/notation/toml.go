// SPDX-License-Identifier: MPL-2.0

package notation

import (
	"fmt"
	"reflect"

	"github.com/pelletier/go-toml/v2"
)

// TOML decodes argument spans as TOML. A parenthesized span is parsed as a
// table body ("(gold = 200)"), any other span as a single TOML value.
type TOML struct{}

// NewTOML creates a TOML-backed notation decoder.
func NewTOML() *TOML {
	return &TOML{}
}

// Decode implements Decoder.
func (t *TOML) Decode(text string, dst any) error {
	if body, ok := structBody(text); ok {
		if err := toml.Unmarshal([]byte(body), dst); err != nil {
			return fmt.Errorf("decode %q: %w", text, err)
		}
		return nil
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode %q: destination must be a non-nil pointer", text)
	}

	// TOML has no standalone-value documents, so a scalar span is wrapped
	// in a synthetic single-key table typed after the destination.
	wrapType := reflect.StructOf([]reflect.StructField{{
		Name: "V",
		Type: rv.Elem().Type(),
		Tag:  `toml:"v"`,
	}})
	wrap := reflect.New(wrapType)
	if err := toml.Unmarshal([]byte("v = "+text), wrap.Interface()); err != nil {
		return fmt.Errorf("decode %q: %w", text, err)
	}
	rv.Elem().Set(wrap.Elem().Field(0))
	return nil
}
