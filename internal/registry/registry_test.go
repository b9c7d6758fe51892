// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"slices"
	"testing"
)

type setGold struct {
	Gold uint `json:"gold"`
}

func newSetGoldRegistration() Registration {
	return Registration{
		Ident:  "SetGold",
		Path:   "devcon/SetGold",
		Schema: []string{"gold"},
		New:    func() any { return &setGold{} },
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(newSetGoldRegistration())

	tests := []struct {
		name  string
		query string
		found bool
	}{
		{"exact match", "SetGold", true},
		{"lowercase match", "setgold", true},
		{"uppercase match", "SETGOLD", true},
		{"mixed case match", "sEtGoLd", true},
		{"unknown type", "spawn", false},
		{"empty name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, ok := r.Lookup(tt.query)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.query, ok, tt.found)
			}
			if ok && reg.Path != "devcon/SetGold" {
				t.Errorf("Path = %q, want %q", reg.Path, "devcon/SetGold")
			}
		})
	}
}

func TestRegistryRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		reg  Registration
	}{
		{"empty name", Registration{New: func() any { return &setGold{} }}},
		{"missing factory", Registration{Ident: "SetGold"}},
		{"case-insensitive duplicate", Registration{Ident: "setgold", New: func() any { return &setGold{} }}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			r.Register(newSetGoldRegistration())

			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			r.Register(tt.reg)
		})
	}
}

func TestRegistryDefaultPath(t *testing.T) {
	r := NewRegistry()
	r.Register(Registration{Ident: "Spawn", New: func() any { return &setGold{} }})

	reg, ok := r.Lookup("spawn")
	if !ok {
		t.Fatal("registration not found")
	}
	if reg.Path != "Spawn" {
		t.Errorf("Path = %q, want %q", reg.Path, "Spawn")
	}
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	r.Register(Registration{Ident: "Teleport", New: func() any { return &setGold{} }})
	r.Register(Registration{Ident: "SetGold", New: func() any { return &setGold{} }})

	names := r.Names()
	if !slices.Equal(names, []string{"SetGold", "Teleport"}) {
		t.Errorf("Names() = %v", names)
	}
}

func TestFieldsOf(t *testing.T) {
	type multiArgs struct {
		Arg0      uint    `json:"arg0"`
		Arg1      string  `json:"arg1"`
		TextInput string  // no tag: snake-cased
		Renamed   int     `json:"custom_name,omitempty"`
		hidden    float64 //nolint:unused // exercises the unexported skip
	}

	fields := FieldsOf(multiArgs{})
	want := []string{"arg0", "arg1", "text_input", "custom_name"}
	if !slices.Equal(fields, want) {
		t.Errorf("FieldsOf = %v, want %v", fields, want)
	}

	t.Run("pointer target", func(t *testing.T) {
		if !slices.Equal(FieldsOf(&multiArgs{}), want) {
			t.Error("pointer target should yield the same schema")
		}
	})

	t.Run("non-struct panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		FieldsOf(42)
	})
}

func TestOf(t *testing.T) {
	reg := Of[setGold]("SetGold")
	if reg.Path != "devcon/SetGold" {
		t.Errorf("Path = %q", reg.Path)
	}
	if !slices.Equal(reg.Schema, []string{"gold"}) {
		t.Errorf("Schema = %v", reg.Schema)
	}
	if _, ok := reg.New().(*setGold); !ok {
		t.Errorf("New() = %T, want *setGold", reg.New())
	}
}
