// SPDX-License-Identifier: MPL-2.0

package cliargs

import (
	"errors"
	"slices"
	"testing"
)

func mustTokenize(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("tokenize %q: %v", input, err)
	}
	return tokens
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		schema   []string
		expected map[string]string
		order    []string
	}{
		{
			name:     "positional fill in schema order",
			input:    "100 200",
			schema:   []string{"arg0", "arg1"},
			expected: map[string]string{"arg0": "100", "arg1": "200"},
			order:    []string{"arg0", "arg1"},
		},
		{
			name:     "keyed args bind to their own name",
			input:    "--arg1 200 --arg0 100",
			schema:   []string{"arg0", "arg1"},
			expected: map[string]string{"arg0": "100", "arg1": "200"},
			order:    []string{"arg1", "arg0"},
		},
		{
			name:     "mixed positional and keyed",
			input:    `100 --arg1 "200 "`,
			schema:   []string{"arg0", "arg1"},
			expected: map[string]string{"arg0": "100", "arg1": `"200 "`},
			order:    []string{"arg0", "arg1"},
		},
		{
			name:     "unfilled fields stay absent",
			input:    "100",
			schema:   []string{"arg0", "arg1", "arg2"},
			expected: map[string]string{"arg0": "100"},
			order:    []string{"arg0"},
		},
		{
			name:     "last write wins for duplicate keys",
			input:    "--gold 100 --gold 200",
			schema:   []string{"gold"},
			expected: map[string]string{"gold": "200"},
			order:    []string{"gold"},
		},
		{
			name:     "positional then keyed overwrite of same field",
			input:    "100 --arg0 200",
			schema:   []string{"arg0"},
			expected: map[string]string{"arg0": "200"},
			order:    []string{"arg0"},
		},
		{
			name:     "empty input with empty schema",
			input:    "",
			schema:   nil,
			expected: map[string]string{},
			order:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Resolve(mustTokenize(t, tt.input), tt.schema)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Len() != len(tt.expected) {
				t.Fatalf("got %d fields, want %d", m.Len(), len(tt.expected))
			}
			for field, raw := range tt.expected {
				arg, ok := m.Get(field)
				if !ok {
					t.Fatalf("field %q missing", field)
				}
				if arg.Raw != raw {
					t.Errorf("field %q = %q, want %q", field, arg.Raw, raw)
				}
			}
			if !slices.Equal(m.Keys(), tt.order) {
				t.Errorf("key order = %v, want %v", m.Keys(), tt.order)
			}
		})
	}
}

func TestResolveTooManyPositionals(t *testing.T) {
	_, err := Resolve(mustTokenize(t, "100 200 300"), []string{"arg0", "arg1"})
	var aerr *ArityError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected *ArityError, got %v", err)
	}
}

func TestResolveKeyedWithoutValue(t *testing.T) {
	m, err := Resolve(mustTokenize(t, "--flag"), []string{"flag"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arg, ok := m.Get("flag")
	if !ok {
		t.Fatal("field flag missing")
	}
	if arg.HasValue {
		t.Error("flag should be marked as having no value")
	}
}
