// SPDX-License-Identifier: MPL-2.0

package cliargs

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "   \t ",
			expected: nil,
		},
		{
			name:     "single positional",
			input:    "100",
			expected: []Token{{Value: "100", HasValue: true}},
		},
		{
			name:  "multiple positionals",
			input: "100 abc true",
			expected: []Token{
				{Value: "100", HasValue: true},
				{Value: "abc", HasValue: true},
				{Value: "true", HasValue: true},
			},
		},
		{
			name:     "keyed with value",
			input:    "--gold 100",
			expected: []Token{{Key: "gold", Value: "100", HasValue: true}},
		},
		{
			name:  "mixed positional and keyed",
			input: `100 --arg1 "200 "`,
			expected: []Token{
				{Value: "100", HasValue: true},
				{Key: "arg1", Value: `"200 "`, HasValue: true},
			},
		},
		{
			name:     "quoted span keeps delimiters and interior spaces",
			input:    `"some text "`,
			expected: []Token{{Value: `"some text "`, HasValue: true}},
		},
		{
			name:     "parenthesized span kept verbatim",
			input:    "--gold (gold : 200)",
			expected: []Token{{Key: "gold", Value: "(gold : 200)", HasValue: true}},
		},
		{
			name:     "trailing whitespace ignored",
			input:    "100  \t",
			expected: []Token{{Value: "100", HasValue: true}},
		},
		{
			name:     "trailing key without value",
			input:    "100 --flag",
			expected: []Token{{Value: "100", HasValue: true}, {Key: "flag"}},
		},
		{
			name:  "tabs and newlines separate tokens",
			input: "100\t--arg1\n200",
			expected: []Token{
				{Value: "100", HasValue: true},
				{Key: "arg1", Value: "200", HasValue: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d: %#v", len(tokens), len(tt.expected), tokens)
			}
			for i, tok := range tokens {
				if tok != tt.expected[i] {
					t.Errorf("token %d = %#v, want %#v", i, tok, tt.expected[i])
				}
			}
		})
	}
}

func TestTokenizeGrammarErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated quote", `100 "abc`},
		{"unterminated parenthesis", "--gold (gold : 200"},
		{"bare double dash", "100 -- 200"},
		// The grammar has no escape sequences: the second quote ends the
		// span and the rest fails to terminate.
		{"escaped quote not supported", `"a \" b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			var gerr *GrammarError
			if !errors.As(err, &gerr) {
				t.Fatalf("expected *GrammarError, got %v", err)
			}
		})
	}
}

// Nested parentheses are not part of the grammar: the first ')' closes the
// span and the remainder is tokenized on its own rather than truncated away.
func TestTokenizeNestedParens(t *testing.T) {
	tokens, err := Tokenize("(a (b))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2: %#v", len(tokens), tokens)
	}
	if tokens[0].Value != "(a (b)" {
		t.Errorf("first token = %q, want %q", tokens[0].Value, "(a (b)")
	}
	if tokens[1].Value != ")" {
		t.Errorf("second token = %q, want %q", tokens[1].Value, ")")
	}
}
