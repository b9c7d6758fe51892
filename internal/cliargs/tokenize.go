// SPDX-License-Identifier: MPL-2.0

package cliargs

import "strings"

// Token is one parsed unit of an input line. A Token with an empty Key is
// positional; otherwise it carries the name of a "--key value" pair.
// Value is a verbatim substring of the input: quoted and parenthesized
// spans retain their delimiters and interior bytes.
type Token struct {
	// Key is the flag name without the leading dashes, or "" for a
	// positional token.
	Key string
	// Value is the raw text of the token's value.
	Value string
	// HasValue is false only for a trailing "--key" with nothing after it.
	HasValue bool
}

// Positional reports whether the token was not introduced by "--".
func (t Token) Positional() bool { return t.Key == "" }

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}

// skipSpace returns input with leading whitespace removed.
func skipSpace(input string) string {
	i := 0
	for i < len(input) && isSpace(input[i]) {
		i++
	}
	return input[i:]
}

// scanValue parses one value from the start of input and returns it together
// with the remaining input. A value is tried in order as a double-quoted
// span, a parenthesized span, then a bareword (maximal non-whitespace run).
func scanValue(input string) (value, rest string, err error) {
	switch input[0] {
	case '"':
		end := strings.IndexByte(input[1:], '"')
		if end < 0 {
			return "", "", grammarErrorf("unterminated quote in %q", input)
		}
		// Delimiters stay part of the captured text.
		return input[:end+2], input[end+2:], nil
	case '(':
		end := strings.IndexByte(input[1:], ')')
		if end < 0 {
			return "", "", grammarErrorf("unterminated parenthesis in %q", input)
		}
		return input[:end+2], input[end+2:], nil
	default:
		i := 0
		for i < len(input) && !isSpace(input[i]) {
			i++
		}
		return input[:i], input[i:], nil
	}
}

// Tokenize splits an input line into its argument tokens. Empty input
// yields zero tokens; trailing whitespace is ignored.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	input = skipSpace(input)
	for input != "" {
		if strings.HasPrefix(input, "--") {
			rest := input[2:]
			i := 0
			for i < len(rest) && !isSpace(rest[i]) {
				i++
			}
			key := rest[:i]
			if key == "" {
				return nil, grammarErrorf("missing key after %q", "--")
			}
			rest = skipSpace(rest[i:])
			if rest == "" {
				tokens = append(tokens, Token{Key: key})
				break
			}
			value, remaining, err := scanValue(rest)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Key: key, Value: value, HasValue: true})
			input = skipSpace(remaining)
			continue
		}
		value, remaining, err := scanValue(input)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, Token{Value: value, HasValue: true})
		input = skipSpace(remaining)
	}
	return tokens, nil
}
