// SPDX-License-Identifier: MPL-2.0

package notation

import "strings"

// Decoder interprets one raw argument span. Implementations receive the
// span exactly as it appeared on the input line, delimiters included, and
// decode it into dst, which must be a non-nil pointer.
type Decoder interface {
	// Decode parses text into dst. The returned error is the notation's
	// own; callers wrap it rather than reinterpret it.
	Decode(text string, dst any) error
}

// Name identifies a built-in notation in configuration.
type Name string

const (
	// CUEName selects the CUE-backed decoder.
	CUEName Name = "cue"
	// TOMLName selects the TOML-backed decoder.
	TOMLName Name = "toml"
)

// structBody extracts the interior of a parenthesized span. ok is false
// when the span is not parenthesized.
func structBody(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) >= 2 && trimmed[0] == '(' && trimmed[len(trimmed)-1] == ')' {
		return trimmed[1 : len(trimmed)-1], true
	}
	return "", false
}
