// SPDX-License-Identifier: MPL-2.0

package cliargs

import "fmt"

type (
	// GrammarError reports malformed input: an unterminated quote, an
	// unterminated parenthesis, or an empty line where a leading token is
	// required. The grammar is simple enough that no position tracking is
	// attached to the message.
	GrammarError struct {
		Msg string
	}

	// ArityError reports a mismatch between tokens and the field schema:
	// more positional tokens than schema fields, or a keyed token whose
	// required value is missing.
	ArityError struct {
		Msg string
	}
)

func (e *GrammarError) Error() string {
	return fmt.Sprintf("grammar error: %s", e.Msg)
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity error: %s", e.Msg)
}

func grammarErrorf(format string, args ...any) *GrammarError {
	return &GrammarError{Msg: fmt.Sprintf(format, args...)}
}

func arityErrorf(format string, args ...any) *ArityError {
	return &ArityError{Msg: fmt.Sprintf(format, args...)}
}
