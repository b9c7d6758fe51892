// SPDX-License-Identifier: MPL-2.0

// Package cliargs splits a single console input line into argument tokens
// and maps them onto an ordered field schema.
//
// The grammar is deliberately small: whitespace-separated tokens, where a
// token starting with "--" is a keyed argument and anything else is a
// positional value. A value is either a double-quoted span, a parenthesized
// span, or a maximal run of non-whitespace characters. Quoted and
// parenthesized spans keep their delimiters and interior bytes verbatim so
// that downstream value decoders receive the original text untouched.
//
// Escaped quotes inside quoted spans and nested parentheses inside
// parenthesized spans are not part of the grammar; inputs relying on either
// fail with a *GrammarError rather than being silently truncated.
package cliargs
