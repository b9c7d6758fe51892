// SPDX-License-Identifier: MPL-2.0

// Package notation turns a raw argument span into a typed Go value.
//
// The console's argument grammar treats quoted strings, scalars, and
// parenthesized sub-literals as opaque text; this package owns their
// interpretation. The Decoder interface keeps the notation pluggable: the
// default implementation compiles spans as CUE (the same language the
// config layer validates with), and a TOML implementation is provided
// for embeddings that prefer "key = value" sub-literals.
//
// A parenthesized span such as "(gold : 200)" decodes as a struct body;
// any other span decodes as a single literal. Delimiters arrive verbatim
// from the tokenizer and are stripped here, nowhere else.
package notation
