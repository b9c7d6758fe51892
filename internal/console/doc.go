// SPDX-License-Identifier: MPL-2.0

// Package console implements the interactive developer console loop.
//
// Each input line is decoded against the session registry through the
// dynamic decode path and, when the decoded value is a runnable command,
// dispatched. A line either fully decodes and runs or is rejected with its
// decode error and no side effects; there is no partial application.
//
// The loop itself is transport-agnostic: the local REPL and the SSH-served
// console both drive the same Console over their own reader and writer.
package console
