// SPDX-License-Identifier: MPL-2.0

// Package command defines the dispatch side of the dev console: a decoded
// value that implements Command can be applied to the running program.
// Decoding and dispatch stay decoupled: the decoder produces plain
// values, and this package decides what running one means.
package command

import (
	"context"
	"fmt"

	"devcon-cli/internal/registry"
)

type (
	// Command is implemented by console command types. Run applies the
	// decoded command; it must be side-effect-free on error so a rejected
	// line leaves the program untouched.
	Command interface {
		Run(ctx context.Context) error
	}

	// Ptr constrains a pointer type that implements Command, so Register
	// can verify command-ness at compile time while the registry works
	// with plain values.
	Ptr[T any] interface {
		*T
		Command
	}
)

// Register registers the command type T under ident in the default
// registry. Typically called from init() functions of command files.
func Register[T any, P Ptr[T]](ident string) {
	registry.RegisterDefault(registry.Of[T](ident))
}

// RegisterIn registers T under ident in a specific registry.
func RegisterIn[T any, P Ptr[T]](r *registry.Registry, ident string) {
	r.Register(registry.Of[T](ident))
}

// Dispatch runs a decoded value as a command. Values that do not implement
// Command are rejected, which keeps decode-only registrations inert.
func Dispatch(ctx context.Context, v any) error {
	cmd, ok := v.(Command)
	if !ok {
		return fmt.Errorf("%T is not a runnable command", v)
	}
	return cmd.Run(ctx)
}
