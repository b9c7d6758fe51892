// SPDX-License-Identifier: MPL-2.0

package decode

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOperation reports that the decode protocol was driven with
// an operation the source does not implement, e.g. asking the typed path
// for a scalar decode. This is a programmer-usage error, not a data error;
// test for it with errors.Is.
var ErrUnsupportedOperation = errors.New("unsupported decode operation")

var errUnknownField = errors.New("no such field")

type (
	// TypeNotFoundError reports that dynamic resolution found no
	// registration matching the line's leading type name.
	TypeNotFoundError struct {
		Name string
	}

	// ValueError reports that the notation decoder rejected a field's raw
	// text. The notation's own error is wrapped, not reinterpreted.
	ValueError struct {
		Field string
		Err   error
	}
)

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("type %q not registered", e.Name)
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }

func unsupportedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, fmt.Sprintf(format, args...))
}
