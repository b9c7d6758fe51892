// SPDX-License-Identifier: MPL-2.0

package notation

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// CUE decodes argument spans as CUE expressions. A parenthesized span is
// compiled as a struct body, everything else as a single expression, then
// decoded into the destination with the usual CUE-to-Go rules.
//
// A CUE value is not safe for concurrent mutation, but this decoder only
// compiles and reads, so one instance may serve concurrent decode calls.
type CUE struct {
	ctx *cue.Context
}

// NewCUE creates a CUE-backed notation decoder.
func NewCUE() *CUE {
	return &CUE{ctx: cuecontext.New()}
}

// Decode implements Decoder.
func (c *CUE) Decode(text string, dst any) error {
	src := text
	if body, ok := structBody(text); ok {
		src = "{" + body + "}"
	}

	v := c.ctx.CompileString(src)
	if v.Err() != nil {
		return fmt.Errorf("compile %q: %w", text, v.Err())
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("validate %q: %w", text, err)
	}
	if err := v.Decode(dst); err != nil {
		return fmt.Errorf("decode %q: %w", text, err)
	}
	return nil
}
