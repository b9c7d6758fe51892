// SPDX-License-Identifier: MPL-2.0

package command

import (
	"context"
	"testing"

	"devcon-cli/internal/decode"
	"devcon-cli/internal/notation"
	"devcon-cli/internal/registry"
)

type echoCmd struct {
	Text string `json:"text"`

	ran *bool
}

func (c *echoCmd) Run(context.Context) error {
	if c.ran != nil {
		*c.ran = true
	}
	return nil
}

func TestRegisterInAndDispatch(t *testing.T) {
	r := registry.NewRegistry()
	RegisterIn[echoCmd](r, "Echo")

	_, value, err := decode.Resolve(`echo "hi"`, r, notation.NewCUE())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmd, ok := value.(*echoCmd)
	if !ok {
		t.Fatalf("value = %T, want *echoCmd", value)
	}
	if cmd.Text != "hi" {
		t.Errorf("text = %q", cmd.Text)
	}
	if err := Dispatch(context.Background(), value); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
}

func TestDispatchRejectsNonCommands(t *testing.T) {
	type plain struct{ Gold uint }
	if err := Dispatch(context.Background(), &plain{}); err == nil {
		t.Error("expected error for non-command value")
	}
}
