// SPDX-License-Identifier: MPL-2.0

package main

import (
	"io"
	"os"
	"strings"

	"devcon-cli/internal/console"
	"devcon-cli/internal/registry"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runCmd decodes and dispatches a single command line given as arguments.
var runCmd = &cobra.Command{
	Use:   "run <type> [args...]",
	Short: "Decode and run one console line",
	Long: `Decode a single console line and run the resulting command.

The whole argument list is joined into one line, so quoting follows your
shell's rules:

  devcon run setgold 100
  devcon run setgold --gold 100
  devcon run spawn '"slime"' 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := console.New(console.Options{
			Registry: registry.DefaultRegistry,
			Decoder:  cfg.Decoder(),
			Logger:   newLogger(),
		})
		return c.Eval(cmd.Context(), strings.Join(args, " "))
	},
}

// newLogger builds the session logger honoring the verbose setting.
func newLogger() *log.Logger {
	if cfg.UI.Verbose {
		return log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	}
	return log.New(io.Discard)
}
