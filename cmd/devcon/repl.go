// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"devcon-cli/internal/console"
	"devcon-cli/internal/registry"

	"github.com/spf13/cobra"
)

// replCmd starts the interactive console on the current terminal.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive console",
	Long: `Read console lines from stdin until EOF or "quit".

Each line names a registered type and its arguments, e.g.

  > setgold 100
  > spawn "slime" --count 3
  > teleport 10.5 -3.25

Type "help" for the registered commands.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Println(SubtitleStyle.Render("devcon console - type \"help\" for commands, \"quit\" to leave"))
		c := console.New(console.Options{
			Registry:    registry.DefaultRegistry,
			Decoder:     cfg.Decoder(),
			Logger:      newLogger(),
			Prompt:      cfg.Prompt,
			HistoryFile: cfg.HistoryFile,
			RenderError: func(err error) string {
				return ErrorStyle.Render("error: ") + err.Error()
			},
		})
		return c.Run(cmd.Context(), os.Stdin, os.Stdout)
	},
}
