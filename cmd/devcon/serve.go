// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"devcon-cli/internal/console"
	"devcon-cli/internal/registry"
	"devcon-cli/internal/remote"

	"github.com/spf13/cobra"
)

// serveCmd serves the console over SSH for remote sessions.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the console over SSH",
	Long: `Serve the interactive console over SSH on the configured address
(loopback by default):

  devcon serve
  ssh -p <port> 127.0.0.1`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		srv := remote.New(remote.Config{
			Host: cfg.Remote.Host,
			Port: cfg.Remote.Port,
			Console: console.Options{
				Registry:    registry.DefaultRegistry,
				Decoder:     cfg.Decoder(),
				Prompt:      cfg.Prompt,
				RenderError: func(err error) string { return "error: " + err.Error() },
			},
		})
		if err := srv.Start(cmd.Context()); err != nil {
			return err
		}
		defer srv.Stop() //nolint:errcheck // best-effort shutdown
		fmt.Println(SuccessStyle.Render("console listening on " + srv.Addr()))

		// Block until the signal-aware root context ends the run.
		<-cmd.Context().Done()
		return nil
	},
}
