// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"devcon-cli/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"

	// verbose enables verbose output.
	verbose bool
	// cfgFile allows specifying a custom config file.
	cfgFile string

	// cfg is the loaded configuration, available to all subcommands.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "devcon",
		Short: "A typed developer console",
		Long: TitleStyle.Render("devcon") + SubtitleStyle.Render(" - A typed developer console") + `

devcon decodes single command lines like

  setgold --gold 100
  spawn "slime" --count 3

into typed values and dispatches them. The first token names a registered
type (matched case-insensitively); the rest of the line mixes positional
arguments, --name value pairs, quoted strings, and parenthesized
sub-literals interpreted by the configured value notation.

` + SubtitleStyle.Render("Examples:") + `
  devcon run setgold 100        Decode and run one line
  devcon repl                   Start the interactive console
  devcon serve                  Serve the console over SSH
  devcon types                  List registered command types`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/devcon/config.cue)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(typesCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the root command with fang's enhanced Cobra styling.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig reads the config file, if any.
func initRootConfig() {
	var (
		loaded *config.Config
		err    error
	)
	if cfgFile != "" {
		loaded, err = config.LoadFile(cfgFile)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		return
	}
	cfg = loaded
	if verbose {
		cfg.UI.Verbose = true
	}
}
