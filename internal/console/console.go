// SPDX-License-Identifier: MPL-2.0

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"devcon-cli/internal/command"
	"devcon-cli/internal/decode"
	"devcon-cli/internal/notation"
	"devcon-cli/internal/registry"

	"github.com/charmbracelet/log"
)

type (
	// Options configures a Console. Zero-value fields get defaults.
	Options struct {
		// Registry resolves type names; defaults to registry.DefaultRegistry.
		Registry *registry.Registry
		// Decoder interprets argument values; defaults to the CUE notation.
		Decoder notation.Decoder
		// Logger receives session events; defaults to a stderr logger.
		Logger *log.Logger
		// Prompt is printed before each read.
		Prompt string
		// HistoryFile, when set, appends each non-empty line.
		HistoryFile string
		// RenderError formats a rejected line's error for display.
		// Defaults to a plain "error: ..." line.
		RenderError func(error) string
	}

	// Console reads command lines, decodes them, and dispatches the
	// decoded commands.
	Console struct {
		reg         *registry.Registry
		dec         notation.Decoder
		logger      *log.Logger
		prompt      string
		historyFile string
		renderError func(error) string
	}
)

// New creates a Console from opts.
func New(opts Options) *Console {
	c := &Console{
		reg:         opts.Registry,
		dec:         opts.Decoder,
		logger:      opts.Logger,
		prompt:      opts.Prompt,
		historyFile: opts.HistoryFile,
		renderError: opts.RenderError,
	}
	if c.reg == nil {
		c.reg = registry.DefaultRegistry
	}
	if c.dec == nil {
		c.dec = notation.NewCUE()
	}
	if c.logger == nil {
		c.logger = log.New(os.Stderr)
	}
	if c.prompt == "" {
		c.prompt = "> "
	}
	if c.renderError == nil {
		c.renderError = func(err error) string { return "error: " + err.Error() }
	}
	return c
}

// Run drives the read-decode-dispatch loop until in is drained, the
// context is canceled, or the user quits. Decode and dispatch failures are
// rendered to out and do not stop the loop.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, c.prompt)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "quit" || line == "exit":
			return nil
		case line == "help":
			help, err := c.renderHelp()
			if err != nil {
				fmt.Fprintln(out, c.renderError(err))
			} else {
				fmt.Fprint(out, help)
			}
		default:
			c.appendHistory(line)
			if err := c.Eval(ctx, line); err != nil {
				fmt.Fprintln(out, c.renderError(err))
			}
		}
		fmt.Fprint(out, c.prompt)
	}
	return scanner.Err()
}

// Eval decodes and dispatches a single line. The line is all-or-nothing:
// any error leaves the program state untouched.
func (c *Console) Eval(ctx context.Context, line string) error {
	path, value, err := decode.Resolve(line, c.reg, c.dec)
	if err != nil {
		return err
	}
	c.logger.Debug("decoded command", "type", path)
	if err := command.Dispatch(ctx, value); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (c *Console) appendHistory(line string) {
	if c.historyFile == "" {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		c.logger.Warn("history file unavailable", "path", c.historyFile, "err", err)
		return
	}
	defer f.Close() //nolint:errcheck // best-effort history
	fmt.Fprintln(f, line)
}
