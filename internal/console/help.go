// SPDX-License-Identifier: MPL-2.0

package console

import (
	"strings"

	"devcon-cli/internal/registry"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

var render = glamour.Render

// renderHelp builds a markdown summary of the registered commands and
// renders it for the terminal.
func (c *Console) renderHelp() (string, error) {
	regs := c.reg.All()
	slices.SortFunc(regs, func(a, b registry.Registration) int {
		return strings.Compare(a.Ident, b.Ident)
	})

	var md strings.Builder
	md.WriteString("# Commands\n\n")
	md.WriteString("Arguments are positional in field order; any field can also be set with `--name value`.\n\n")
	for _, reg := range regs {
		md.WriteString("- **" + reg.Ident + "**")
		if len(reg.Schema) > 0 {
			md.WriteString(": `" + strings.Join(reg.Schema, "` `") + "`")
		}
		md.WriteString("\n")
	}
	md.WriteString("\nBuiltins: `help`, `quit`, `exit`.\n")
	return render(md.String(), "dark")
}
