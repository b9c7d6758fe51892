// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"strings"

	"devcon-cli/internal/registry"

	"github.com/spf13/cobra"
)

// typesCmd lists the registered command types and their schemas.
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List registered command types",
	RunE: func(_ *cobra.Command, _ []string) error {
		for _, reg := range registry.DefaultRegistry.All() {
			line := TypeStyle.Render(reg.Ident)
			if len(reg.Schema) > 0 {
				line += SubtitleStyle.Render("  " + strings.Join(reg.Schema, " "))
			}
			fmt.Println(line)
		}
		return nil
	},
}
