// SPDX-License-Identifier: MPL-2.0

// devcon is an interactive developer console: it decodes typed commands
// from single input lines and dispatches them against a type registry.
package main

func main() {
	Execute()
}
