// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"devcon-cli/internal/notation"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidNotation is returned when a notation name is not recognized.
	ErrInvalidNotation = errors.New("invalid notation")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
)

type (
	// ColorScheme selects the console color handling.
	ColorScheme string

	// Config holds the complete devcon configuration.
	Config struct {
		// Prompt is printed before each console read.
		Prompt string `mapstructure:"prompt"`
		// Notation selects the argument value notation.
		Notation notation.Name `mapstructure:"notation"`
		// HistoryFile stores console input lines across sessions.
		HistoryFile string `mapstructure:"history_file"`
		// UI configures console presentation.
		UI UIConfig `mapstructure:"ui"`
		// Remote configures the SSH-served console.
		Remote RemoteConfig `mapstructure:"remote"`
	}

	// UIConfig configures console presentation.
	UIConfig struct {
		Verbose     bool        `mapstructure:"verbose"`
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
	}

	// RemoteConfig configures the SSH-served console.
	RemoteConfig struct {
		Enabled bool   `mapstructure:"enabled"`
		Host    string `mapstructure:"host"`
		Port    int    `mapstructure:"port"`
	}
)

// DefaultConfig returns the built-in defaults used when no config file is
// present.
func DefaultConfig() *Config {
	return &Config{
		Prompt:   "> ",
		Notation: notation.CUEName,
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
		Remote: RemoteConfig{
			Enabled: false,
			Host:    "127.0.0.1",
			Port:    0,
		},
	}
}

// Validate checks constraints the CUE schema cannot express for values set
// programmatically rather than through a file.
func (c *Config) Validate() error {
	switch c.Notation {
	case notation.CUEName, notation.TOMLName:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidNotation, c.Notation)
	}
	switch c.UI.ColorScheme {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorScheme, c.UI.ColorScheme)
	}
	if c.Remote.Port < 0 || c.Remote.Port > 65535 {
		return fmt.Errorf("remote port %d out of range", c.Remote.Port)
	}
	return nil
}

// Decoder returns the notation decoder the config selects.
func (c *Config) Decoder() notation.Decoder {
	if c.Notation == notation.TOMLName {
		return notation.NewTOML()
	}
	return notation.NewCUE()
}
