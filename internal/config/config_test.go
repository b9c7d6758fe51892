// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"devcon-cli/internal/notation"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.cue"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != "> " {
		t.Errorf("prompt = %q", cfg.Prompt)
	}
	if cfg.Notation != notation.CUEName {
		t.Errorf("notation = %q", cfg.Notation)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("color scheme = %q", cfg.UI.ColorScheme)
	}
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
prompt:   "dev# "
notation: "toml"
ui: verbose: true
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Prompt != "dev# " {
		t.Errorf("prompt = %q", cfg.Prompt)
	}
	if cfg.Notation != notation.TOMLName {
		t.Errorf("notation = %q", cfg.Notation)
	}
	if !cfg.UI.Verbose {
		t.Error("verbose should be true")
	}
	// Untouched fields keep their defaults.
	if cfg.Remote.Host != "127.0.0.1" {
		t.Errorf("remote host = %q", cfg.Remote.Host)
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad notation value", `notation: "ron"`},
		{"bad port", `remote: port: 99999`},
		{"syntax error", `prompt: "unclosed`},
		{"unknown color scheme", `ui: color_scheme: "sepia"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFile(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	cfg.Notation = "ron"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("expected ErrInvalidNotation, got %v", err)
	}
}

func TestConfigDecoder(t *testing.T) {
	cfg := DefaultConfig()
	if _, ok := cfg.Decoder().(*notation.CUE); !ok {
		t.Errorf("default decoder = %T", cfg.Decoder())
	}
	cfg.Notation = notation.TOMLName
	if _, ok := cfg.Decoder().(*notation.TOML); !ok {
		t.Errorf("toml decoder = %T", cfg.Decoder())
	}
}
