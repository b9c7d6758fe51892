// SPDX-License-Identifier: MPL-2.0

// Package config loads the devcon configuration.
//
// The config file is CUE, validated against an embedded #Config schema and
// merged into Viper on top of the built-in defaults, so a missing or
// partial file always yields a complete Config. The search location is
// platform-specific (XDG on Linux, Application Support on macOS, APPDATA
// on Windows) and can be overridden per call.
package config
