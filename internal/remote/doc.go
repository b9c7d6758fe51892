// SPDX-License-Identifier: MPL-2.0

// Package remote serves the developer console over SSH using the Wish
// library, so a running program can be poked at from another terminal.
// The server binds to loopback by default and accepts any credentials;
// embedding programs that expose it beyond loopback must front it with
// their own authentication.
package remote
