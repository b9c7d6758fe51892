// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

type (
	// Registration describes one decodable console type.
	Registration struct {
		// Ident is the short type name users type as the first token of a
		// line. Matching against it is case-insensitive.
		Ident string
		// Path is the canonical identifier reported to decode consumers,
		// e.g. "devcon/SetGold". Defaults to Ident when empty.
		Path string
		// Schema is the ordered field-name list; order determines how
		// positional arguments fill fields.
		Schema []string
		// New returns a pointer to a fresh zero value of the type. Field
		// defaults on the zero value cover arguments the line omits.
		New func() any
	}

	// Registry manages the mapping of console type names to registrations.
	// It is safe for concurrent use.
	Registry struct {
		mu      sync.RWMutex
		entries []Registration
	}
)

// DefaultRegistry is the global registry used by the console. Types are
// registered during program initialization.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a type to the registry.
// Panics if a registration with the same name (case-insensitively) exists.
func (r *Registry) Register(reg Registration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reg.Ident == "" {
		panic("registry: cannot register type with empty name")
	}
	if reg.New == nil {
		panic(fmt.Sprintf("registry: type %q registered without a factory", reg.Ident))
	}
	if reg.Path == "" {
		reg.Path = reg.Ident
	}
	for _, existing := range r.entries {
		if strings.EqualFold(existing.Ident, reg.Ident) {
			panic(fmt.Sprintf("registry: type %q already registered", reg.Ident))
		}
	}
	r.entries = append(r.entries, reg)
}

// Lookup retrieves a registration by short name, matched case-insensitively.
// The first match wins. Returns false if no registration matches.
func (r *Registry) Lookup(name string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, reg := range r.entries {
		if strings.EqualFold(reg.Ident, name) {
			return reg, true
		}
	}
	return Registration{}, false
}

// LookupPath retrieves a registration by canonical identifier. Unlike
// Lookup, the match is exact.
func (r *Registry) LookupPath(path string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, reg := range r.entries {
		if reg.Path == path {
			return reg, true
		}
	}
	return Registration{}, false
}

// Names returns the short names of all registered types in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, reg := range r.entries {
		names = append(names, reg.Ident)
	}
	sort.Strings(names)
	return names
}

// All returns a snapshot of every registration in registration order.
func (r *Registry) All() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Registration, len(r.entries))
	copy(out, r.entries)
	return out
}

// RegisterDefault registers a type in the DefaultRegistry.
// This is typically called from init() functions.
func RegisterDefault(reg Registration) {
	DefaultRegistry.Register(reg)
}
