package layout

import (
	"sort"

	"github.com/typomap/typomap/pkg/errors"
)

// Registry holds the set of known named layouts. Layouts are added by
// registering new definitions, never by modifying existing ones; all
// lookups after construction are read-only, so a fully built Registry
// is safe for concurrent readers.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register validates def and adds it to the registry.
// Registering a name that already exists fails: existing layouts are
// immutable and cannot be overridden.
func (r *Registry) Register(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if _, exists := r.defs[def.Name]; exists {
		return errors.New(errors.ErrCodeInvalidLayout, "layout %q is already registered", def.Name)
	}
	r.defs[def.Name] = def
	return nil
}

// Get resolves a layout by name.
func (r *Registry) Get(name string) (Definition, error) {
	def, ok := r.defs[name]
	if !ok {
		return Definition{}, errors.New(errors.ErrCodeUnknownLayout, "no such layout: %s", name)
	}
	return def, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Names returns all registered layout names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered layouts.
func (r *Registry) Len() int {
	return len(r.defs)
}
