package driver

import (
	"sort"
	"strings"
	"sync"
)

// Registry maps filesystem-type identifiers to driver descriptors.
//
// Resolution order for Lookup:
//  1. exact match on the lowercased type string
//  2. pattern rules in registration order (FUSE naming conventions)
//  3. an unknown-category default descriptor
//
// Lookup never fails: unmatched types degrade to CategoryUnknown. The
// registry never mutates after construction, so concurrent lookups need no
// synchronization.
type Registry struct {
	exact map[string]Descriptor
	rules []Rule
}

// New builds a registry from an explicit table and rule chain. The table is
// copied; later changes to the argument do not affect the registry. Keys
// are lowercased on insertion.
func New(table map[string]Descriptor, rules []Rule) *Registry {
	exact := make(map[string]Descriptor, len(table))
	for k, d := range table {
		k = strings.ToLower(k)
		if d.Type == "" {
			d.Type = k
		}
		if d.OptionStyle == "" {
			d.OptionStyle = StyleMap
		}
		exact[k] = d
	}
	return &Registry{exact: exact, rules: rules}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return New(builtinTable(), standardRules())
})

// Default returns the canonical process-wide registry, constructed once on
// first use from the builtin table and standard FUSE rules.
func Default() *Registry {
	return defaultRegistry()
}

// Lookup resolves a filesystem type to its descriptor. The type string is
// trimmed and lowercased before matching.
func (r *Registry) Lookup(fsType string) Descriptor {
	t := strings.ToLower(strings.TrimSpace(fsType))

	if d, ok := r.exact[t]; ok {
		return d
	}

	for _, rule := range r.rules {
		if rule.Match(t) {
			return rule.Describe(t)
		}
	}

	return Descriptor{
		Type:        t,
		Category:    CategoryUnknown,
		OptionStyle: StyleMap,
	}
}

// Contains reports whether the exact table has an entry for the type.
func (r *Registry) Contains(fsType string) bool {
	_, ok := r.exact[strings.ToLower(strings.TrimSpace(fsType))]
	return ok
}

// Types returns all exactly-registered filesystem types, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.exact))
	for t := range r.exact {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Len returns the number of exact table entries.
func (r *Registry) Len() int {
	return len(r.exact)
}

// WithOverrides returns a new registry whose table is this registry's table
// with the given entries added or replaced. The receiver is not modified.
func (r *Registry) WithOverrides(overrides map[string]Descriptor) *Registry {
	merged := make(map[string]Descriptor, len(r.exact)+len(overrides))
	for k, d := range r.exact {
		merged[k] = d
	}
	for k, d := range overrides {
		merged[strings.ToLower(k)] = d
	}
	return New(merged, r.rules)
}
