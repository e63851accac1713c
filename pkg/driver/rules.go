package driver

import "strings"

// Rule resolves filesystem types not present in the exact table. Rules are
// evaluated in fixed order so the fallback chain stays auditable.
type Rule struct {
	// Name identifies the rule in logs and tests.
	Name string

	// Match reports whether the rule applies to the (lowercased) type
	// string.
	Match func(fsType string) bool

	// Describe builds the descriptor for a matched type.
	Describe func(fsType string) Descriptor
}

// fuseDescriptor builds a FUSE descriptor carrying the sub-driver name.
func fuseDescriptor(fsType, name string) Descriptor {
	return Descriptor{
		Type:        fsType,
		Category:    CategoryFUSE,
		OptionStyle: StyleMap,
		FUSE:        &FUSEDriver{Name: name},
	}
}

// standardRules returns the default fallback chain: FUSE detection by
// naming convention. The `fuse.NAME` and `fuse:NAME` prefixes and the
// `NAME-fuse` suffix all identify userspace drivers.
func standardRules() []Rule {
	return []Rule{
		{
			Name:  "fuse-dot-prefix",
			Match: func(t string) bool { return strings.HasPrefix(t, "fuse.") && len(t) > len("fuse.") },
			Describe: func(t string) Descriptor {
				return fuseDescriptor(t, strings.TrimPrefix(t, "fuse."))
			},
		},
		{
			Name:  "fuse-colon-prefix",
			Match: func(t string) bool { return strings.HasPrefix(t, "fuse:") && len(t) > len("fuse:") },
			Describe: func(t string) Descriptor {
				return fuseDescriptor(t, strings.TrimPrefix(t, "fuse:"))
			},
		},
		{
			Name:  "fuse-suffix",
			Match: func(t string) bool { return strings.HasSuffix(t, "-fuse") && len(t) > len("-fuse") },
			Describe: func(t string) Descriptor {
				return fuseDescriptor(t, strings.TrimSuffix(t, "-fuse"))
			},
		},
	}
}
