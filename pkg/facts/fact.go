package facts

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/o0-o/mountfacts/pkg/driver"
)

// Fact is one normalized storage entry. The keys source, type, category,
// and options are always present; mount is omitted only for paging (swap)
// entries, which have no mount point. The remaining keys are optional
// supplements carried when the input provides them.
type Fact struct {
	// Class distinguishes filesystems from paging space (swap).
	Class string `json:"class" yaml:"class"`

	// Source is the backing device or remote spec. Null when the entry
	// definitively has none (pseudo filesystems, `-`, `none`).
	Source *string `json:"source" yaml:"source"`

	// Mount is the mount point path.
	Mount string `json:"mount,omitempty" yaml:"mount,omitempty"`

	// Type is the canonical filesystem type.
	Type string `json:"type" yaml:"type"`

	// Types carries the full fallback list when the input declared a
	// comma-separated type (fstab allows `ext4,ext3`). Type holds the
	// member the entry was classified by.
	Types []string `json:"types,omitempty" yaml:"types,omitempty"`

	// Category is the classification category.
	Category driver.Category `json:"category" yaml:"category"`

	// Options is either a merged map (mount-style input) or an ordered
	// OptionList (fstab-style input).
	Options any `json:"options" yaml:"options"`

	// FUSE carries userspace driver detail for FUSE-backed entries.
	FUSE *driver.FUSEDriver `json:"fuse,omitempty" yaml:"fuse,omitempty"`

	// Dump and Fsck are structured fstab dump/pass fields.
	Dump *DumpFact `json:"dump,omitempty" yaml:"dump,omitempty"`
	Fsck *FsckFact `json:"fsck,omitempty" yaml:"fsck,omitempty"`

	// Capacity is present for df-style input.
	Capacity *CapacityFact `json:"capacity,omitempty" yaml:"capacity,omitempty"`
}

// Option is one ordered key/value pair. Bare flags carry Value true. It
// marshals as a single-entry mapping so rendered output reads naturally.
type Option struct {
	Name  string
	Value any
}

// MarshalJSON renders the option as {"name": value}.
func (o Option) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{o.Name: o.Value})
}

// MarshalYAML renders the option as a single-entry mapping.
func (o Option) MarshalYAML() (any, error) {
	return map[string]any{o.Name: o.Value}, nil
}

// OptionList is the order-preserving options shape used for fstab input.
// Duplicate keys are allowed; order is the tie-break signal.
type OptionList []Option

// OptionMap is the merged options shape used for mount input. Duplicate
// keys resolve last-occurrence-wins.
type OptionMap map[string]any

// OptionsString renders the fact's options back into the comma-separated
// raw form. Map-style options are emitted in sorted key order so the
// output is deterministic.
func (f Fact) OptionsString() string {
	switch opts := f.Options.(type) {
	case OptionList:
		tokens := make([]string, 0, len(opts))
		for _, o := range opts {
			tokens = append(tokens, optionToken(o.Name, o.Value))
		}
		return strings.Join(tokens, ",")
	case OptionMap:
		keys := make([]string, 0, len(opts))
		for k := range opts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		tokens := make([]string, 0, len(keys))
		for _, k := range keys {
			tokens = append(tokens, optionToken(k, opts[k]))
		}
		return strings.Join(tokens, ",")
	default:
		return ""
	}
}

func optionToken(name string, value any) string {
	if s, ok := value.(string); ok {
		return name + "=" + s
	}
	return name
}

// DumpFact is the structured form of the fstab dump field.
type DumpFact struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Days    int    `json:"days,omitempty" yaml:"days,omitempty"`
	Invalid string `json:"invalid,omitempty" yaml:"invalid,omitempty"`
}

// FsckFact is the structured form of the fstab pass field.
type FsckFact struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Pass    int    `json:"pass,omitempty" yaml:"pass,omitempty"`
	Invalid string `json:"invalid,omitempty" yaml:"invalid,omitempty"`
}

// Amount is a capacity figure with a pretty-printed rendering.
type Amount struct {
	Bytes   uint64  `json:"bytes" yaml:"bytes"`
	Pretty  string  `json:"pretty" yaml:"pretty"`
	Percent float64 `json:"percent,omitempty" yaml:"percent,omitempty"`
}

// CapacityFact carries df capacity data.
type CapacityFact struct {
	Total *Amount `json:"total,omitempty" yaml:"total,omitempty"`
	Used  *Amount `json:"used,omitempty" yaml:"used,omitempty"`
}
