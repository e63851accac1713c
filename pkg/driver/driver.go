// Package driver defines the classification vocabulary for storage mounts
// and the registry that maps filesystem-type identifiers to driver
// descriptors.
//
// The registry is read-only after construction and safe for concurrent
// lookups without synchronization. Callers normally use Default(), but a
// custom registry can be built with New for alternate tables.
package driver

import "strings"

// Category is the classification assigned to a mount entry.
//
// This is the stable public vocabulary callers may filter on.
type Category string

const (
	// CategoryRegular marks filesystems typically backed by block devices
	// (ext4, xfs, apfs, ...).
	CategoryRegular Category = "regular"

	// CategoryVirtual marks kernel-, memory-, or hypervisor-backed pseudo
	// filesystems (proc, sysfs, tmpfs, vboxsf, ...).
	CategoryVirtual Category = "virtual"

	// CategoryNetwork marks remote filesystems (nfs, cifs, sshfs, ...).
	CategoryNetwork Category = "network"

	// CategoryOverlay marks unions, views, and transforms of other
	// filesystems (overlay, aufs, bindfs, ...).
	CategoryOverlay Category = "overlay"

	// CategoryFUSE marks generic userspace filesystem drivers whose
	// concrete type could not be resolved further.
	CategoryFUSE Category = "fuse"

	// CategoryUnknown is the graceful fallback for unregistered or
	// ambiguous types (zfs and btrfs double as volume managers).
	CategoryUnknown Category = "unknown"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryRegular,
		CategoryVirtual,
		CategoryNetwork,
		CategoryOverlay,
		CategoryFUSE,
		CategoryUnknown,
	}
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryRegular, CategoryVirtual, CategoryNetwork,
		CategoryOverlay, CategoryFUSE, CategoryUnknown:
		return c, true
	}
	return "", false
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// OptionStyle selects how mount options are normalized.
type OptionStyle string

const (
	// StyleList preserves option order and duplicate keys. Used for
	// fstab-style input where order is semantically meaningful.
	StyleList OptionStyle = "list"

	// StyleMap merges options into a single mapping with
	// last-occurrence-wins for duplicate keys. Used for mount-style input.
	StyleMap OptionStyle = "map"
)

// Backing describes what a virtual filesystem is backed by.
type Backing string

const (
	BackingKernel     Backing = "kernel"
	BackingMemory     Backing = "memory"
	BackingHypervisor Backing = "hypervisor"
)

// FUSEDriver identifies the userspace driver implementing a FUSE-backed
// filesystem.
type FUSEDriver struct {
	// Name is the sub-driver name (sshfs, bindfs, ...). Empty when only
	// the generic FUSE layer is known.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Block is true for fuseblk, the block-device-backed FUSE variant.
	Block bool `json:"block,omitempty" yaml:"block,omitempty"`
}

// Descriptor is a registry entry describing one filesystem type.
//
// Descriptors are plain values; Lookup returns copies, so callers may
// adjust fields (such as OptionStyle) without affecting the registry.
type Descriptor struct {
	// Type is the canonical filesystem-type string that matched.
	Type string `json:"type" yaml:"type"`

	// Category is the classification for this type.
	Category Category `json:"category" yaml:"category"`

	// OptionStyle is the default normalization style for mount options.
	OptionStyle OptionStyle `json:"option_style" yaml:"option_style"`

	// Pseudo is true for virtual, non-block-backed filesystems.
	Pseudo bool `json:"pseudo,omitempty" yaml:"pseudo,omitempty"`

	// Backing is set for virtual filesystems with a known backing.
	Backing Backing `json:"backing,omitempty" yaml:"backing,omitempty"`

	// FUSE is non-nil when the filesystem is implemented in userspace
	// through FUSE.
	FUSE *FUSEDriver `json:"fuse,omitempty" yaml:"fuse,omitempty"`
}
