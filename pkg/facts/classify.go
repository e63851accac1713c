// Package facts classifies mount records and normalizes them into the
// structured fact shape consumed by callers.
//
// The pipeline is pure and stateless: Engine holds only a reference to the
// read-only driver registry, so one Engine may be shared across goroutines.
package facts

import (
	"strings"

	"github.com/o0-o/mountfacts/pkg/driver"
	"github.com/o0-o/mountfacts/pkg/mount"
)

// Classified is a mount record annotated with its driver descriptor.
type Classified struct {
	Record     mount.Record
	Descriptor driver.Descriptor
}

// Category returns the assigned classification category.
func (c Classified) Category() driver.Category {
	return c.Descriptor.Category
}

// Engine runs classification and normalization against one registry.
type Engine struct {
	reg *driver.Registry
}

// NewEngine builds an Engine. A nil registry selects the canonical default.
func NewEngine(reg *driver.Registry) *Engine {
	if reg == nil {
		reg = driver.Default()
	}
	return &Engine{reg: reg}
}

// Classify assigns a driver descriptor to a record.
//
// Classification is a deterministic function of the record's filesystem
// type: the same type always resolves to the same category. Unknown types
// degrade to CategoryUnknown, never an error. The only other record field
// consulted is the source, and only when the input format carried no type
// at all (df output): a source naming a known pseudo driver is promoted to
// the type, and `shm` is treated as its tmpfs mount.
//
// fstab permits a comma-separated fallback list (`ext4,ext3`); the entry
// is classified by its first registered member, and the full list is
// surfaced on the fact.
func (e *Engine) Classify(rec mount.Record) Classified {
	fsType := rec.FSType
	if cands := typeCandidates(fsType); len(cands) > 1 {
		fsType = cands[0]
		for _, c := range cands {
			if e.reg.Contains(c) {
				fsType = c
				break
			}
		}
	}
	if fsType == "" {
		switch src := strings.ToLower(strings.TrimSpace(rec.Source)); {
		case src == "shm":
			fsType = "tmpfs"
		case src != "" && src != "-" && src != "none" && e.reg.Contains(src):
			if d := e.reg.Lookup(src); d.Pseudo {
				fsType = src
			}
		}
	}

	desc := e.reg.Lookup(fsType)

	// The options representation is chosen by input context: fstab option
	// order is semantically meaningful and must be preserved.
	if rec.Syntax == mount.SyntaxFstab {
		desc.OptionStyle = driver.StyleList
	}

	return Classified{Record: rec, Descriptor: desc}
}

// typeCandidates splits a possibly comma-separated type field into its
// trimmed, lowercased members. A plain type yields a single-element slice.
func typeCandidates(fsType string) []string {
	if !strings.Contains(fsType, ",") {
		return []string{strings.ToLower(strings.TrimSpace(fsType))}
	}
	parts := strings.Split(fsType, ",")
	cands := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			cands = append(cands, p)
		}
	}
	return cands
}
