package facts

import (
	"math"
	"strconv"
	"strings"

	"github.com/o0-o/mountfacts/internal/bytesize"
	"github.com/o0-o/mountfacts/pkg/driver"
	"github.com/o0-o/mountfacts/pkg/mount"
)

const (
	// ClassFilesystem marks mounted filesystems.
	ClassFilesystem = "filesystem"

	// ClassPaging marks swap entries, which have no mount point.
	ClassPaging = "paging"
)

// Normalize renders a classified record into its final fact shape.
//
// Records sharing a mount point are never merged here: each physical mount
// event stays a separate fact in input order, leaving any
// most-specific-mount-wins resolution to the caller.
func (e *Engine) Normalize(c Classified) Fact {
	rec := c.Record
	desc := c.Descriptor

	fact := Fact{
		Type:     desc.Type,
		Category: desc.Category,
	}
	if cands := typeCandidates(rec.FSType); len(cands) > 1 {
		fact.Types = cands
	}

	if strings.EqualFold(rec.FSType, "swap") {
		// Swap is paging space, not a filesystem: no mount point.
		fact.Class = ClassPaging
	} else {
		fact.Class = ClassFilesystem
		fact.Mount = rec.MountPoint
	}

	if desc.FUSE != nil {
		fuse := *desc.FUSE
		fact.FUSE = &fuse
	}

	fact.Options = buildOptions(rec.Options, desc.OptionStyle, fact.FUSE)
	fact.Source = normalizeSource(rec, desc)

	if rec.Dump != "" {
		fact.Dump = dumpFact(rec.Dump)
	}
	if rec.Pass != "" {
		fact.Fsck = fsckFact(rec.Pass)
	}
	if rec.Total != nil || rec.Used != nil {
		fact.Capacity = capacityFact(rec)
	}

	return fact
}

// buildOptions turns raw option tokens into the normalized shape.
//
// List style preserves input order and duplicate keys. Map style merges
// tokens with last-occurrence-wins for duplicates. Bare flags map to true
// in both styles. A `subtype=` token on a FUSE entry names the sub-driver
// and is consumed rather than emitted as an option.
func buildOptions(tokens []string, style driver.OptionStyle, fuse *driver.FUSEDriver) any {
	if style == driver.StyleList {
		list := make(OptionList, 0, len(tokens))
		for _, tok := range tokens {
			name, value := splitOption(tok)
			if consumeSubtype(fuse, name, value) {
				continue
			}
			list = append(list, Option{Name: name, Value: value})
		}
		return list
	}

	m := make(OptionMap, len(tokens))
	for _, tok := range tokens {
		name, value := splitOption(tok)
		if consumeSubtype(fuse, name, value) {
			continue
		}
		m[name] = value
	}
	return m
}

func splitOption(token string) (string, any) {
	name, value, found := strings.Cut(token, "=")
	if !found {
		return name, true
	}
	return name, value
}

func consumeSubtype(fuse *driver.FUSEDriver, name string, value any) bool {
	if fuse == nil || name != "subtype" {
		return false
	}
	if s, ok := value.(string); ok {
		fuse.Name = s
	}
	return true
}

// normalizeSource resolves the tri-state source: a concrete device string,
// or nil when the entry definitively has no backing device. Pseudo
// filesystems and the `-`/`none` placeholders count as definitively
// absent; a source merely repeating the filesystem type does too.
func normalizeSource(rec mount.Record, desc driver.Descriptor) *string {
	src := rec.Source
	switch {
	case src == "":
		return nil
	case strings.EqualFold(src, "-"), strings.EqualFold(src, "none"):
		return nil
	case desc.Pseudo:
		return nil
	case strings.EqualFold(src, desc.Type):
		return nil
	}
	return &src
}

// dumpFact interprets the raw fstab dump field. Non-numeric and negative
// values are flagged invalid rather than dropped.
func dumpFact(raw string) *DumpFact {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return &DumpFact{Invalid: raw}
	}
	d := &DumpFact{Enabled: v > 0}
	if v > 0 {
		d.Days = v
	}
	return d
}

// fsckFact interprets the raw fstab pass field.
func fsckFact(raw string) *FsckFact {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return &FsckFact{Invalid: raw}
	}
	f := &FsckFact{Enabled: v > 0}
	if v > 0 {
		f.Pass = v
	}
	return f
}

// capacityFact converts df block counts into byte amounts with pretty
// renderings and a used percentage rounded to two decimals.
func capacityFact(rec mount.Record) *CapacityFact {
	blockSize := rec.BlockSize
	if blockSize == 0 {
		blockSize = 1
	}

	capacity := &CapacityFact{}
	if rec.Total != nil {
		bytes := *rec.Total * blockSize
		capacity.Total = &Amount{Bytes: bytes, Pretty: bytesize.ByteSize(bytes).String()}
	}
	if rec.Used != nil {
		bytes := *rec.Used * blockSize
		capacity.Used = &Amount{Bytes: bytes, Pretty: bytesize.ByteSize(bytes).String()}
	}
	if capacity.Total != nil && capacity.Used != nil && capacity.Total.Bytes > 0 {
		pct := float64(capacity.Used.Bytes) / float64(capacity.Total.Bytes) * 100
		capacity.Used.Percent = math.Round(pct*100) / 100
	}
	return capacity
}
