package mount

import (
	"fmt"
	"strings"
)

// Syntax identifies which line format a batch of raw input uses.
type Syntax string

const (
	// SyntaxMount is POSIX `mount` command output:
	// `SRC on MP type TYPE (opts)` on Linux, `SRC on MP (type, opts)` on
	// BSD and macOS.
	SyntaxMount Syntax = "mount"

	// SyntaxFstab is /etc/fstab and /proc/mounts style whitespace-delimited
	// lines with 4-6 fields.
	SyntaxFstab Syntax = "fstab"

	// SyntaxDF is `df`-style output with a header line and per-filesystem
	// capacity columns.
	SyntaxDF Syntax = "df"
)

// ParseSyntax parses a syntax name, case-insensitively.
func ParseSyntax(s string) (Syntax, error) {
	switch Syntax(strings.ToLower(strings.TrimSpace(s))) {
	case SyntaxMount, "":
		return SyntaxMount, nil
	case SyntaxFstab:
		return SyntaxFstab, nil
	case SyntaxDF:
		return SyntaxDF, nil
	default:
		return "", fmt.Errorf("invalid syntax: %q (valid: mount, fstab, df)", s)
	}
}

// Record is one canonical mount entry produced by the parser. It is
// immutable once built; classification and normalization never write back
// into it.
type Record struct {
	// Source is the raw source device or remote spec. May be "-" or
	// "none" for pseudo filesystems; interpretation happens downstream.
	Source string

	// MountPoint is the target path, with embedded spaces preserved and
	// fstab octal escapes decoded.
	MountPoint string

	// FSType is the raw filesystem type token. Empty when the input
	// format does not carry one (BSD df).
	FSType string

	// Options holds the raw option tokens in input order, with key=value
	// tokens kept intact.
	Options []string

	// Syntax records which input family produced this record.
	Syntax Syntax

	// Dump and Pass are the raw fifth and sixth fstab fields. Empty when
	// absent. Kept raw so invalid values survive to the facts layer.
	Dump string
	Pass string

	// BlockSize is the df block size in bytes (0 outside df input).
	BlockSize uint64

	// Total and Used are df capacity figures in blocks. Nil when the
	// input carried none.
	Total *uint64
	Used  *uint64
}

// Result is the outcome of parsing one raw input batch. Individual
// malformed lines are skipped and surfaced here rather than failing the
// whole parse.
type Result struct {
	// Records holds the successfully parsed entries in input order.
	Records []Record

	// Skipped counts lines that could not be decomposed into the
	// required fields.
	Skipped int

	// Warnings describes each skipped line.
	Warnings []string
}

func (r *Result) skip(lineNo int, line string, reason string) {
	r.Skipped++
	r.Warnings = append(r.Warnings,
		fmt.Sprintf("line %d: %s: %q", lineNo, reason, line))
}
