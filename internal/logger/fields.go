package logger

import "log/slog"

// Standard field keys for structured logging. Use these consistently so
// log lines stay queryable.
const (
	// Pipeline identification
	KeySyntax = "syntax" // input line syntax: mount, fstab, df
	KeyInput  = "input"  // input source: file path or "-" for stdin

	// Mount entry fields
	KeySource   = "source"   // source device or remote spec
	KeyMount    = "mount"    // mount point path
	KeyFSType   = "fstype"   // raw filesystem type
	KeyCategory = "category" // assigned classification category

	// Parse reporting
	KeyLine    = "line"    // 1-based line number in the raw input
	KeyReason  = "reason"  // why a line was skipped
	KeySkipped = "skipped" // count of skipped lines
	KeyParsed  = "parsed"  // count of parsed records
)

// Source returns a slog.Attr for a source device.
func Source(s string) slog.Attr {
	return slog.String(KeySource, s)
}

// Mount returns a slog.Attr for a mount point.
func Mount(s string) slog.Attr {
	return slog.String(KeyMount, s)
}

// FSType returns a slog.Attr for a filesystem type.
func FSType(s string) slog.Attr {
	return slog.String(KeyFSType, s)
}
