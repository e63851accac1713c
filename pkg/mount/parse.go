package mount

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/o0-o/mountfacts/internal/logger"
)

// Parse converts one raw input batch into mount records using the given
// line syntax.
//
// Malformed lines are skipped and reported through the Result, never
// failing the batch. Empty or whitespace-only input yields an empty
// Result and no error. An unrecognized syntax is caller misuse and is
// returned as an error.
func Parse(in Input, syntax Syntax) (*Result, error) {
	switch syntax {
	case SyntaxMount, "":
		return parseLines(in, parseMountLine)
	case SyntaxFstab:
		return parseLines(in, parseFstabLine)
	case SyntaxDF:
		return parseDF(in)
	default:
		return nil, fmt.Errorf("unknown syntax: %q", syntax)
	}
}

// parseLines runs a per-line parser over the input, skipping blank lines
// and comments silently and counting malformed lines.
func parseLines(in Input, parseLine func(string) (Record, error)) (*Result, error) {
	res := &Result{}

	for i, raw := range in.Lines() {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec, err := parseLine(line)
		if err != nil {
			res.skip(i+1, line, err.Error())
			logger.Debug("skipping malformed line",
				logger.KeyLine, i+1, logger.KeyReason, err.Error())
			continue
		}
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

// parseMountLine decomposes one `mount` output line.
//
// Only the leading device and the trailing parenthesized clause are
// unambiguous anchors; the mount point between them may contain spaces.
// The line is therefore taken apart from the right (options clause, then
// the ` type ` marker) before the remainder is split on the first ` on `.
func parseMountLine(line string) (Record, error) {
	if !strings.HasSuffix(line, ")") {
		return Record{}, fmt.Errorf("missing options clause")
	}

	open := strings.LastIndex(line, " (")
	if open < 0 {
		return Record{}, fmt.Errorf("missing options clause")
	}
	paren := line[open+2 : len(line)-1]
	head := line[:open]

	var fsType string
	var opts []string
	if j := strings.LastIndex(head, " type "); j >= 0 {
		// Linux form: `SRC on MP type TYPE (opt1,opt2=val)`
		fsType = strings.TrimSpace(head[j+len(" type "):])
		head = head[:j]
		opts = splitOptions(paren)
	} else {
		// BSD/macOS form: `SRC on MP (type, opt1, opt2)`
		parts := splitOptions(paren)
		if len(parts) == 0 {
			return Record{}, fmt.Errorf("empty options clause")
		}
		fsType = parts[0]
		opts = parts[1:]
	}

	sep := strings.Index(head, " on ")
	if sep < 0 {
		return Record{}, fmt.Errorf("missing ' on ' separator")
	}
	source := head[:sep]
	mountPoint := head[sep+len(" on "):]

	if source == "" || mountPoint == "" || fsType == "" {
		return Record{}, fmt.Errorf("incomplete mount entry")
	}

	return Record{
		Source:     source,
		MountPoint: mountPoint,
		FSType:     fsType,
		Options:    opts,
		Syntax:     SyntaxMount,
	}, nil
}

// parseFstabLine decomposes one fstab-style line (also /proc/mounts and
// /etc/mtab). Embedded spaces in the device and mount point arrive as
// octal escapes, so whitespace splitting is safe here.
func parseFstabLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 || len(fields) > 6 {
		return Record{}, fmt.Errorf("expected 4-6 fields, got %d", len(fields))
	}

	rec := Record{
		Source:     unescapeFstab(fields[0]),
		MountPoint: unescapeFstab(fields[1]),
		FSType:     fields[2],
		Options:    splitOptions(fields[3]),
		Syntax:     SyntaxFstab,
	}
	if len(fields) >= 5 {
		rec.Dump = fields[4]
	}
	if len(fields) == 6 {
		rec.Pass = fields[5]
	}
	return rec, nil
}

// parseDF decomposes `df` output. The header line selects the block size;
// the mount point is everything after the capacity columns, so embedded
// spaces survive.
func parseDF(in Input) (*Result, error) {
	res := &Result{}
	blockSize := uint64(1024)

	for i, raw := range in.Lines() {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "Filesystem") {
			blockSize = dfHeaderBlockSize(line, blockSize)
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 6 {
			res.skip(i+1, line, "expected at least 6 fields")
			continue
		}

		total, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			res.skip(i+1, line, fmt.Sprintf("invalid total blocks %q", fields[1]))
			continue
		}
		used, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			res.skip(i+1, line, fmt.Sprintf("invalid used blocks %q", fields[2]))
			continue
		}

		res.Records = append(res.Records, Record{
			Source:     fields[0],
			MountPoint: strings.Join(fields[5:], " "),
			Syntax:     SyntaxDF,
			BlockSize:  blockSize,
			Total:      &total,
			Used:       &used,
		})
	}

	return res, nil
}

// dfHeaderBlockSize extracts the block size from a df header line, such as
// `Filesystem 1K-blocks Used Available Use% Mounted on`. df block units
// are binary (1K = 1024).
func dfHeaderBlockSize(header string, current uint64) uint64 {
	fields := strings.Fields(header)
	if len(fields) < 2 || !strings.HasSuffix(fields[1], "-blocks") {
		return current
	}

	spec := strings.TrimSuffix(fields[1], "-blocks")
	mult := uint64(1)
	switch {
	case strings.HasSuffix(spec, "K"):
		spec, mult = strings.TrimSuffix(spec, "K"), 1024
	case strings.HasSuffix(spec, "M"):
		spec, mult = strings.TrimSuffix(spec, "M"), 1024*1024
	case strings.HasSuffix(spec, "G"):
		spec, mult = strings.TrimSuffix(spec, "G"), 1024*1024*1024
	}

	n, err := strconv.ParseUint(spec, 10, 64)
	if err != nil || n == 0 {
		return current
	}
	return n * mult
}

// splitOptions splits a raw option clause on commas, trimming whitespace
// and dropping empty tokens. Tokens keep their key=value shape.
func splitOptions(clause string) []string {
	parts := strings.Split(clause, ",")
	opts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			opts = append(opts, p)
		}
	}
	return opts
}

// unescapeFstab decodes the octal escapes fstab uses for whitespace and
// backslashes in device and mount point fields (`\040` for space, `\011`
// for tab, `\012` for newline, `\134` for backslash).
func unescapeFstab(field string) string {
	if !strings.Contains(field, `\`) {
		return field
	}

	var out strings.Builder
	out.Grow(len(field))
	for i := 0; i < len(field); i++ {
		if field[i] == '\\' && i+3 < len(field) && isOctal(field[i+1]) && isOctal(field[i+2]) && isOctal(field[i+3]) {
			n := (field[i+1]-'0')*64 + (field[i+2]-'0')*8 + (field[i+3] - '0')
			out.WriteByte(n)
			i += 3
			continue
		}
		out.WriteByte(field[i])
	}
	return out.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
