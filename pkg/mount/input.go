// Package mount parses raw mount, fstab, and df output into canonical
// mount records.
//
// The package operates on already-collected text only: it performs no
// host-side execution and no I/O. Callers hand it raw text, pre-split
// lines, a command-result shape, or base64-encoded file content through
// the Input adapter, and receive records plus a per-line warning report.
package mount

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Input is the resolved form of the raw material handed to Parse. All
// accepted shapes (raw text, pre-split lines, command results, base64
// content) collapse to a line sequence at construction, so the parsers
// never inspect input shapes themselves.
type Input struct {
	lines []string
}

// Text builds an Input from raw multi-line text.
func Text(s string) Input {
	if strings.TrimSpace(s) == "" {
		return Input{}
	}
	return Input{lines: splitLines(s)}
}

// Lines builds an Input from pre-split lines.
func Lines(lines []string) Input {
	return Input{lines: lines}
}

// CommandResult builds an Input from a command-result shape, preferring
// stdoutLines when present and falling back to stdout.
func CommandResult(stdout string, stdoutLines []string) Input {
	if len(stdoutLines) > 0 {
		return Lines(stdoutLines)
	}
	return Text(stdout)
}

// Base64 decodes base64-encoded file content and builds an Input from the
// decoded text. Standard and raw (unpadded) encodings are accepted.
func Base64(encoded string) (Input, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return Input{}, nil
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(encoded)
	}
	if err != nil {
		return Input{}, fmt.Errorf("decode base64 content: %w", err)
	}
	return Text(string(data)), nil
}

// FromAny adapts a dynamically-typed value into an Input. Accepted shapes:
//
//   - string: raw multi-line text
//   - []string: pre-split lines
//   - map with "stdout" and/or "stdout_lines" keys: command result
//   - Input: passed through
//
// Any other shape is caller misuse and yields *UnsupportedInputError.
func FromAny(v any) (Input, error) {
	switch in := v.(type) {
	case nil:
		return Input{}, nil
	case Input:
		return in, nil
	case string:
		return Text(in), nil
	case []string:
		return Lines(in), nil
	case []any:
		lines := make([]string, 0, len(in))
		for _, e := range in {
			s, ok := e.(string)
			if !ok {
				return Input{}, &UnsupportedInputError{Value: v}
			}
			lines = append(lines, s)
		}
		return Lines(lines), nil
	case map[string]any:
		if raw, ok := in["stdout_lines"]; ok {
			return FromAny(raw)
		}
		if raw, ok := in["stdout"]; ok {
			if s, ok := raw.(string); ok {
				return Text(s), nil
			}
		}
		return Input{}, &UnsupportedInputError{Value: v}
	default:
		return Input{}, &UnsupportedInputError{Value: v}
	}
}

// Empty reports whether the input holds no lines at all.
func (in Input) Empty() bool {
	return len(in.lines) == 0
}

// Lines returns the line sequence backing the input.
func (in Input) Lines() []string {
	return in.lines
}

// UnsupportedInputError reports an input value whose shape the parser does
// not accept. It indicates caller misuse, not data noise, and is therefore
// fatal for the whole call.
type UnsupportedInputError struct {
	Value any
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("unsupported input shape %T: expected string, []string, or a command result with stdout", e.Value)
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(strings.Trim(s, "\n"), "\n")
}
