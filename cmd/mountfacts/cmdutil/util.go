// Package cmdutil provides shared helpers for mountfacts commands.
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/o0-o/mountfacts/internal/cli/output"
)

// GlobalFlags holds the values of the persistent CLI flags.
type GlobalFlags struct {
	Config  string
	Output  string
	NoColor bool
	Verbose bool
}

// Flags is the shared flag state populated by the root command.
var Flags GlobalFlags

// GetOutputFormatParsed returns the parsed output format.
func GetOutputFormatParsed() (output.Format, error) {
	return output.ParseFormat(Flags.Output)
}

// IsColorDisabled returns whether color output is disabled.
func IsColorDisabled() bool {
	return Flags.NoColor
}

// PrintOutput prints data in the specified format (JSON, YAML, or table).
// For table format, it displays emptyMsg if data is empty, otherwise uses
// the tableRenderer.
func PrintOutput(w io.Writer, data any, isEmpty bool, emptyMsg string, tableRenderer output.TableRenderer) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	printer := output.NewPrinter(w, format, !IsColorDisabled())
	if format == output.FormatTable {
		if isEmpty {
			_, _ = fmt.Fprintln(w, emptyMsg)
			return nil
		}
		return printer.Print(tableRenderer)
	}
	return printer.Print(data)
}

// PrintWarning prints a warning message to stderr, honoring --no-color.
func PrintWarning(msg string) {
	output.NewPrinter(os.Stderr, output.FormatTable, !IsColorDisabled()).Warning(msg)
}

// EmptyOr returns fallback when s is empty, otherwise s.
func EmptyOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// BoolToYesNo converts a boolean to "yes" or "no".
func BoolToYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
