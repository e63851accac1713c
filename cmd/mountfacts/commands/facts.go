package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/o0-o/mountfacts/cmd/mountfacts/cmdutil"
	"github.com/o0-o/mountfacts/internal/logger"
	"github.com/o0-o/mountfacts/pkg/driver"
	"github.com/o0-o/mountfacts/pkg/facts"
	"github.com/o0-o/mountfacts/pkg/mount"
)

var (
	factsInput    string
	factsSyntax   string
	factsBase64   bool
	factsCategory string
)

var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "Parse mount data into normalized storage facts",
	Long: `Parse raw mount, fstab, or df output into normalized storage facts.

Input is read from a file or from stdin. Malformed lines are skipped with
a warning; they never abort the run.

Examples:
  # Classify the current mount table
  mount | mountfacts facts

  # Classify an fstab file
  mountfacts facts --syntax fstab --input /etc/fstab

  # Capacity facts from df, as JSON
  df -k | mountfacts facts --syntax df -o json

  # Base64-wrapped command output
  mountfacts facts --base64 --input captured.b64

  # Only network filesystems
  mount | mountfacts facts --category network`,
	RunE: runFacts,
}

// FactList is a list of facts for table rendering.
type FactList []facts.Fact

// Headers implements TableRenderer.
func (fl FactList) Headers() []string {
	return []string{"SOURCE", "MOUNT", "TYPE", "CATEGORY", "OPTIONS"}
}

// Rows implements TableRenderer.
func (fl FactList) Rows() [][]string {
	rows := make([][]string, 0, len(fl))
	for _, f := range fl {
		source := "-"
		if f.Source != nil {
			source = *f.Source
		}
		mountPoint := cmdutil.EmptyOr(f.Mount, "-")
		opts := cmdutil.EmptyOr(f.OptionsString(), "-")
		rows = append(rows, []string{source, mountPoint, f.Type, string(f.Category), opts})
	}
	return rows
}

func init() {
	factsCmd.Flags().StringVarP(&factsInput, "input", "i", "-", "Input file ('-' reads stdin)")
	factsCmd.Flags().StringVarP(&factsSyntax, "syntax", "s", "mount", "Input syntax (mount|fstab|df)")
	factsCmd.Flags().BoolVar(&factsBase64, "base64", false, "Decode base64-wrapped input before parsing")
	factsCmd.Flags().StringVar(&factsCategory, "category", "", "Only emit facts of this category")
}

func runFacts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	syntax, err := mount.ParseSyntax(factsSyntax)
	if err != nil {
		return err
	}

	var filter driver.Category
	if factsCategory != "" {
		c, ok := driver.ParseCategory(factsCategory)
		if !ok {
			return fmt.Errorf("invalid category: %q", factsCategory)
		}
		filter = c
	}

	in, err := readInput()
	if err != nil {
		return err
	}

	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	result, report, err := facts.Gather(in, syntax, reg)
	if err != nil {
		return err
	}

	logger.Debug("facts gathered",
		logger.KeyInput, factsInput,
		logger.KeySyntax, string(syntax),
		logger.KeyParsed, report.Parsed,
		logger.KeySkipped, report.Skipped)
	for _, w := range report.Warnings {
		cmdutil.PrintWarning(w)
	}

	if filter != "" {
		filtered := result[:0]
		for _, f := range result {
			if f.Category == filter {
				filtered = append(filtered, f)
			}
		}
		result = filtered
	}

	return cmdutil.PrintOutput(os.Stdout, result, len(result) == 0, "No entries found.", FactList(result))
}

// readInput resolves the --input flag into parser input.
func readInput() (mount.Input, error) {
	var (
		raw []byte
		err error
	)
	if factsInput == "-" {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return mount.Input{}, fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		raw, err = os.ReadFile(factsInput)
		if err != nil {
			return mount.Input{}, fmt.Errorf("failed to read input file: %w", err)
		}
	}

	if factsBase64 {
		return mount.Base64(string(raw))
	}
	return mount.Text(string(raw)), nil
}
