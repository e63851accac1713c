package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/o0-o/mountfacts/cmd/mountfacts/cmdutil"
	"github.com/o0-o/mountfacts/pkg/driver"
)

var driversCategory string

var driversCmd = &cobra.Command{
	Use:   "drivers [type...]",
	Short: "List or look up driver registry entries",
	Long: `List the driver registry, or resolve specific filesystem types.

Without arguments, every registered type is listed. With arguments, each
type is resolved through the full lookup chain, so FUSE naming patterns
like fuse.sshfs match too.

Examples:
  # Full registry
  mountfacts drivers

  # Only network drivers
  mountfacts drivers --category network

  # Resolve specific types
  mountfacts drivers ext4 fuse.sshfs wekafs`,
	RunE: runDrivers,
}

// DescriptorList is a list of descriptors for table rendering.
type DescriptorList []driver.Descriptor

// Headers implements TableRenderer.
func (dl DescriptorList) Headers() []string {
	return []string{"TYPE", "CATEGORY", "PSEUDO", "FUSE"}
}

// Rows implements TableRenderer.
func (dl DescriptorList) Rows() [][]string {
	rows := make([][]string, 0, len(dl))
	for _, d := range dl {
		fuse := "-"
		if d.FUSE != nil {
			fuse = cmdutil.EmptyOr(d.FUSE.Name, "generic")
			if d.FUSE.Block {
				fuse += " (block)"
			}
		}
		rows = append(rows, []string{d.Type, string(d.Category), cmdutil.BoolToYesNo(d.Pseudo), fuse})
	}
	return rows
}

func init() {
	driversCmd.Flags().StringVar(&driversCategory, "category", "", "Only list drivers of this category")
}

func runDrivers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	var filter driver.Category
	if driversCategory != "" {
		c, ok := driver.ParseCategory(driversCategory)
		if !ok {
			return fmt.Errorf("invalid category: %q", driversCategory)
		}
		filter = c
	}

	var list DescriptorList
	if len(args) > 0 {
		for _, t := range args {
			list = append(list, reg.Lookup(t))
		}
	} else {
		for _, t := range reg.Types() {
			list = append(list, reg.Lookup(t))
		}
	}

	if filter != "" {
		filtered := list[:0]
		for _, d := range list {
			if d.Category == filter {
				filtered = append(filtered, d)
			}
		}
		list = filtered
	}

	return cmdutil.PrintOutput(os.Stdout, list, len(list) == 0, "No drivers found.", list)
}
