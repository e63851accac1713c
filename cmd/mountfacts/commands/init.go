package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/o0-o/mountfacts/pkg/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a sample configuration file",
	Long: `Initialize a sample mountfacts configuration file.

By default, the configuration file is created at $XDG_CONFIG_HOME/mountfacts/config.yaml.
Use --config to specify a custom path.

Examples:
  # Initialize with default location
  mountfacts init

  # Initialize with custom path
  mountfacts init --config /etc/mountfacts/config.yaml

  # Force overwrite existing config
  mountfacts init --force`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	var configPath string
	var err error

	if cfgFile != "" {
		err = config.InitConfigToPath(cfgFile, initForce)
		configPath = cfgFile
	} else {
		configPath, err = config.InitConfig(initForce)
	}

	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	fmt.Printf("Configuration file created at: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit the configuration file to add driver overrides or change defaults")
	fmt.Println("  2. Pipe mount output through the parser: mount | mountfacts facts")
	return nil
}
