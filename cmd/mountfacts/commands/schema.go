package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/o0-o/mountfacts/pkg/config"
	"github.com/o0-o/mountfacts/pkg/facts"
)

var schemaFile string

var schemaCmd = &cobra.Command{
	Use:   "schema [fact|config]",
	Short: "Generate JSON schema for facts or configuration",
	Long: `Generate a JSON schema for the emitted facts or the configuration file.

The schema can be used for:
  - Validating mountfacts output in downstream tooling
  - IDE autocompletion for the configuration file

Examples:
  # Schema of the fact documents (default)
  mountfacts schema

  # Schema of the configuration file
  mountfacts schema config

  # Save to a file
  mountfacts schema fact --file fact.schema.json`,
	ValidArgs: []string{"fact", "config"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE:      runSchema,
}

func init() {
	schemaCmd.Flags().StringVar(&schemaFile, "file", "", "Output file (default: stdout)")
}

func runSchema(cmd *cobra.Command, args []string) error {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	target := "fact"
	if len(args) > 0 {
		target = args[0]
	}

	var schema *jsonschema.Schema
	switch target {
	case "config":
		schema = reflector.Reflect(&config.Config{})
		schema.Title = "mountfacts Configuration"
		schema.Description = "Configuration schema for the mountfacts CLI"
	default:
		schema = reflector.Reflect(&facts.Fact{})
		schema.Title = "Storage Fact"
		schema.Description = "Normalized storage entry emitted by mountfacts"
	}
	schema.Version = "https://json-schema.org/draft/2020-12/schema"

	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	if schemaFile != "" {
		if err := os.WriteFile(schemaFile, schemaJSON, 0644); err != nil {
			return fmt.Errorf("failed to write schema file: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "JSON schema written to %s\n", schemaFile)
		return nil
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(schemaJSON))
	return nil
}
