package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/duskmode/internal/infrastructure/config"
)

var schemaSettings bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema of config.toml, for editor completion and validation.
With --settings, print the schema of the stored settings documents instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		generate := config.GenerateSchema
		if schemaSettings {
			generate = config.GenerateSettingsSchema
		}
		data, err := generate()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaSettings, "settings", false, "print the settings document schema")
}
