package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plantview/plantview-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage plantview configuration",
	Long: fmt.Sprintf(`Read and write plantview settings.

Keys: %s

Settings are stored in %s unless --config is given.
PLANTVIEW_* environment variables override the file.`, strings.Join(config.Keys(), ", "), config.DefaultConfigFile()),
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a configuration value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := cfg.Set(key, value); err != nil {
			return err
		}
		if err := config.Save(cfg, cfgFile); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		stored, _ := cfg.Get(key)
		fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", key, stored)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get [key]",
	Short:     "Get configuration values",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			value, err := cfg.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, value)
			return nil
		}

		for _, key := range config.Keys() {
			value, _ := cfg.Get(key)
			fmt.Fprintf(out, "%s: %s\n", key, value)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
}
