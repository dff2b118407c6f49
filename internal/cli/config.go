package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sasswave-labs/sasswave-create/internal/branding"
	"github.com/sasswave-labs/sasswave-create/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd, configGetCmd, configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write ` + branding.DisplayName() + ` settings stored in ~/` + branding.HomeDir() + `/config.yaml.

Keys: ` + strings.Join(config.Keys(), ", ") + `
Any key can be overridden for one run with ` + branding.EnvVar("<KEY>") + `.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", key, value, config.FilePath())
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Print the effective value of a key",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(config.Keys(), args[0]) {
			return fmt.Errorf("unknown config key %q (known: %s)", args[0], strings.Join(config.Keys(), ", "))
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every key with its effective value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range config.Keys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
		}
		return nil
	},
}
