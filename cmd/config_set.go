package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/PolarWolf314/enigma/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	configSetCmd.Flags().SetInterspersed(false)
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a preference",
	Long: `Stores VALUE under KEY in config.toml. Valid keys are ` + strings.Join(configs.SettingKeys, ", ") + `.
An empty VALUE clears machine or journal.

Examples:
  enigma config set machine ~/machines/naval.conf
  enigma config set group_size 4
  enigma config set journal ""

Flags must come before KEY, so a VALUE starting with '-' is read as a value.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: configs.SettingKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		ConfigLogger.Infof("Setting %s to %q", key, value)

		userConfig, err := configs.LoadUserConfig()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to load user config: %w", err)
		}
		if err := userConfig.Set(key, value); err != nil {
			return ConfigLogger.ErrorfAndReturn("%w", err)
		}
		if err := configs.SaveUserConfig(userConfig); err != nil {
			return ConfigLogger.ErrorfAndReturn("%w", err)
		}

		stored, _ := userConfig.Get(key)
		fmt.Printf("%s %s set to %s\n", ui.Success.Sprint("✓"), ui.Highlight.Sprint(key), ui.Highlight.Sprint(stored))
		return nil
	},
}
