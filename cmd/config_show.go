package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/PolarWolf314/enigma/internal/ui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current preferences",
	Long: `Displays the current enigma preferences. Keys missing from config.toml
are shown with their defaults.

Examples:
  enigma config show
  enigma config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")
		ConfigLogger.Debugf("Loading user config from %s", configs.UserConfigPath())

		userConfig, err := configs.LoadUserConfig()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to load user config: %w", err)
		}

		if configShowJSON {
			ConfigLogger.Debugf("Outputting user config as JSON")
			output, err := json.MarshalIndent(userConfig, "", "  ")
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("Failed to marshal config to JSON: %w", err)
			}
			fmt.Println(string(output))
			return nil
		}

		outputUserConfigText(userConfig)
		return nil
	},
}

// outputUserConfigText outputs user config in human-readable format.
func outputUserConfigText(config *configs.UserConfig) {
	fmt.Println(color.CyanString("User Configuration") + " (" + ui.Path.Sprint(configs.UserConfigPath()) + "):")
	fmt.Println()
	fmt.Printf("  %-12s %s\n", "Machine:", valueOrUnset(config.Defaults.Machine))
	fmt.Printf("  %-12s %s\n", "Group size:", color.GreenString("%d", config.Defaults.GroupSize))
	fmt.Printf("  %-12s %s\n", "Journal:", valueOrUnset(config.Defaults.Journal))
}

func valueOrUnset(v string) string {
	if v == "" {
		return ui.Muted.Sprint("not set")
	}
	return color.GreenString("%s", v)
}
