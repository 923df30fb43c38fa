package cmd

import (
	logger "github.com/PolarWolf314/enigma/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configVerbose bool
	configDebug   bool
	ConfigLogger  logger.Logger

	// ConfigCmd is the top-level config command.
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage enigma preferences",
		Long: `Provides commands for viewing and changing the user preferences stored in
config.toml under the user configuration directory.

Keys:
  machine      default machine description for 'enigma machine' commands
  group_size   output group size for 'enigma machine convert', 0 for none
  journal      session journal path, empty to disable

Examples:
  # Show the current preferences
  enigma config show

  # Use a machine description by default
  enigma config set machine ~/machines/naval.conf`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ConfigLogger = logger.Logger{
				Verbose: configVerbose,
				Debug:   configDebug,
			}
			ConfigLogger.Debugf("Initializing config command with verbose=%t, debug=%t", configVerbose, configDebug)
		},
	}
)

func init() {
	ConfigCmd.PersistentFlags().BoolVarP(&configVerbose, "verbose", "v", false, "enable verbose output")
	ConfigCmd.PersistentFlags().BoolVarP(&configDebug, "debug", "d", false, "enable debug output")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configSetCmd)
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// ResetConfigState resets all config command global variables to their default values for testing.
func ResetConfigState() {
	configVerbose = false
	configDebug = false
	ConfigLogger = logger.Logger{}
	resetConfigShowState()
	resetCobraFlagState(ConfigCmd)
}
