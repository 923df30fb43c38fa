package cmd

import (
	logger "github.com/PolarWolf314/enigma/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// MachineCmd is the top-level machine command.
	MachineCmd = &cobra.Command{
		Use:   "machine",
		Short: "Run and inspect rotor machines",
		Long: `Provides conversion of messages through a rotor machine, listing of the
rotors a machine description offers, and validation of machine descriptions.

Examples:
  # Convert a message file with the default machine
  enigma machine convert < message.in

  # Convert with an explicit machine description, input and output
  enigma machine convert naval.conf message.in message.out

  # List the rotors of a machine description as Markdown
  enigma machine rotors naval.yaml --markdown

  # Validate every description under machines/
  enigma machine check 'machines/**/*.conf'`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing machine command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	MachineCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	MachineCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	MachineCmd.AddCommand(convertCmd)
	MachineCmd.AddCommand(rotorsCmd)
	MachineCmd.AddCommand(checkCmd)
}

// GetMachineCmd returns the MachineCmd for testing.
func GetMachineCmd() *cobra.Command {
	return MachineCmd
}

// ResetGlobalState resets all machine command global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetConvertState()
	resetRotorsState()
	resetCobraFlagState(MachineCmd)
}

// resetCobraFlagState restores every flag of cmd and its subcommands to its default.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}
