package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/PolarWolf314/enigma/cmd"
	"github.com/PolarWolf314/enigma/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "Enigma - A CLI for simulating rotor cipher machines.",
	Long: `Enigma simulates rotor cipher machines described by plain text or YAML
files: a reflector, fixed and moving rotors, pawls, and a plugboard.

Usage:
  enigma <command> [flags]

Available Commands:
  machine    Convert messages and inspect machine descriptions
  config     Manage preferences

Run 'enigma help <command>' for more details on a specific command.
`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(c *cobra.Command, args []string) {
		figure.NewColorFigure("Enigma", "alligator2", "green", true).Print()
		fmt.Println()
		fmt.Println("Run 'enigma --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.MachineCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" "+err.Error())
		stop()
		os.Exit(1)
	}
}
