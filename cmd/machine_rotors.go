package cmd

import (
	"fmt"

	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/PolarWolf314/enigma/internal/format"
	"github.com/PolarWolf314/enigma/internal/ui"
	"github.com/PolarWolf314/enigma/internal/workflows"
	"github.com/spf13/cobra"
)

var rotorsMarkdown bool

func init() {
	rotorsCmd.Flags().BoolVar(&rotorsMarkdown, "markdown", false, "output a Markdown table")
}

// resetRotorsState resets the rotors command's global state for testing.
func resetRotorsState() {
	rotorsMarkdown = false
}

var rotorsCmd = &cobra.Command{
	Use:   "rotors [CONFIG]",
	Short: "List the rotors of a machine description",
	Long: `Lists every rotor a machine description offers with its kind, notches
and wiring in cycle notation.

Examples:
  # List the rotors of the default machine
  enigma machine rotors

  # Produce a Markdown table
  enigma machine rotors naval.yaml --markdown`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting rotors command")

		userConfig, err := configs.LoadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load user config: %w", err)
		}
		cfg, path, err := loadMachine(args, userConfig)
		if err != nil {
			return Logger.ErrorfAndReturn("%w", err)
		}

		mode := format.ASCII
		if rotorsMarkdown {
			mode = format.Markdown
		}

		infos := workflows.Describe(cfg)
		tb := format.NewTable(mode)
		tb.Header("Name", "Kind", "Notches", "Cycles")
		for _, info := range infos {
			name := info.Name
			if mode == format.ASCII {
				name = ui.Rotor.Sprint(info.Name)
			}
			tb.Row(name, info.Kind.String(), info.Notches, info.Cycles)
		}
		tb.Footer(fmt.Sprintf("%d rotors", len(infos)), "", "", "")
		if mode == format.ASCII {
			tb.Columns(format.ColumnConfig{Number: 3, Center: true}, format.ColumnConfig{Number: 4, MaxWidth: 48})
		}

		fmt.Printf("%s: %d slots, %d pawls, alphabet %s\n\n",
			ui.Path.Sprint(path), cfg.NumRotors, cfg.NumPawls, cfg.Alphabet)
		fmt.Println(tb.String())
		return nil
	},
}
