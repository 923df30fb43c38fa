package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/PolarWolf314/enigma/internal/enigma"
	errs "github.com/PolarWolf314/enigma/internal/errors"
	"github.com/PolarWolf314/enigma/internal/ui"
	"github.com/PolarWolf314/enigma/internal/utils"
	"github.com/PolarWolf314/enigma/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	convertTrace   bool
	convertGroup   int
	convertJournal string
)

func init() {
	convertCmd.Flags().BoolVarP(&convertTrace, "trace", "t", false, "print every converted symbol to stderr")
	convertCmd.Flags().IntVarP(&convertGroup, "group", "g", configs.DefaultGroupSize, "output group size, 0 for no grouping")
	convertCmd.Flags().StringVar(&convertJournal, "journal", "", "append session records to this journal file")
}

// resetConvertState resets the convert command's global state for testing.
func resetConvertState() {
	convertTrace = false
	convertGroup = configs.DefaultGroupSize
	convertJournal = ""
}

var convertCmd = &cobra.Command{
	Use:   "convert [CONFIG [INPUT [OUTPUT]]]",
	Short: "Convert messages through a rotor machine",
	Long: `Reads setting lines and message lines from INPUT and writes the converted
messages to OUTPUT. INPUT and OUTPUT default to stdin and stdout; "-" selects
them explicitly. CONFIG defaults to the machine set with 'enigma config set machine'.

A setting line names the rotor for each slot, their starting positions and
the plugboard pairs:

  * B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)

Every other line is stripped of whitespace, converted, and written in groups
of five symbols. Converting the output with the same setting line restores
the message.

Examples:
  # Convert a file with an explicit machine description
  enigma machine convert naval.conf message.in message.out

  # Show each symbol's path through the machine
  enigma machine convert naval.conf message.in --trace`,
	Args: cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting convert command")
		if convertTrace {
			Logger.Quiet = true
		}

		userConfig, err := configs.LoadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load user config: %w", err)
		}

		cfg, configPath, err := loadMachine(args, userConfig)
		if err != nil {
			return Logger.ErrorfAndReturn("%w", err)
		}

		groupSize := userConfig.Defaults.GroupSize
		if cmd.Flags().Changed("group") {
			if convertGroup < 0 {
				return Logger.ErrorfAndReturn("%w: %s must be 0 or more, got %d",
					errs.ErrInvalidUserSetting, ui.Flag.Sprint("--group"), convertGroup)
			}
			groupSize = convertGroup
		}
		journal := userConfig.Defaults.Journal
		if cmd.Flags().Changed("journal") {
			journal = convertJournal
		}
		Logger.Debugf("Group size %d, journal %q", groupSize, journal)

		inputName, outputName := argAt(args, 1), argAt(args, 2)
		in, err := utils.OpenInput(inputName)
		if err != nil {
			return Logger.ErrorfAndReturn("%w", err)
		}
		defer in.Close()

		out, err := utils.OpenOutput(outputName)
		if err != nil {
			return Logger.ErrorfAndReturn("%w", err)
		}
		defer out.Close()

		var tracer enigma.Tracer
		if convertTrace {
			tracer = enigma.TracerFunc(func(s enigma.Step) {
				fmt.Fprintln(os.Stderr, traceLine(cfg.Alphabet, s))
			})
		}

		toFile := outputName != "" && outputName != "-"
		useSpinner := toFile && utils.IsTerminal(os.Stderr) && !verbose && !debug && !convertTrace
		spinner, cleanup := startSpinner("Converting messages...", useSpinner)
		defer cleanup()

		result, err := workflows.Convert(cmd.Context(), workflows.ConvertOptions{
			Config:      cfg,
			ConfigPath:  configPath,
			Input:       in,
			Output:      out,
			GroupSize:   groupSize,
			Tracer:      tracer,
			JournalPath: journal,
		})
		if err != nil {
			if toFile {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " Conversion stopped"
			}
			return Logger.ErrorfAndReturn("%w", err)
		}
		if err := out.Close(); err != nil {
			return Logger.ErrorfAndReturn("Failed to write %s: %w", outputName, err)
		}

		Logger.Infof("Converted %d symbols in %d sessions", result.Symbols(), len(result.Sessions))
		if toFile {
			spinner.FinalMSG = fmt.Sprintf("%s Converted %d symbols to %s",
				ui.Success.Sprint("✓"), result.Symbols(), ui.Path.Sprint(outputName))
		}
		return nil
	},
}

// traceLine highlights the rotor positions of a formatted step.
func traceLine(alpha *enigma.Alphabet, s enigma.Step) string {
	line := workflows.FormatStep(alpha, s)
	positions, rest, _ := strings.Cut(line, " ")
	return ui.Setting.Sprint(strings.Trim(positions, "[]")) + " " + rest
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
