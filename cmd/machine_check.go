package cmd

import (
	"errors"
	"fmt"

	errs "github.com/PolarWolf314/enigma/internal/errors"
	"github.com/PolarWolf314/enigma/internal/ui"
	"github.com/PolarWolf314/enigma/internal/utils"
	"github.com/PolarWolf314/enigma/internal/workflows"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check PATTERN...",
	Short: "Validate machine descriptions",
	Long: `Loads every machine description matching the given glob patterns and
reports which are invalid. Patterns support ** for recursive matching; quote
them so the shell does not expand them first.

Descriptions that load but cannot fill every slot of the machine (no
reflector, too few moving or fixed rotors) are reported with warnings.

Examples:
  enigma machine check naval.conf
  enigma machine check 'machines/**/*.{conf,yaml}'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting check command")
		Logger.Debugf("Patterns: %v", args)

		result, err := workflows.Check(cmd.Context(), args)
		if errors.Is(err, errs.ErrNoFilesFound) {
			fmt.Println(ui.Info.Sprint("→") + " Patterns searched:" + utils.FormatPaths(args))
			return Logger.ErrorfAndReturn("%w", err)
		}
		if err != nil {
			return Logger.ErrorfAndReturn("%w", err)
		}

		for _, f := range result.Files {
			if f.Err != nil {
				fmt.Printf("%s %s: %v\n", ui.Error.Sprint("✗"), ui.Path.Sprint(f.Path), f.Err)
				continue
			}
			fmt.Printf("%s %s\n", ui.Success.Sprint("✓"), ui.Path.Sprint(f.Path))
			for _, w := range f.Warnings {
				fmt.Printf("    %s %s\n", ui.Warning.Sprint("⚠"), w)
			}
		}

		warned := 0
		for _, f := range result.Files {
			if len(f.Warnings) > 0 {
				warned++
			}
		}
		if warned > 0 {
			Logger.Warnf("%d machine descriptions load but cannot fill every slot", warned)
		}

		if n := result.Invalid(); n > 0 {
			return Logger.ErrorfAndReturn("%d of %d machine descriptions are invalid", n, len(result.Files))
		}
		return nil
	},
}
