package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/PolarWolf314/enigma/internal/ui"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner on stderr with the given message.
// Returns the spinner and a function that should be deferred to clean up.
//
// The spinner only runs when enabled is true; callers disable it when stderr
// is not a terminal or carries verbose, debug or trace output.
func startSpinner(message string, enabled bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if enabled {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if enabled {
			s.Stop()
		}

		// Final message goes to stdout for tests to capture.
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// resolveMachinePath returns the machine description named on the command
// line, falling back to the user's default.
func resolveMachinePath(args []string, user *configs.UserConfig) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if user.Defaults.Machine != "" {
		Logger.Debugf("Using default machine description %s", user.Defaults.Machine)
		return user.Defaults.Machine, nil
	}
	return "", fmt.Errorf("no machine description given: pass CONFIG or run %s",
		ui.Code.Sprint("enigma config set machine PATH"))
}

// loadMachine loads the machine description for a command.
func loadMachine(args []string, user *configs.UserConfig) (*configs.MachineConfig, string, error) {
	path, err := resolveMachinePath(args, user)
	if err != nil {
		return nil, "", err
	}

	Logger.Infof("Loading machine description from %s", path)
	cfg, err := configs.LoadMachineConfig(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load %s: %w", path, err)
	}
	Logger.Debugf("Machine has %d slots, %d pawls and %d catalog rotors", cfg.NumRotors, cfg.NumPawls, cfg.Catalog.Len())
	return cfg, path, nil
}
