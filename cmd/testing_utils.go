// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments,
// capturing output, and running the CLI.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/spf13/cobra"
)

// setupTestEnvironment points user preferences at a temporary directory and
// resets command state. It returns the preferences directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	tempUserDir := t.TempDir()
	originalUserSettings := configs.UserEnigmaSettings

	configs.UserEnigmaSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempUserDir, "config"),
	}
	ResetGlobalState()
	ResetConfigState()

	t.Cleanup(func() {
		configs.UserEnigmaSettings = originalUserSettings
		ResetGlobalState()
		ResetConfigState()
	})
	return configs.UserEnigmaSettings.UserConfigsPath
}

// captureOutput captures stdout and stderr separately during function execution.
func captureOutput(fn func() error) (string, string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stdoutChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		stderrChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan, <-stderrChan, err
}

// createTestCLI creates a complete CLI instance for testing with the given arguments.
func createTestCLI(args ...string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "enigma",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.AddCommand(MachineCmd)
	rootCmd.AddCommand(ConfigCmd)
	rootCmd.SetArgs(args)
	return rootCmd
}

// runCLI executes the CLI with args and returns its stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return captureOutput(func() error {
		return createTestCLI(args...).Execute()
	})
}

// readTestFile reads a file created by a command under test.
func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
