// Package utils provides shared utility functions for the enigma application.
//
// This package contains general-purpose helpers used across multiple packages.
// Functions are organized into logical groups:
//
// # String Utilities
//
// Functions for string manipulation and formatting:
//   - GroupSymbols: splits converted text into fixed-size groups
//   - StripWhitespace: removes all whitespace from a message line
//   - FormatPaths: formats file paths for human-readable output
//
// # I/O Utilities
//
// Functions for choosing message sources and sinks:
//   - OpenInput: opens a named file or standard input
//   - OpenOutput: creates a named file or wraps standard output
//
// # Terminal Utilities
//
// Functions for terminal detection:
//   - IsTerminal: checks if a file is attached to a terminal
package utils
