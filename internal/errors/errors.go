package errors

import "errors"

// Symbol errors indicate problems with an alphabet or with a symbol lookup.
var (
	// ErrDuplicateSymbol indicates an alphabet was built with a repeated symbol.
	ErrDuplicateSymbol = errors.New("duplicate symbol in alphabet")

	// ErrUnknownSymbol indicates a symbol or index outside the alphabet.
	ErrUnknownSymbol = errors.New("symbol not in alphabet")

	// ErrEmptyAlphabet indicates an alphabet was built with no symbols.
	ErrEmptyAlphabet = errors.New("alphabet has no symbols")
)

// Cycle errors indicate cycle notation that cannot be turned into a permutation.
var (
	// ErrMalformedCycle indicates unbalanced brackets or a repeated symbol.
	ErrMalformedCycle = errors.New("malformed cycle notation")
)

// Assembly errors indicate a machine that cannot be put together as requested.
var (
	// ErrConfigurationMismatch indicates a rotor, pawl, slot or setting invariant was violated.
	ErrConfigurationMismatch = errors.New("machine configuration mismatch")
)

// Configuration errors indicate a machine description or setting line that cannot be read.
var (
	// ErrConfigTruncated indicates the machine description ended early.
	ErrConfigTruncated = errors.New("machine description truncated")

	// ErrInvalidMachineConfig indicates a malformed machine description.
	ErrInvalidMachineConfig = errors.New("invalid machine description")

	// ErrInvalidSettingLine indicates a malformed message setting line.
	ErrInvalidSettingLine = errors.New("invalid setting line")

	// ErrUnsupportedRingSetting indicates a setting line carried ring offsets.
	ErrUnsupportedRingSetting = errors.New("ring settings are not supported")

	// ErrInvalidUserSetting indicates an unknown key or bad value in the user configuration.
	ErrInvalidUserSetting = errors.New("invalid user setting")
)

// File errors indicate issues with file discovery or access.
var (
	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")
)
