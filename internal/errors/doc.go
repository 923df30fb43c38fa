// Package errors provides typed error values for the enigma application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. Every
// failure in the cipher core and the configuration loaders is reported
// through one of these values, usually wrapped with the offending symbol
// or token.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Symbol errors: alphabet construction and lookups (ErrDuplicateSymbol, ErrUnknownSymbol)
//   - Cycle errors: cycle notation that cannot be parsed (ErrMalformedCycle)
//   - Assembly errors: machine, catalog and slot invariants (ErrConfigurationMismatch)
//   - Configuration errors: machine description and setting lines (ErrConfigTruncated)
//   - File errors: File system issues (ErrNoFilesFound, ErrFileNotFound)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(setting) != m.numRotors-1 {
//	    return fmt.Errorf("%w: expected %d positions", errs.ErrConfigurationMismatch, m.numRotors-1)
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Convert(ctx, opts)
//	if errors.Is(err, errs.ErrUnknownSymbol) {
//	    // Show user-friendly message
//	}
//
// None of these conditions are transient; there is no retry policy.
package errors
