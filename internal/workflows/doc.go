// Package workflows provides high-level orchestration for enigma commands.
//
// Workflows coordinate the configs, enigma and audit packages to implement
// complete user-facing features. Each workflow handles a single command's
// business logic, independent of CLI concerns like flag parsing, spinners,
// and output formatting.
//
// # Available Workflows
//
//   - Convert: Runs a stream of setting and message lines through a machine
//   - Describe: Lists the rotors of a machine description
//   - Check: Loads machine descriptions matching glob patterns and reports problems
//
// # Error Handling
//
// Workflows return errors wrapping the sentinels in internal/errors, so the
// CLI layer can branch with errors.Is:
//
//	result, err := workflows.Check(ctx, patterns)
//	if errors.Is(err, errs.ErrNoFilesFound) {
//	    // Show a hint about the pattern syntax
//	}
//
// # Context Usage
//
// Convert and Check accept a context.Context as their first parameter and
// stop between lines or files once it is cancelled.
package workflows
