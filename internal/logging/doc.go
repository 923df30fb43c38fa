// Package logger provides leveled logging for enigma CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with coloured prefixes and always written to
// stderr, because stdout carries converted messages and must stay clean
// enough to pipe into another machine.
//
// # Verbosity Levels
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Warnings and errors are always shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Always shown
//	Logger.WarnfAlways()     // Always shown, even when Quiet is set
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Shown with --debug, returns the error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded %d rotors", n)
//
// Commands create a logger in their PersistentPreRun and pass it to
// internal functions.
package logger
