// Package audit keeps a journal of conversion sessions.
//
// Every setting line applied by the convert workflow starts a session with
// its own UUID. The session's setting and a summary of what was converted
// are appended to the journal. Message text is never recorded.
//
// # Log Format
//
// The journal is stored as JSON Lines (one JSON object per line) at the
// path configured by the user, typically:
//
//	~/.local/share/enigma/journal.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Session UUID
//   - Operation name (setting or convert)
//   - Operation-specific details (rotors, positions, symbol counts)
//
// # Failure Handling
//
// Journalling is best-effort. If writing fails (permissions, disk full,
// etc.), the conversion continues without error.
//
// # Reading Logs
//
// Use ReadEntries to parse the journal. Malformed lines are skipped.
package audit
