package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Operation names recorded in the journal.
const (
	OpSetting = "setting"
	OpConvert = "convert"
)

// Entry represents a single journal entry.
type Entry struct {
	Timestamp string `json:"ts"`      // RFC3339 with microseconds.
	Session   string `json:"session"` // UUID shared by every entry of one setting.
	Operation string `json:"op"`      // Operation name.

	// Optional fields depending on operation.
	Config    string   `json:"config,omitempty"`    // Machine description path.
	Rotors    []string `json:"rotors,omitempty"`    // For setting.
	Positions string   `json:"positions,omitempty"` // Starting positions, for setting.
	Plugboard string   `json:"plugboard,omitempty"` // Plugboard cycles, for setting.
	Messages  int      `json:"messages,omitempty"`  // Lines converted, for convert.
	Symbols   int      `json:"symbols,omitempty"`   // Symbols converted, for convert.
	Final     string   `json:"final,omitempty"`     // Positions after the last symbol, for convert.
}

// Log appends an entry to the journal at path. An empty path disables
// journalling. Failures are swallowed: a conversion never fails because
// its journal could not be written.
func Log(path string, entry Entry) {
	if path == "" {
		return
	}

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}

	// #nosec G306 -- the journal holds settings, never message text.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the journal at path.
// Returns an empty slice if the journal doesn't exist.
func ReadEntries(path string) ([]Entry, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into journal entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip partial writes.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
