package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLog_CreatesFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "journal.jsonl")

	Log(logPath, Entry{
		Session:   "session-1",
		Operation: OpSetting,
		Rotors:    []string{"B", "Beta", "III", "IV", "I"},
		Positions: "AXLE",
	})

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatalf("Journal file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "journal.jsonl")

	Log(logPath, Entry{Session: "s1", Operation: OpSetting})
	Log(logPath, Entry{Session: "s1", Operation: OpConvert, Symbols: 23})
	Log(logPath, Entry{Session: "s2", Operation: OpSetting})

	entries, err := ReadEntries(logPath)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[1].Operation != OpConvert || entries[1].Symbols != 23 {
		t.Errorf("Expected convert entry with 23 symbols, got %+v", entries[1])
	}
	if entries[2].Session != "s2" {
		t.Errorf("Expected third session s2, got %s", entries[2].Session)
	}
}

func TestLog_TimestampFormat(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "journal.jsonl")

	Log(logPath, Entry{Operation: OpSetting})

	entries, err := ReadEntries(logPath)
	if err != nil || len(entries) != 1 {
		t.Fatalf("Expected one entry, got %d (err %v)", len(entries), err)
	}

	ts := entries[0].Timestamp
	if !strings.HasSuffix(ts, "Z") {
		t.Errorf("Expected UTC timestamp, got %s", ts)
	}
	if _, err := time.Parse("2006-01-02T15:04:05.000000Z", ts); err != nil {
		t.Errorf("Timestamp %s does not parse: %v", ts, err)
	}
}

func TestLog_KeepsExplicitTimestamp(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "journal.jsonl")

	Log(logPath, Entry{Timestamp: "2024-01-15T10:30:00.123456Z", Operation: OpSetting})

	entries, _ := ReadEntries(logPath)
	if len(entries) != 1 || entries[0].Timestamp != "2024-01-15T10:30:00.123456Z" {
		t.Errorf("Expected explicit timestamp to be kept, got %+v", entries)
	}
}

func TestLog_OmitsEmptyFields(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "journal.jsonl")

	Log(logPath, Entry{Session: "s1", Operation: OpSetting, Positions: "AXLE"})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read journal: %v", err)
	}

	line := string(data)
	for _, field := range []string{"rotors", "plugboard", "messages", "symbols", "final"} {
		if strings.Contains(line, `"`+field+`"`) {
			t.Errorf("Expected empty field %q to be omitted, got %s", field, line)
		}
	}
	if !strings.Contains(line, `"positions":"AXLE"`) {
		t.Errorf("Expected positions in entry, got %s", line)
	}
}

func TestLog_EmptyPathDisablesJournal(t *testing.T) {
	Log("", Entry{Operation: OpSetting})

	entries, err := ReadEntries("")
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected no entries for a disabled journal, got %v", entries)
	}
}

func TestLog_UnwritablePathIsIgnored(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	// The parent of the journal is a regular file, so every write fails.
	Log(filepath.Join(blocker, "journal.jsonl"), Entry{Operation: OpSetting})
}

func TestReadEntries_MissingFile(t *testing.T) {
	entries, err := ReadEntries(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries for missing journal, got %v", entries)
	}
}

func TestParseEntries_ValidData(t *testing.T) {
	data := []byte(`{"ts":"2024-01-15T10:30:00.123456Z","session":"a","op":"setting","positions":"AXLE"}
{"ts":"2024-01-15T10:35:00.456789Z","session":"a","op":"convert","symbols":23,"final":"AXMB"}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Positions != "AXLE" {
		t.Errorf("Expected first positions AXLE, got %s", entries[0].Positions)
	}
	if entries[1].Final != "AXMB" {
		t.Errorf("Expected final positions AXMB, got %s", entries[1].Final)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"ts":"2024-01-15T10:30:00.123456Z","session":"a","op":"setting"}
this is not valid json
{"ts":"2024-01-15T10:35:00.456789Z","session":"a","op":"convert"}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}

	if len(entries) != 2 {
		t.Errorf("Expected 2 valid entries (malformed should be skipped), got %d", len(entries))
	}
}

func TestParseEntries_EmptyData(t *testing.T) {
	entries, err := ParseEntries([]byte{})
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}

	if entries != nil {
		t.Errorf("Expected nil entries for empty data, got %v", entries)
	}
}
