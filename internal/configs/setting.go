package configs

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PolarWolf314/enigma/internal/enigma"
	errs "github.com/PolarWolf314/enigma/internal/errors"
)

// SettingMarker starts every setting line.
const SettingMarker = "*"

// MessageSetting is a parsed setting line: the rotor for each slot, the
// starting positions and the plugboard pairs.
type MessageSetting struct {
	Rotors    []string
	Positions string
	Plugboard []string
}

// IsSettingLine reports whether line is a setting line rather than message
// text.
func IsSettingLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), SettingMarker)
}

// ParseSettingLine parses a line of the form
//
//	* <reflector> <rotor>... <positions> (<ab>)...
//
// naming exactly numRotors rotors.
func ParseSettingLine(line string, numRotors int) (*MessageSetting, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, SettingMarker) {
		return nil, fmt.Errorf("%w: %q does not start with %q", errs.ErrInvalidSettingLine, line, SettingMarker)
	}
	fields := strings.Fields(strings.TrimPrefix(trimmed, SettingMarker))
	if len(fields) < numRotors+1 {
		return nil, fmt.Errorf("%w: want %d rotor names and a position, got %d tokens",
			errs.ErrInvalidSettingLine, numRotors, len(fields))
	}

	s := &MessageSetting{
		Rotors:    fields[:numRotors:numRotors],
		Positions: fields[numRotors],
	}
	for _, name := range s.Rotors {
		if strings.ContainsAny(name, "()") {
			return nil, fmt.Errorf("%w: rotor name %q contains a parenthesis", errs.ErrInvalidSettingLine, name)
		}
	}
	if strings.ContainsAny(s.Positions, "()") {
		return nil, fmt.Errorf("%w: positions %q contain a parenthesis", errs.ErrInvalidSettingLine, s.Positions)
	}

	for _, tok := range fields[numRotors+1:] {
		if !strings.ContainsAny(tok, "()") {
			return nil, fmt.Errorf("%w: %q", errs.ErrUnsupportedRingSetting, tok)
		}
		pair := strings.TrimSuffix(strings.TrimPrefix(tok, "("), ")")
		if len(pair)+2 != len(tok) || utf8.RuneCountInString(pair) != 2 || strings.ContainsAny(pair, "()") {
			return nil, fmt.Errorf("%w: plugboard entry %q is not a pair", errs.ErrInvalidSettingLine, tok)
		}
		s.Plugboard = append(s.Plugboard, pair)
	}
	return s, nil
}

// PlugboardCycles returns the plugboard in cycle notation.
func (s *MessageSetting) PlugboardCycles() string {
	parts := make([]string, len(s.Plugboard))
	for i, pair := range s.Plugboard {
		parts[i] = "(" + pair + ")"
	}
	return strings.Join(parts, " ")
}

// Apply loads m with the setting. Positions and plugboard are checked
// before any rotor is inserted.
func (s *MessageSetting) Apply(m *enigma.Machine) error {
	plugboard, err := enigma.NewPermutation(s.PlugboardCycles(), m.Alphabet())
	if err != nil {
		return fmt.Errorf("plugboard: %w", err)
	}
	if n := utf8.RuneCountInString(s.Positions); n != m.NumRotors()-1 {
		return fmt.Errorf("%w: positions %q have %d symbols, want %d",
			errs.ErrConfigurationMismatch, s.Positions, n, m.NumRotors()-1)
	}
	for _, r := range s.Positions {
		if _, err := m.Alphabet().ToIndex(r); err != nil {
			return fmt.Errorf("positions %q: %w", s.Positions, err)
		}
	}

	if err := m.InsertRotors(s.Rotors); err != nil {
		return err
	}
	if err := m.SetRotors(s.Positions); err != nil {
		return err
	}
	return m.SetPlugboard(plugboard)
}

// String formats the setting as a setting line.
func (s *MessageSetting) String() string {
	parts := append([]string{SettingMarker}, s.Rotors...)
	parts = append(parts, s.Positions)
	if len(s.Plugboard) > 0 {
		parts = append(parts, s.PlugboardCycles())
	}
	return strings.Join(parts, " ")
}
