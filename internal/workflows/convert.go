package workflows

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/PolarWolf314/enigma/internal/audit"
	"github.com/PolarWolf314/enigma/internal/configs"
	"github.com/PolarWolf314/enigma/internal/enigma"
	errs "github.com/PolarWolf314/enigma/internal/errors"
	"github.com/PolarWolf314/enigma/internal/utils"
)

const maxLineLength = 1 << 20

// ConvertOptions configures the convert workflow.
type ConvertOptions struct {
	// Config describes the machine. Required.
	Config *configs.MachineConfig

	// ConfigPath is recorded in the journal. It is not read.
	ConfigPath string

	// Input holds setting lines and message lines.
	Input io.Reader

	// Output receives the converted lines.
	Output io.Writer

	// GroupSize splits converted lines into groups of this many symbols.
	// Zero or less writes each line as one run.
	GroupSize int

	// Tracer, when non-nil, sees every converted symbol.
	Tracer enigma.Tracer

	// JournalPath is the journal file. Empty disables journalling.
	JournalPath string
}

// Session summarizes the messages converted under one setting line.
type Session struct {
	// ID is the session UUID written to the journal.
	ID string

	// Setting is the setting line that started the session.
	Setting *configs.MessageSetting

	// Messages is the number of non-blank lines converted.
	Messages int

	// Symbols is the number of symbols converted.
	Symbols int

	// Final is the rotor positions after the last symbol.
	Final string
}

// ConvertResult contains the outcome of a convert operation.
type ConvertResult struct {
	// Sessions lists every setting line applied, in input order.
	Sessions []Session
}

// Symbols returns the number of symbols converted across all sessions.
func (r *ConvertResult) Symbols() int {
	n := 0
	for _, s := range r.Sessions {
		n += s.Symbols
	}
	return n
}

// Convert reads opts.Input line by line and writes the conversion of every
// message line to opts.Output.
//
// Setting lines reconfigure the machine and are not echoed. Blank lines are
// written as blank lines. Any other line has its whitespace removed and is
// converted as one message, continuing from the rotor positions left by the
// previous line. Lines already written stay written when a later line fails.
//
// Returns ErrInvalidSettingLine if a message line precedes the first
// setting line. Returns ErrUnknownSymbol if a message holds a symbol outside
// the machine's alphabet.
func Convert(ctx context.Context, opts ConvertOptions) (*ConvertResult, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("%w: no machine description", errs.ErrInvalidMachineConfig)
	}

	m, err := opts.Config.NewMachine()
	if err != nil {
		return nil, fmt.Errorf("building machine: %w", err)
	}

	scanner := bufio.NewScanner(opts.Input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	w := bufio.NewWriter(opts.Output)
	defer w.Flush()

	result := &ConvertResult{}
	var current *Session
	endSession := func() {
		if current == nil {
			return
		}
		current.Final = m.Settings()
		audit.Log(opts.JournalPath, audit.Entry{
			Session:   current.ID,
			Operation: audit.OpConvert,
			Config:    opts.ConfigPath,
			Messages:  current.Messages,
			Symbols:   current.Symbols,
			Final:     current.Final,
		})
		result.Sessions = append(result.Sessions, *current)
		current = nil
	}

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo++
		line := scanner.Text()

		if configs.IsSettingLine(line) {
			endSession()
			setting, err := configs.ParseSettingLine(line, m.NumRotors())
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if err := setting.Apply(m); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			current = &Session{ID: uuid.NewString(), Setting: setting}
			audit.Log(opts.JournalPath, audit.Entry{
				Session:   current.ID,
				Operation: audit.OpSetting,
				Config:    opts.ConfigPath,
				Rotors:    setting.Rotors,
				Positions: setting.Positions,
				Plugboard: setting.PlugboardCycles(),
			})
			continue
		}

		msg := utils.StripWhitespace(line)
		if msg == "" {
			if _, err := w.WriteString("\n"); err != nil {
				return nil, err
			}
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("%w: line %d: message before the first setting line", errs.ErrInvalidSettingLine, lineNo)
		}

		out, err := m.ConvertMessage(msg, opts.Tracer)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		current.Messages++
		current.Symbols += len([]rune(msg))

		if _, err := w.WriteString(utils.GroupSymbols(out, opts.GroupSize) + "\n"); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	endSession()
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return result, nil
}

// FormatStep renders a traced step with the machine's symbols as
//
//	[AXLE] F -> F -> H -> Q
//
// where the bracketed positions are those in effect for the conversion.
func FormatStep(alpha *enigma.Alphabet, s enigma.Step) string {
	var b strings.Builder
	b.WriteByte('[')
	for _, p := range s.After {
		b.WriteRune(alpha.ToSymbol(p))
	}
	b.WriteString("] ")
	fmt.Fprintf(&b, "%c -> %c -> %c -> %c",
		alpha.ToSymbol(s.Input), alpha.ToSymbol(s.Plugged),
		alpha.ToSymbol(s.Rotated), alpha.ToSymbol(s.Output))
	return b.String()
}
