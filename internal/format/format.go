// Package format renders tabular command output as terminal or Markdown
// tables.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Box-drawn terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ColumnConfig controls per-column formatting.
type ColumnConfig struct {
	Number   int  // 1-based column index
	Center   bool // center the column instead of the default alignment
	MaxWidth int  // wrap content beyond this width (0 = unlimited)
}

// Table is built once and rendered in the Mode chosen at creation.
type Table struct {
	writer table.Writer
	mode   Mode
}

// NewTable returns an empty table rendered in mode m.
func NewTable(m Mode) *Table {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &Table{writer: w, mode: m}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.writer.AppendHeader(row)
}

// Row appends a data row.
func (t *Table) Row(vals ...any) {
	t.writer.AppendRow(table.Row(vals))
}

// Footer appends a footer row.
func (t *Table) Footer(vals ...any) {
	t.writer.AppendFooter(table.Row(vals))
}

// Columns applies per-column configuration.
func (t *Table) Columns(cfgs ...ColumnConfig) {
	out := make([]table.ColumnConfig, len(cfgs))
	for i, c := range cfgs {
		align := text.AlignDefault
		if c.Center {
			align = text.AlignCenter
		}
		out[i] = table.ColumnConfig{Number: c.Number, Align: align, WidthMax: c.MaxWidth}
	}
	t.writer.SetColumnConfigs(out)
}

// String renders the table.
func (t *Table) String() string {
	if t.mode == Markdown {
		return t.writer.RenderMarkdown()
	}
	return t.writer.Render()
}

// Mark returns "✓" for true and "✗" for false.
func Mark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}
