package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders one kind of CLI text. With color disabled the text is
// wrapped in prefix and suffix instead.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func plain(attrs ...color.Attribute) Formatter {
	return Formatter{color: color.New(attrs...)}
}

func wrapped(prefix, suffix string, attrs ...color.Attribute) Formatter {
	return Formatter{color: color.New(attrs...), prefix: prefix, suffix: suffix}
}

// Sprint renders the operands as fmt.Sprint does.
func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf renders a format string as fmt.Sprintf does.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline appends a newline to s unless it already ends with one.
func EnsureNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s
	}
	return s + "\n"
}

// noColor reports whether NO_COLOR is set (https://no-color.org/) or
// fatih/color has turned colors off for this terminal.
func noColor() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return true
	}
	return color.NoColor
}

// Command and file references.
var (
	// Code is a command the user can run: yellow, or `backticks`.
	Code = wrapped("`", "`", color.FgYellow)

	// Path is a machine description, message or config file: yellow.
	Path = plain(color.FgYellow)

	// Flag is a command-line flag such as --group: yellow.
	Flag = plain(color.FgYellow)
)

// Outcome markers.
var (
	// Success marks a converted file or a valid description: green.
	Success = plain(color.FgGreen)

	// Error marks a failed command or an invalid description: red.
	Error = plain(color.FgRed)

	// Warning marks a description that loads but cannot fill every slot: yellow.
	Warning = plain(color.FgYellow)

	// Info marks hints that follow an error: cyan.
	Info = plain(color.FgCyan)
)

// Machine and preference values.
var (
	// Highlight is a preference key or value: cyan, or 'single quotes'.
	Highlight = wrapped("'", "'", color.FgCyan)

	// Rotor is a rotor name from a catalog: bold magenta.
	Rotor = plain(color.FgMagenta, color.Bold)

	// Setting is a set of rotor positions: bold white, or [brackets].
	Setting = wrapped("[", "]", color.FgHiWhite, color.Bold)

	// Muted is secondary text such as an unset preference: gray, or (parentheses).
	Muted = wrapped("(", ")", color.FgHiBlack)
)
