package utils

import (
	"strings"
	"unicode"

	"github.com/PolarWolf314/enigma/internal/ui"
)

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(path))
		b.WriteString("\n")
	}
	return b.String()
}

// GroupSymbols splits s into groups of size symbols separated by single
// spaces. The last group may be shorter. A size below 1 returns s unchanged.
func GroupSymbols(s string, size int) string {
	if size < 1 {
		return s
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(s)/size)
	for i, r := range runes {
		if i > 0 && i%size == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripWhitespace removes every whitespace rune from s.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
