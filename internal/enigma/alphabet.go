package enigma

import (
	"fmt"

	errs "github.com/PolarWolf314/enigma/internal/errors"
)

// Uppercase is the default alphabet of the historical machines.
const Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet is an ordered set of unique symbols. The K-th symbol has index K.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet returns an alphabet containing the runes of symbols in order.
func NewAlphabet(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return nil, errs.ErrEmptyAlphabet
	}

	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, seen := index[r]; seen {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateSymbol, r)
		}
		index[r] = i
	}

	return &Alphabet{symbols: runes, index: index}, nil
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Contains reports whether r is one of the alphabet's symbols.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// ToIndex returns the index of r.
func (a *Alphabet) ToIndex(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownSymbol, r)
	}
	return i, nil
}

// ToSymbol returns the symbol at index i reduced modulo Size.
func (a *Alphabet) ToSymbol(i int) rune {
	return a.symbols[a.Wrap(i)]
}

// Wrap reduces i into [0, Size), wrapping negative values forward.
func (a *Alphabet) Wrap(i int) int {
	r := i % len(a.symbols)
	if r < 0 {
		r += len(a.symbols)
	}
	return r
}

// Equal reports whether both alphabets hold the same symbols in the same order.
func (a *Alphabet) Equal(other *Alphabet) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil || len(a.symbols) != len(other.symbols) {
		return false
	}
	for i, r := range a.symbols {
		if other.symbols[i] != r {
			return false
		}
	}
	return true
}

func (a *Alphabet) String() string {
	return string(a.symbols)
}
