package enigma

import (
	"fmt"
	"strings"
	"unicode"

	errs "github.com/PolarWolf314/enigma/internal/errors"
)

// Permutation is a bijection over the indices of an Alphabet, described in
// cycle notation. Symbols that appear in no cycle map to themselves.
type Permutation struct {
	alphabet *Alphabet
	forward  []int
	inverse  []int
	cycles   [][]int
}

// NewPermutation parses cycles, a string of the form "(cccc) (cc) ...",
// over alpha. Whitespace is ignored. A symbol may appear at most once in
// the whole notation.
func NewPermutation(cycles string, alpha *Alphabet) (*Permutation, error) {
	groups, err := parseCycles(cycles, alpha)
	if err != nil {
		return nil, err
	}

	p := Identity(alpha)
	for _, group := range groups {
		for k, from := range group {
			to := group[(k+1)%len(group)]
			p.forward[from] = to
			p.inverse[to] = from
		}
	}
	p.cycles = groups
	return p, nil
}

// Identity returns the permutation that maps every index of alpha to itself.
func Identity(alpha *Alphabet) *Permutation {
	n := alpha.Size()
	p := &Permutation{
		alphabet: alpha,
		forward:  make([]int, n),
		inverse:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.forward[i] = i
		p.inverse[i] = i
	}
	return p
}

func parseCycles(cycles string, alpha *Alphabet) ([][]int, error) {
	var (
		groups [][]int
		group  []int
		open   bool
	)
	used := make(map[int]bool)

	for _, r := range cycles {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '(':
			if open {
				return nil, fmt.Errorf("%w: nested '(' in %q", errs.ErrMalformedCycle, cycles)
			}
			open = true
			group = nil
		case r == ')':
			if !open {
				return nil, fmt.Errorf("%w: unmatched ')' in %q", errs.ErrMalformedCycle, cycles)
			}
			open = false
			if len(group) > 0 {
				groups = append(groups, group)
			}
		case !open:
			return nil, fmt.Errorf("%w: symbol %q outside a cycle", errs.ErrMalformedCycle, r)
		default:
			i, err := alpha.ToIndex(r)
			if err != nil {
				return nil, err
			}
			if used[i] {
				return nil, fmt.Errorf("%w: symbol %q repeated", errs.ErrMalformedCycle, r)
			}
			used[i] = true
			group = append(group, i)
		}
	}
	if open {
		return nil, fmt.Errorf("%w: unclosed '(' in %q", errs.ErrMalformedCycle, cycles)
	}
	return groups, nil
}

// Size returns the size of the alphabet, not the number of symbols covered
// by cycles.
func (p *Permutation) Size() int {
	return len(p.forward)
}

// Alphabet returns the alphabet the permutation was built over.
func (p *Permutation) Alphabet() *Alphabet {
	return p.alphabet
}

// Permute applies the permutation to i reduced modulo Size.
func (p *Permutation) Permute(i int) int {
	return p.forward[p.alphabet.Wrap(i)]
}

// Invert applies the inverse permutation to i reduced modulo Size.
func (p *Permutation) Invert(i int) int {
	return p.inverse[p.alphabet.Wrap(i)]
}

// PermuteSymbol applies the permutation to the index of r.
func (p *Permutation) PermuteSymbol(r rune) (rune, error) {
	i, err := p.alphabet.ToIndex(r)
	if err != nil {
		return 0, err
	}
	return p.alphabet.ToSymbol(p.Permute(i)), nil
}

// InvertSymbol applies the inverse permutation to the index of r.
func (p *Permutation) InvertSymbol(r rune) (rune, error) {
	i, err := p.alphabet.ToIndex(r)
	if err != nil {
		return 0, err
	}
	return p.alphabet.ToSymbol(p.Invert(i)), nil
}

// Derangement reports whether no index maps to itself.
func (p *Permutation) Derangement() bool {
	for i, to := range p.forward {
		if i == to {
			return false
		}
	}
	return true
}

// Cycles renders the groups the permutation was built from in canonical
// notation, one space between groups.
func (p *Permutation) Cycles() string {
	var b strings.Builder
	for k, group := range p.cycles {
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('(')
		for _, i := range group {
			b.WriteRune(p.alphabet.ToSymbol(i))
		}
		b.WriteByte(')')
	}
	return b.String()
}
