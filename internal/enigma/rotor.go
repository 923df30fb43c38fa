package enigma

import (
	"fmt"

	errs "github.com/PolarWolf314/enigma/internal/errors"
)

// Kind distinguishes the three rotor variants.
type Kind uint8

const (
	// KindReflector never rotates and only ever sits in slot 0.
	KindReflector Kind = iota + 1
	// KindFixed never rotates and sits in any slot but 0.
	KindFixed
	// KindMoving rotates, carries notches and sits in a pawl slot.
	KindMoving
)

func (k Kind) String() string {
	switch k {
	case KindReflector:
		return "reflector"
	case KindFixed:
		return "fixed"
	case KindMoving:
		return "moving"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Rotor is a named wheel implementing a Permutation at a rotational offset.
// Only moving rotors carry notches.
type Rotor struct {
	name    string
	kind    Kind
	perm    *Permutation
	notches []bool
	setting int
}

// NewReflector returns a reflector named name wired as perm.
func NewReflector(name string, perm *Permutation) (*Rotor, error) {
	return newRotor(name, KindReflector, perm)
}

// NewFixedRotor returns a non-rotating rotor named name wired as perm.
func NewFixedRotor(name string, perm *Permutation) (*Rotor, error) {
	return newRotor(name, KindFixed, perm)
}

// NewMovingRotor returns a rotating rotor named name wired as perm whose
// notches are at the symbols of notches. At least one notch is required.
func NewMovingRotor(name string, perm *Permutation, notches string) (*Rotor, error) {
	r, err := newRotor(name, KindMoving, perm)
	if err != nil {
		return nil, err
	}
	if notches == "" {
		return nil, fmt.Errorf("%w: moving rotor %q has no notches", errs.ErrConfigurationMismatch, name)
	}

	r.notches = make([]bool, perm.Size())
	for _, symbol := range notches {
		i, err := perm.Alphabet().ToIndex(symbol)
		if err != nil {
			return nil, fmt.Errorf("notch of rotor %q: %w", name, err)
		}
		r.notches[i] = true
	}
	return r, nil
}

func newRotor(name string, kind Kind, perm *Permutation) (*Rotor, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: rotor name is empty", errs.ErrConfigurationMismatch)
	}
	if perm == nil {
		return nil, fmt.Errorf("%w: rotor %q has no permutation", errs.ErrConfigurationMismatch, name)
	}
	return &Rotor{name: name, kind: kind, perm: perm}, nil
}

// Name returns the rotor's catalog name.
func (r *Rotor) Name() string { return r.name }

// Kind returns the rotor's variant.
func (r *Rotor) Kind() Kind { return r.kind }

// Permutation returns the rotor's wiring at setting 0.
func (r *Rotor) Permutation() *Permutation { return r.perm }

// Alphabet returns the alphabet of the rotor's wiring.
func (r *Rotor) Alphabet() *Alphabet { return r.perm.Alphabet() }

// Size returns the size of the rotor's alphabet.
func (r *Rotor) Size() int { return r.perm.Size() }

// Setting returns the current rotational offset in [0, Size).
func (r *Rotor) Setting() int { return r.setting }

// Reflecting reports whether the rotor is a reflector.
func (r *Rotor) Reflecting() bool { return r.kind == KindReflector }

// Rotates reports whether the rotor can advance.
func (r *Rotor) Rotates() bool { return r.kind == KindMoving }

// Notches returns the notch symbols in alphabet order. It is empty for
// reflectors and fixed rotors.
func (r *Rotor) Notches() string {
	var out []rune
	for i, notch := range r.notches {
		if notch {
			out = append(out, r.Alphabet().ToSymbol(i))
		}
	}
	return string(out)
}

// SetPosition sets the rotational offset to i.
func (r *Rotor) SetPosition(i int) error {
	if i < 0 || i >= r.Size() {
		return fmt.Errorf("%w: position %d for rotor %q", errs.ErrUnknownSymbol, i, r.name)
	}
	r.setting = i
	return nil
}

// SetPositionSymbol sets the rotational offset to the index of symbol.
func (r *Rotor) SetPositionSymbol(symbol rune) error {
	i, err := r.Alphabet().ToIndex(symbol)
	if err != nil {
		return fmt.Errorf("position for rotor %q: %w", r.name, err)
	}
	r.setting = i
	return nil
}

// ConvertForward maps contact i through the wiring entering from the right.
func (r *Rotor) ConvertForward(i int) int {
	return r.perm.alphabet.Wrap(r.perm.Permute(i+r.setting) - r.setting)
}

// ConvertBackward maps contact i through the wiring entering from the left.
func (r *Rotor) ConvertBackward(i int) int {
	return r.perm.alphabet.Wrap(r.perm.Invert(i+r.setting) - r.setting)
}

// AtNotch reports whether a moving rotor shows one of its notch symbols.
func (r *Rotor) AtNotch() bool {
	return r.kind == KindMoving && r.notches[r.setting]
}

// Advance moves a moving rotor one position and reports whether it moved.
// Reflectors and fixed rotors stay put.
func (r *Rotor) Advance() bool {
	if r.kind != KindMoving {
		return false
	}
	r.setting = r.perm.alphabet.Wrap(r.setting + 1)
	return true
}

// clone returns an independent copy at setting 0. The permutation and notch
// table are immutable and shared.
func (r *Rotor) clone() *Rotor {
	c := *r
	c.setting = 0
	return &c
}
