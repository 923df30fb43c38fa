package enigma

import (
	"fmt"
	"strings"
	"unicode"

	errs "github.com/PolarWolf314/enigma/internal/errors"
)

// Machine is a complete rotor machine: numRotors slots, numPawls pawls and a
// plugboard. Slot 0 holds the reflector and slot numRotors-1 the fast rotor.
// A Machine is not safe for concurrent use.
type Machine struct {
	alphabet  *Alphabet
	numRotors int
	numPawls  int
	catalog   *Catalog
	slots     []*Rotor
	plugboard *Permutation
	stepping  []bool
}

// NewMachine returns a machine over alpha with numRotors slots and numPawls
// pawls, drawing rotors from catalog. 0 < numPawls < numRotors must hold.
func NewMachine(alpha *Alphabet, numRotors, numPawls int, catalog *Catalog) (*Machine, error) {
	if alpha == nil {
		return nil, fmt.Errorf("%w: machine has no alphabet", errs.ErrConfigurationMismatch)
	}
	if numPawls <= 0 || numPawls >= numRotors {
		return nil, fmt.Errorf("%w: need 0 < pawls < rotors, got %d pawls and %d rotors",
			errs.ErrConfigurationMismatch, numPawls, numRotors)
	}
	if catalog == nil {
		return nil, fmt.Errorf("%w: machine has no rotor catalog", errs.ErrConfigurationMismatch)
	}
	if !catalog.Alphabet().Equal(alpha) {
		return nil, fmt.Errorf("%w: catalog alphabet %q differs from machine alphabet %q",
			errs.ErrConfigurationMismatch, catalog.Alphabet(), alpha)
	}

	return &Machine{
		alphabet:  alpha,
		numRotors: numRotors,
		numPawls:  numPawls,
		catalog:   catalog,
		plugboard: Identity(alpha),
		stepping:  make([]bool, numRotors),
	}, nil
}

// NumRotors returns the number of rotor slots.
func (m *Machine) NumRotors() int { return m.numRotors }

// NumPawls returns the number of pawls, and so of moving rotors.
func (m *Machine) NumPawls() int { return m.numPawls }

// Alphabet returns the machine's alphabet.
func (m *Machine) Alphabet() *Alphabet { return m.alphabet }

// Catalog returns the rotors the machine can be loaded with.
func (m *Machine) Catalog() *Catalog { return m.catalog }

// Plugboard returns the current plugboard permutation.
func (m *Machine) Plugboard() *Permutation { return m.plugboard }

// Ready reports whether rotors have been inserted.
func (m *Machine) Ready() bool { return m.slots != nil }

// InsertRotors loads the slots with fresh copies of the named catalog
// rotors, all at setting 0. names[0] names the reflector. On error the
// previous slots are left untouched.
func (m *Machine) InsertRotors(names []string) error {
	if len(names) != m.numRotors {
		return fmt.Errorf("%w: %d rotors named for %d slots", errs.ErrConfigurationMismatch, len(names), m.numRotors)
	}

	firstPawl := m.numRotors - m.numPawls
	slots := make([]*Rotor, m.numRotors)
	seen := make(map[string]bool, len(names))
	for k, name := range names {
		if seen[name] {
			return fmt.Errorf("%w: rotor %q named for two slots", errs.ErrConfigurationMismatch, name)
		}
		seen[name] = true

		tmpl, ok := m.catalog.template(name)
		if !ok {
			return fmt.Errorf("%w: no rotor named %q", errs.ErrConfigurationMismatch, name)
		}
		switch {
		case k == 0 && !tmpl.Reflecting():
			return fmt.Errorf("%w: slot 0 holds %s rotor %q, want a reflector", errs.ErrConfigurationMismatch, tmpl.Kind(), name)
		case k > 0 && tmpl.Reflecting():
			return fmt.Errorf("%w: reflector %q in slot %d", errs.ErrConfigurationMismatch, name, k)
		case k >= firstPawl && !tmpl.Rotates():
			return fmt.Errorf("%w: slot %d needs a moving rotor, %q is %s", errs.ErrConfigurationMismatch, k, name, tmpl.Kind())
		case k > 0 && k < firstPawl && tmpl.Rotates():
			return fmt.Errorf("%w: moving rotor %q in slot %d has no pawl", errs.ErrConfigurationMismatch, name, k)
		}
		slots[k] = tmpl.clone()
	}

	m.slots = slots
	return nil
}

// SetRotors sets the positions of slots 1..numRotors-1 from setting, one
// symbol per slot, leftmost first.
func (m *Machine) SetRotors(setting string) error {
	if !m.Ready() {
		return fmt.Errorf("%w: no rotors inserted", errs.ErrConfigurationMismatch)
	}
	symbols := []rune(setting)
	if len(symbols) != m.numRotors-1 {
		return fmt.Errorf("%w: setting %q has %d symbols, want %d",
			errs.ErrConfigurationMismatch, setting, len(symbols), m.numRotors-1)
	}

	positions := make([]int, len(symbols))
	for k, symbol := range symbols {
		i, err := m.alphabet.ToIndex(symbol)
		if err != nil {
			return fmt.Errorf("setting %q: %w", setting, err)
		}
		positions[k] = i
	}
	for k, i := range positions {
		m.slots[k+1].setting = i
	}
	return nil
}

// SetPlugboard installs p as the plugboard. A nil p restores the identity.
func (m *Machine) SetPlugboard(p *Permutation) error {
	if p == nil {
		m.plugboard = Identity(m.alphabet)
		return nil
	}
	if !p.Alphabet().Equal(m.alphabet) {
		return fmt.Errorf("%w: plugboard alphabet %q differs from machine alphabet %q",
			errs.ErrConfigurationMismatch, p.Alphabet(), m.alphabet)
	}
	m.plugboard = p
	return nil
}

// Rotor returns a read-only copy of the rotor in slot k.
func (m *Machine) Rotor(k int) (Rotor, error) {
	if !m.Ready() {
		return Rotor{}, fmt.Errorf("%w: no rotors inserted", errs.ErrConfigurationMismatch)
	}
	if k < 0 || k >= m.numRotors {
		return Rotor{}, fmt.Errorf("%w: slot %d outside 0..%d", errs.ErrConfigurationMismatch, k, m.numRotors-1)
	}
	return *m.slots[k], nil
}

// Settings returns the symbols shown by slots 1..numRotors-1.
func (m *Machine) Settings() string {
	if !m.Ready() {
		return ""
	}
	out := make([]rune, 0, m.numRotors-1)
	for _, r := range m.slots[1:] {
		out = append(out, m.alphabet.ToSymbol(r.setting))
	}
	return string(out)
}

func (m *Machine) positions() []int {
	out := make([]int, 0, m.numRotors-1)
	for _, r := range m.slots[1:] {
		out = append(out, r.setting)
	}
	return out
}

// Convert advances the rotors and returns the encoding of index c. It
// panics if InsertRotors has not succeeded.
func (m *Machine) Convert(c int) int {
	return m.ConvertWith(c, nil)
}

// ConvertWith is Convert reporting the step to tr when tr is non-nil.
func (m *Machine) ConvertWith(c int, tr Tracer) int {
	if !m.Ready() {
		panic("enigma: Convert called before InsertRotors")
	}

	var step Step
	if tr != nil {
		step.Before = m.positions()
	}

	m.advanceRotors()
	c = m.alphabet.Wrap(c)
	step.Input = c

	c = m.plugboard.Permute(c)
	step.Plugged = c

	c = m.applyRotors(c)
	step.Rotated = c

	c = m.plugboard.Permute(c)
	step.Output = c

	if tr != nil {
		step.After = m.positions()
		tr.TraceStep(step)
	}
	return c
}

// advanceRotors steps the machine once. Pawl i sits between slots i and i+1
// for every pawl slot but the fast one; when rotor i+1 is at a notch the
// pawl pushes both rotors. Notches are read before anything moves.
func (m *Machine) advanceRotors() {
	last := m.numRotors - 1
	for i := range m.stepping {
		m.stepping[i] = false
	}
	m.stepping[last] = true

	for i := m.numRotors - m.numPawls; i < last; i++ {
		if m.slots[i].Rotates() && m.slots[i+1].AtNotch() {
			m.stepping[i] = true
			m.stepping[i+1] = true
		}
	}

	for i := 1; i <= last; i++ {
		if m.stepping[i] {
			m.slots[i].Advance()
		}
	}
}

func (m *Machine) applyRotors(c int) int {
	for k := m.numRotors - 1; k >= 0; k-- {
		c = m.slots[k].ConvertForward(c)
	}
	for k := 1; k < m.numRotors; k++ {
		c = m.slots[k].ConvertBackward(c)
	}
	return c
}

// ConvertMessage encodes msg symbol by symbol. Whitespace is copied through
// without stepping the rotors. Nothing is converted if msg holds a symbol
// outside the alphabet.
func (m *Machine) ConvertMessage(msg string, tr Tracer) (string, error) {
	if !m.Ready() {
		return "", fmt.Errorf("%w: no rotors inserted", errs.ErrConfigurationMismatch)
	}
	for _, r := range msg {
		if !unicode.IsSpace(r) && !m.alphabet.Contains(r) {
			return "", fmt.Errorf("message: %w: %q", errs.ErrUnknownSymbol, r)
		}
	}

	var b strings.Builder
	b.Grow(len(msg))
	for _, r := range msg {
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}
		i, _ := m.alphabet.ToIndex(r)
		b.WriteRune(m.alphabet.ToSymbol(m.ConvertWith(i, tr)))
	}
	return b.String(), nil
}
