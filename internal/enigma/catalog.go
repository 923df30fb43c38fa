package enigma

import (
	"fmt"

	errs "github.com/PolarWolf314/enigma/internal/errors"
)

// Catalog is the set of rotors available to a machine, keyed by name.
// It is never modified after NewCatalog returns.
type Catalog struct {
	alphabet *Alphabet
	names    []string
	rotors   map[string]*Rotor
}

// NewCatalog collects rotors into a catalog. Names must be unique and every
// rotor must share one alphabet.
func NewCatalog(rotors ...*Rotor) (*Catalog, error) {
	if len(rotors) == 0 {
		return nil, fmt.Errorf("%w: catalog has no rotors", errs.ErrConfigurationMismatch)
	}

	c := &Catalog{
		alphabet: rotors[0].Alphabet(),
		names:    make([]string, 0, len(rotors)),
		rotors:   make(map[string]*Rotor, len(rotors)),
	}
	for _, r := range rotors {
		if _, dup := c.rotors[r.Name()]; dup {
			return nil, fmt.Errorf("%w: rotor name %q used twice", errs.ErrConfigurationMismatch, r.Name())
		}
		if !r.Alphabet().Equal(c.alphabet) {
			return nil, fmt.Errorf("%w: rotor %q uses alphabet %q, want %q",
				errs.ErrConfigurationMismatch, r.Name(), r.Alphabet(), c.alphabet)
		}
		c.names = append(c.names, r.Name())
		c.rotors[r.Name()] = r.clone()
	}
	return c, nil
}

// Alphabet returns the alphabet shared by all rotors in the catalog.
func (c *Catalog) Alphabet() *Alphabet { return c.alphabet }

// Len returns the number of rotors.
func (c *Catalog) Len() int { return len(c.names) }

// Names returns rotor names in the order they were added.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Lookup returns a copy of the rotor named name.
func (c *Catalog) Lookup(name string) (Rotor, bool) {
	r, ok := c.rotors[name]
	if !ok {
		return Rotor{}, false
	}
	return *r, true
}

func (c *Catalog) template(name string) (*Rotor, bool) {
	r, ok := c.rotors[name]
	return r, ok
}
