package configs

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/PolarWolf314/enigma/internal/enigma"
	errs "github.com/PolarWolf314/enigma/internal/errors"
)

type machineYAML struct {
	Alphabet string      `yaml:"alphabet"`
	Rotors   int         `yaml:"rotors"`
	Pawls    int         `yaml:"pawls"`
	Catalog  []rotorYAML `yaml:"catalog"`
}

type rotorYAML struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Notches string `yaml:"notches"`
	Cycles  string `yaml:"cycles"`
}

// ParseMachineYAML reads a machine description written as YAML. Unknown
// keys are rejected.
func ParseMachineYAML(r io.Reader) (*MachineConfig, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc machineYAML
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", errs.ErrConfigTruncated)
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidMachineConfig, err)
	}

	if doc.Alphabet == "" {
		return nil, fmt.Errorf("%w: missing alphabet", errs.ErrConfigTruncated)
	}
	alpha, err := parseAlphabet(doc.Alphabet)
	if err != nil {
		return nil, err
	}
	if err := checkCounts(doc.Rotors, doc.Pawls); err != nil {
		return nil, err
	}

	rotors := make([]*enigma.Rotor, 0, len(doc.Catalog))
	for i, entry := range doc.Catalog {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: catalog entry %d has no name", errs.ErrInvalidMachineConfig, i)
		}
		kind, err := parseKind(entry.Kind)
		if err != nil {
			return nil, fmt.Errorf("rotor %q: %w", entry.Name, err)
		}
		rotor, err := buildRotor(entry.Name, kind, entry.Notches, entry.Cycles, alpha)
		if err != nil {
			return nil, err
		}
		rotors = append(rotors, rotor)
	}

	return newMachineConfig(alpha, doc.Rotors, doc.Pawls, rotors)
}
