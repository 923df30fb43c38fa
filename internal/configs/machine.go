package configs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PolarWolf314/enigma/internal/enigma"
	errs "github.com/PolarWolf314/enigma/internal/errors"
)

// MachineConfig is a parsed machine description.
type MachineConfig struct {
	Alphabet  *enigma.Alphabet
	NumRotors int
	NumPawls  int
	Catalog   *enigma.Catalog
}

// NewMachine builds an empty machine from the description. Rotors still
// have to be inserted before it can convert.
func (c *MachineConfig) NewMachine() (*enigma.Machine, error) {
	return enigma.NewMachine(c.Alphabet, c.NumRotors, c.NumPawls, c.Catalog)
}

// LoadMachineConfig reads the machine description at path. Files ending in
// .yaml or .yml are decoded as YAML, anything else uses the native grammar.
func LoadMachineConfig(path string) (*MachineConfig, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", errs.ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open machine description: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseMachineYAML(f)
	default:
		return ParseMachineConfig(f)
	}
}

// tokenReader hands out whitespace-separated tokens with one token of
// lookahead.
type tokenReader struct {
	scanner *bufio.Scanner
	peeked  string
	ok      bool
}

func newTokenReader(r io.Reader) *tokenReader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &tokenReader{scanner: s}
}

func (t *tokenReader) peek() (string, bool) {
	if !t.ok && t.scanner.Scan() {
		t.peeked, t.ok = t.scanner.Text(), true
	}
	return t.peeked, t.ok
}

func (t *tokenReader) next(what string) (string, error) {
	tok, ok := t.peek()
	if !ok {
		if err := t.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", what, err)
		}
		return "", fmt.Errorf("%w: expected %s", errs.ErrConfigTruncated, what)
	}
	t.ok = false
	return tok, nil
}

func (t *tokenReader) nextInt(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", errs.ErrInvalidMachineConfig, what, tok)
	}
	return n, nil
}

// ParseMachineConfig reads a machine description in the native grammar:
// the alphabet, the rotor and pawl counts, then one entry per rotor.
func ParseMachineConfig(r io.Reader) (*MachineConfig, error) {
	tokens := newTokenReader(r)

	symbols, err := tokens.next("alphabet")
	if err != nil {
		return nil, err
	}
	alpha, err := parseAlphabet(symbols)
	if err != nil {
		return nil, err
	}

	numRotors, err := tokens.nextInt("rotor count")
	if err != nil {
		return nil, err
	}
	numPawls, err := tokens.nextInt("pawl count")
	if err != nil {
		return nil, err
	}
	if err := checkCounts(numRotors, numPawls); err != nil {
		return nil, err
	}

	var rotors []*enigma.Rotor
	for {
		if _, more := tokens.peek(); !more {
			break
		}
		rotor, err := parseRotor(tokens, alpha)
		if err != nil {
			return nil, err
		}
		rotors = append(rotors, rotor)
	}
	if err := tokens.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading machine description: %w", err)
	}

	return newMachineConfig(alpha, numRotors, numPawls, rotors)
}

func parseRotor(tokens *tokenReader, alpha *enigma.Alphabet) (*enigma.Rotor, error) {
	name, err := tokens.next("rotor name")
	if err != nil {
		return nil, err
	}
	typ, err := tokens.next("type of rotor " + name)
	if err != nil {
		return nil, err
	}
	kind, err := parseKind(typ[:1])
	if err != nil {
		return nil, fmt.Errorf("rotor %q: %w", name, err)
	}
	notches := typ[1:]

	// A cycle may hold whitespace, so tokens belong to the rotor while a
	// parenthesis is still open.
	var cycles []string
	open := 0
	for {
		tok, ok := tokens.peek()
		if !ok || (open <= 0 && !strings.HasPrefix(tok, "(")) {
			break
		}
		cycles = append(cycles, tok)
		tokens.ok = false
		open += strings.Count(tok, "(") - strings.Count(tok, ")")
	}

	return buildRotor(name, kind, notches, strings.Join(cycles, " "), alpha)
}

func parseAlphabet(symbols string) (*enigma.Alphabet, error) {
	if strings.ContainsAny(symbols, "()*") {
		return nil, fmt.Errorf("%w: alphabet %q may not contain '(', ')' or '*'", errs.ErrInvalidMachineConfig, symbols)
	}
	alpha, err := enigma.NewAlphabet(symbols)
	if err != nil {
		return nil, fmt.Errorf("alphabet: %w", err)
	}
	return alpha, nil
}

func checkCounts(numRotors, numPawls int) error {
	if numPawls <= 0 || numPawls >= numRotors {
		return fmt.Errorf("%w: need 0 < pawls < rotors, got %d pawls and %d rotors",
			errs.ErrInvalidMachineConfig, numPawls, numRotors)
	}
	return nil
}

// parseKind accepts the one-letter type codes of the native grammar and the
// long names used in YAML.
func parseKind(s string) (enigma.Kind, error) {
	switch strings.ToLower(s) {
	case "r", "reflector":
		return enigma.KindReflector, nil
	case "n", "fixed":
		return enigma.KindFixed, nil
	case "m", "moving":
		return enigma.KindMoving, nil
	default:
		return 0, fmt.Errorf("%w: unknown rotor type %q", errs.ErrInvalidMachineConfig, s)
	}
}

func buildRotor(name string, kind enigma.Kind, notches, cycles string, alpha *enigma.Alphabet) (*enigma.Rotor, error) {
	if strings.ContainsAny(name, "()") {
		return nil, fmt.Errorf("%w: rotor name %q contains a parenthesis", errs.ErrInvalidMachineConfig, name)
	}
	if kind != enigma.KindMoving && notches != "" {
		return nil, fmt.Errorf("%w: %s rotor %q has notches %q", errs.ErrInvalidMachineConfig, kind, name, notches)
	}
	if kind == enigma.KindMoving && notches == "" {
		return nil, fmt.Errorf("%w: moving rotor %q has no notches", errs.ErrInvalidMachineConfig, name)
	}

	perm, err := enigma.NewPermutation(cycles, alpha)
	if err != nil {
		return nil, fmt.Errorf("rotor %q: %w", name, err)
	}

	var rotor *enigma.Rotor
	switch kind {
	case enigma.KindReflector:
		for i := 0; i < perm.Size(); i++ {
			if perm.Permute(perm.Permute(i)) != i {
				return nil, fmt.Errorf("%w: reflector %q has a cycle longer than two", errs.ErrInvalidMachineConfig, name)
			}
		}
		rotor, err = enigma.NewReflector(name, perm)
	case enigma.KindFixed:
		rotor, err = enigma.NewFixedRotor(name, perm)
	default:
		rotor, err = enigma.NewMovingRotor(name, perm, notches)
	}
	if err != nil {
		return nil, fmt.Errorf("rotor %q: %w", name, err)
	}
	return rotor, nil
}

func newMachineConfig(alpha *enigma.Alphabet, numRotors, numPawls int, rotors []*enigma.Rotor) (*MachineConfig, error) {
	if len(rotors) == 0 {
		return nil, fmt.Errorf("%w: expected at least one rotor", errs.ErrConfigTruncated)
	}
	catalog, err := enigma.NewCatalog(rotors...)
	if err != nil {
		return nil, err
	}
	return &MachineConfig{
		Alphabet:  alpha,
		NumRotors: numRotors,
		NumPawls:  numPawls,
		Catalog:   catalog,
	}, nil
}
