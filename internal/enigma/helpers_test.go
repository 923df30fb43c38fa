package enigma_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/enigma/internal/enigma"
)

type rotorDef struct {
	name    string
	kind    enigma.Kind
	notches string
	cycles  string
}

// navalRotors are the historical wheels written as cycles.
var navalRotors = []rotorDef{
	{"I", enigma.KindMoving, "Q", "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)"},
	{"II", enigma.KindMoving, "E", "(FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT) (A) (Q)"},
	{"III", enigma.KindMoving, "V", "(ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)"},
	{"IV", enigma.KindMoving, "J", "(AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)"},
	{"V", enigma.KindMoving, "Z", "(AVOLDRWFIUQ)(BZKSMNHYC) (EGTJPX)"},
	{"Beta", enigma.KindFixed, "", "(ALBEVFCYODJWUGNMQTZSKPR) (HIX)"},
	{"Gamma", enigma.KindFixed, "", "(AFNIRLBSQWVXGUZDKMTPCOYJHE)"},
	{"B", enigma.KindReflector, "", "(AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)"},
	{"C", enigma.KindReflector, "", "(AR) (BD) (CO) (EJ) (FN) (GT) (HK) (IV) (LM) (PW) (QZ) (SX) (UY)"},
}

func buildRotor(t *testing.T, alpha *enigma.Alphabet, def rotorDef) *enigma.Rotor {
	t.Helper()
	perm, err := enigma.NewPermutation(def.cycles, alpha)
	require.NoError(t, err)

	var r *enigma.Rotor
	switch def.kind {
	case enigma.KindReflector:
		r, err = enigma.NewReflector(def.name, perm)
	case enigma.KindFixed:
		r, err = enigma.NewFixedRotor(def.name, perm)
	default:
		r, err = enigma.NewMovingRotor(def.name, perm, def.notches)
	}
	require.NoError(t, err)
	return r
}

func navalCatalog(t *testing.T) *enigma.Catalog {
	t.Helper()
	alpha := upper(t)
	rotors := make([]*enigma.Rotor, 0, len(navalRotors))
	for _, def := range navalRotors {
		rotors = append(rotors, buildRotor(t, alpha, def))
	}
	c, err := enigma.NewCatalog(rotors...)
	require.NoError(t, err)
	return c
}

// navalMachine returns a five slot, three pawl machine loaded with names.
func navalMachine(t *testing.T, names []string, setting, plugboard string) *enigma.Machine {
	t.Helper()
	c := navalCatalog(t)
	m, err := enigma.NewMachine(c.Alphabet(), 5, 3, c)
	require.NoError(t, err)
	require.NoError(t, m.InsertRotors(names))
	require.NoError(t, m.SetRotors(setting))

	pb, err := enigma.NewPermutation(plugboard, c.Alphabet())
	require.NoError(t, err)
	require.NoError(t, m.SetPlugboard(pb))
	return m
}
