package enigma_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/enigma/internal/enigma"
	errs "github.com/PolarWolf314/enigma/internal/errors"
)

func TestNewAlphabet_Lookups(t *testing.T) {
	a, err := enigma.NewAlphabet("ABCDEFG")
	require.NoError(t, err)

	assert.Equal(t, 7, a.Size())
	i, err := a.ToIndex('E')
	require.NoError(t, err)
	assert.Equal(t, 4, i)
	assert.Equal(t, 'D', a.ToSymbol(3))
	assert.True(t, a.Contains('G'))
	assert.False(t, a.Contains('H'))
	assert.Equal(t, "ABCDEFG", a.String())
}

func TestAlphabet_ToSymbolWraps(t *testing.T) {
	a, err := enigma.NewAlphabet("ABCDEFG")
	require.NoError(t, err)

	cases := []struct {
		index int
		want  rune
	}{
		{7, 'A'},
		{10, 'D'},
		{-1, 'G'},
		{-7, 'A'},
		{-15, 'G'},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, a.ToSymbol(tc.index), "ToSymbol(%d)", tc.index)
	}
}

func TestNewAlphabet_Errors(t *testing.T) {
	cases := []struct {
		name    string
		symbols string
		err     error
	}{
		{"Duplicate", "ABCA", errs.ErrDuplicateSymbol},
		{"Empty", "", errs.ErrEmptyAlphabet},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := enigma.NewAlphabet(tc.symbols)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewAlphabet(%q) error = %v; want %v", tc.symbols, err, tc.err)
			}
		})
	}
}

func TestAlphabet_UnknownSymbol(t *testing.T) {
	a, err := enigma.NewAlphabet(enigma.Uppercase)
	require.NoError(t, err)

	_, err = a.ToIndex('a')
	assert.ErrorIs(t, err, errs.ErrUnknownSymbol)
}

func TestAlphabet_NonASCII(t *testing.T) {
	a, err := enigma.NewAlphabet("ΑΒΓΔ")
	require.NoError(t, err)

	assert.Equal(t, 4, a.Size())
	i, err := a.ToIndex('Γ')
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestAlphabet_Equal(t *testing.T) {
	a, _ := enigma.NewAlphabet("ABC")
	b, _ := enigma.NewAlphabet("ABC")
	c, _ := enigma.NewAlphabet("ACB")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
