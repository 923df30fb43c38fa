package enigma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/enigma/internal/enigma"
	errs "github.com/PolarWolf314/enigma/internal/errors"
)

func TestRotor_KindFlags(t *testing.T) {
	alpha := upper(t)
	cases := []struct {
		def        rotorDef
		reflecting bool
		rotates    bool
	}{
		{navalRotors[7], true, false},
		{navalRotors[5], false, false},
		{navalRotors[0], false, true},
	}
	for _, tc := range cases {
		t.Run(tc.def.kind.String(), func(t *testing.T) {
			r := buildRotor(t, alpha, tc.def)
			assert.Equal(t, tc.def.kind, r.Kind())
			assert.Equal(t, tc.reflecting, r.Reflecting())
			assert.Equal(t, tc.rotates, r.Rotates())
			assert.Equal(t, tc.def.notches, r.Notches())
			assert.Equal(t, tc.def.name, r.Name())
		})
	}
}

func TestRotor_ConvertWithOffset(t *testing.T) {
	r := buildRotor(t, upper(t), navalRotors[0])

	assert.Equal(t, 4, r.ConvertForward(0), "A enters at setting A, leaves as E")
	require.NoError(t, r.SetPositionSymbol('B'))
	assert.Equal(t, 9, r.ConvertForward(0), "A enters at setting B, leaves as J")

	for s := 0; s < r.Size(); s++ {
		require.NoError(t, r.SetPosition(s))
		for i := 0; i < r.Size(); i++ {
			assert.Equalf(t, i, r.ConvertBackward(r.ConvertForward(i)), "setting %d contact %d", s, i)
		}
	}
}

func TestRotor_AdvanceAndNotch(t *testing.T) {
	alpha := upper(t)
	moving := buildRotor(t, alpha, rotorDef{"M", enigma.KindMoving, "QZ", "(AB)"})

	require.NoError(t, moving.SetPositionSymbol('P'))
	assert.False(t, moving.AtNotch())
	assert.True(t, moving.Advance())
	assert.True(t, moving.AtNotch(), "Q is a notch")

	require.NoError(t, moving.SetPositionSymbol('Z'))
	assert.True(t, moving.AtNotch())
	moving.Advance()
	assert.Equal(t, 0, moving.Setting(), "Z wraps to A")

	fixed := buildRotor(t, alpha, navalRotors[5])
	assert.False(t, fixed.Advance())
	assert.Equal(t, 0, fixed.Setting())
	assert.False(t, fixed.AtNotch())

	reflector := buildRotor(t, alpha, navalRotors[7])
	assert.False(t, reflector.Advance())
	assert.False(t, reflector.AtNotch())
}

func TestRotor_SetPositionErrors(t *testing.T) {
	r := buildRotor(t, upper(t), navalRotors[0])

	assert.ErrorIs(t, r.SetPosition(26), errs.ErrUnknownSymbol)
	assert.ErrorIs(t, r.SetPosition(-1), errs.ErrUnknownSymbol)
	assert.ErrorIs(t, r.SetPositionSymbol('*'), errs.ErrUnknownSymbol)
	assert.Equal(t, 0, r.Setting())
}

func TestNewMovingRotor_Errors(t *testing.T) {
	alpha := upper(t)
	perm, err := enigma.NewPermutation("(AB)", alpha)
	require.NoError(t, err)

	_, err = enigma.NewMovingRotor("X", perm, "")
	assert.ErrorIs(t, err, errs.ErrConfigurationMismatch)

	_, err = enigma.NewMovingRotor("X", perm, "A1")
	assert.ErrorIs(t, err, errs.ErrUnknownSymbol)

	_, err = enigma.NewFixedRotor("", perm)
	assert.ErrorIs(t, err, errs.ErrConfigurationMismatch)

	_, err = enigma.NewReflector("R", nil)
	assert.ErrorIs(t, err, errs.ErrConfigurationMismatch)
}
