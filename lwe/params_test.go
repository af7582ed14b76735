package lwe

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewParametersRejectsInvalidN(t *testing.T) {
	_, err := NewParameters(0, big.NewInt(97), 0)
	require.ErrorContains(t, err, "n")
}

func TestNewParametersRejectsInvalidQ(t *testing.T) {
	_, err := NewParameters(4, big.NewInt(1), 0)
	require.ErrorContains(t, err, "q")
}

func TestNewParametersDerivesEllAndWidth(t *testing.T) {
	params, err := NewParameters(4, big.NewInt(8), 100)
	require.NoError(t, err)
	require.Equal(t, 3, params.Ell())
	require.Equal(t, 15, params.CiphertextWidth())
	require.Equal(t, 100, params.M())
}

func TestNewParametersDefaultsM(t *testing.T) {
	params, err := NewParameters(4, big.NewInt(8), 0)
	require.NoError(t, err)
	require.Equal(t, 4*3+140, params.M())
}

func TestDefaultParametersIsValid(t *testing.T) {
	params := DefaultParameters()
	require.Equal(t, 4, params.N())
	require.Equal(t, 30, params.Ell())
}
