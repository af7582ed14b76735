package matrix

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecomposeRoundTrip(t *testing.T) {
	// S6 from the spec's concrete scenarios.
	dec := Decompose(big.NewInt(13), 5)
	require.Equal(t, 5, dec.Rows())

	want := []int64{1, 0, 1, 1, 0}
	sum := new(big.Int)
	for i, w := range want {
		require.Equal(t, w, dec.Get(i, 0).Int64())
		if w == 1 {
			sum.Add(sum, new(big.Int).Lsh(big.NewInt(1), uint(i)))
		}
	}
	require.Equal(t, int64(13), sum.Int64())
}

func TestDecomposeRoundTripExhaustive(t *testing.T) {
	const ell = 8
	for x := int64(0); x < (1 << ell); x++ {
		dec := Decompose(big.NewInt(x), ell)
		sum := new(big.Int)
		for i := 0; i < ell; i++ {
			if dec.Get(i, 0).Int64() == 1 {
				sum.Add(sum, new(big.Int).Lsh(big.NewInt(1), uint(i)))
			}
		}
		require.Equal(t, x, sum.Int64())
	}
}

func TestGadgetInverseIdentity(t *testing.T) {
	// Build the (n+1) x N gadget matrix G for n=2, ell=4 by hand, then check
	// G * G^-1(C) = C mod q for a C with entries in [0, 2^ell).
	const n = 2
	const ell = 4
	N := (n + 1) * ell
	q := big.NewInt(1 << ell)

	g := New(n+1, N)
	for row := 0; row <= n; row++ {
		for b := 0; b < ell; b++ {
			g.Set(row, row*ell+b, new(big.Int).Lsh(big.NewInt(1), uint(b)))
		}
	}

	c := FromRows(n+1, 2, bigs(3, 5, 9, 1, 2, 15))
	ginv, err := GadgetInverse(c, ell)
	require.NoError(t, err)
	require.Equal(t, N, ginv.Rows())
	require.Equal(t, c.Cols(), ginv.Cols())

	product, err := g.Multiply(ginv, q)
	require.NoError(t, err)
	require.True(t, product.Equals(c))
}
