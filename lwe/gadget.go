package lwe

import (
	"math/big"

	"github.com/gsw-lwe/gswfhe/matrix"
)

// buildGadget constructs the gadget matrix G of shape (n+1) x N, N =
// (n+1)*ell, whose rows are the powers-of-two vector g = [1, 2, 4, ...,
// 2^(ell-1)] placed block-diagonally: row i of G is g in columns
// [i*ell, (i+1)*ell) and zero elsewhere. G is the left inverse of
// matrix.GadgetInverse: G * GadgetInverse(C, ell) == C mod q for any C with
// entries in [0, 2^ell).
func buildGadget(p Parameters) *matrix.Matrix {
	n1 := p.n + 1
	g := matrix.New(n1, p.nn)
	for i := 0; i < n1; i++ {
		for b := 0; b < p.ell; b++ {
			g.Set(i, i*p.ell+b, new(big.Int).Lsh(big.NewInt(1), uint(b)))
		}
	}
	return g
}
