package lwe

import (
	"math/big"

	"github.com/gsw-lwe/gswfhe/matrix"
)

// defaultNoiseBound is B_e, the noise amplitude spec.md documents: the error
// terms baked into a fresh public key are drawn uniformly from [-B_e, B_e],
// small enough that decryption's rounding step recovers the encrypted bit
// exactly.
const defaultNoiseBound = 6

// ErrorGenerator draws the small error terms baked into a fresh public key.
// It is parameterised by bound so tests can shrink or grow the noise
// distribution independent of the scheme's other parameters (spec.md
// §4.5: "tests SHOULD parameterise it").
type ErrorGenerator struct {
	rng   matrix.RandomSource
	bound int64
}

// NewErrorGenerator returns an ErrorGenerator sampling from [-bound, bound]
// via rng. A non-positive bound falls back to defaultNoiseBound.
func NewErrorGenerator(rng matrix.RandomSource, bound int64) *ErrorGenerator {
	if bound <= 0 {
		bound = defaultNoiseBound
	}
	return &ErrorGenerator{rng: rng, bound: bound}
}

// Sample returns a single error term in [-bound, bound].
func (g *ErrorGenerator) Sample() *big.Int {
	span := big.NewInt(2*g.bound + 1)
	v := g.rng.NextRandom(span)
	return v.Sub(v, big.NewInt(g.bound))
}

// SampleRow returns a 1 x n row vector of independent error terms.
func (g *ErrorGenerator) SampleRow(n int) *matrix.Matrix {
	row := make([]*big.Int, n)
	for i := range row {
		row[i] = g.Sample()
	}
	return matrix.FromRows(1, n, row)
}
