package sampling

import (
	"fmt"
	"math/big"

	cryptorand "crypto/rand"
)

// Source adapts a PRNG into a matrix.RandomSource by rejection-sampling
// uniform integers in [0, q) — the same approach ontanj-tpsi.SampleInt uses
// (crypto/rand.Int against an io.Reader), generalized to any PRNG.
type Source struct {
	prng PRNG
}

// NewSource wraps prng as a matrix.RandomSource.
func NewSource(prng PRNG) *Source {
	return &Source{prng: prng}
}

// NextRandom returns a value drawn uniformly from [0, q). It panics if q is
// not positive, since that is a programming error at the call site rather
// than a runtime condition callers can recover from.
func (s *Source) NextRandom(q *big.Int) *big.Int {
	if q.Sign() <= 0 {
		panic(fmt.Errorf("sampling: NextRandom: q must be positive, got %v", q))
	}
	v, err := cryptorand.Int(s.prng, q)
	if err != nil {
		panic(fmt.Errorf("sampling: NextRandom: %w", err))
	}
	return v
}
