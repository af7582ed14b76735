package lwe

import "math/big"

// Parameters is the fixed tuple of scheme parameters: the LWE secret
// dimension n, the ciphertext modulus q, and the number of public-key
// samples m. Ell and N are derived and cached.
type Parameters struct {
	n int
	q *big.Int
	m int
	// ell = ceil(log2(q)), N = (n+1)*ell — both cached at construction so
	// every gate and (de)cryption call avoids recomputing a bit length.
	ell int
	nn  int
}

// defaultN, defaultQ and defaultNoiseBound follow the toy-sized parameters
// spec.md documents: n=4, q ~= 2^30. These are pedagogical, not
// cryptographically hardened, choices.
const defaultN = 4

var defaultQ = new(big.Int).Lsh(big.NewInt(1), 30)

// NewParameters validates and constructs Parameters. m defaults to
// n*ceil(log2 q) + 140 (spec.md's minimum sample count) when m <= 0 is
// passed, letting callers who don't care about m write NewParameters(n, q, 0).
func NewParameters(n int, q *big.Int, m int) (Parameters, error) {
	if n < 1 {
		return Parameters{}, &ParameterError{Field: "n", Value: "must be >= 1"}
	}
	if q == nil || q.Cmp(big.NewInt(2)) < 0 {
		return Parameters{}, &ParameterError{Field: "q", Value: "must be >= 2"}
	}
	ell := ceilLog2(q)
	if m <= 0 {
		m = n*ell + 140
	}
	if m < 1 {
		return Parameters{}, &ParameterError{Field: "m", Value: "must be >= 1"}
	}
	return Parameters{
		n:   n,
		q:   new(big.Int).Set(q),
		m:   m,
		ell: ell,
		nn:  (n + 1) * ell,
	}, nil
}

// DefaultParameters returns the toy-sized parameters spec.md documents as
// the scheme's defaults: n=4, q ~= 2^30, m = n*ceil(log2 q) + 140.
func DefaultParameters() Parameters {
	params, err := NewParameters(defaultN, defaultQ, 0)
	if err != nil {
		// Unreachable: the defaults above always satisfy NewParameters's
		// invariants.
		panic(err)
	}
	return params
}

// N returns the LWE secret dimension.
func (p Parameters) N() int { return p.n }

// Q returns the ciphertext modulus.
func (p Parameters) Q() *big.Int { return new(big.Int).Set(p.q) }

// M returns the number of public-key samples.
func (p Parameters) M() int { return p.m }

// Ell returns ceil(log2(q)).
func (p Parameters) Ell() int { return p.ell }

// CiphertextWidth returns N = (n+1)*ell, the ciphertext matrix's column
// count.
func (p Parameters) CiphertextWidth() int { return p.nn }

func ceilLog2(q *big.Int) int {
	// bitLen(q-1) == ceil(log2(q)) for q >= 2, avoiding floating point.
	if q.Cmp(big.NewInt(1)) <= 0 {
		return 1
	}
	return new(big.Int).Sub(q, big.NewInt(1)).BitLen()
}
