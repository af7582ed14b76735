package lwe

import (
	"math/big"

	"github.com/gsw-lwe/gswfhe/matrix"
)

// GenerateKey samples a fresh SecretKey/PublicKey pair under s.params.
//
// t is a random 1 x n row vector; the secret key is s = [1, t...]. B is a
// random n x m matrix and e a small 1 x m error row; the public key's first
// row is a = e - t*B mod q, with B appended below it so that s*A = e mod q
// (up to the noise term), the LWE relation the ciphertext's decryption
// column later reads off.
func (s *Scheme) GenerateKey() (*KeyPair, error) {
	p := s.params
	q := p.Q()

	t := matrix.Random(1, p.n, s.rng, q)
	sRow := make([]*big.Int, p.n+1)
	sRow[0] = big.NewInt(1)
	copy(sRow[1:], mustVector(t))
	secret := matrix.FromRows(1, p.n+1, sRow)

	b := matrix.Random(p.n, p.m, s.rng, q)
	e := s.errGen.SampleRow(p.m)

	tb, err := t.Multiply(b, q)
	if err != nil {
		return nil, err
	}
	a, err := e.Subtract(tb, q)
	if err != nil {
		return nil, err
	}

	pk := a
	for i := 0; i < p.n; i++ {
		pk, err = pk.AddRow(b.Row(i))
		if err != nil {
			return nil, err
		}
	}

	return &KeyPair{
		Secret: &SecretKey{s: secret},
		Public: &PublicKey{a: pk},
	}, nil
}

func mustVector(m *matrix.Matrix) []*big.Int {
	v, err := m.AsVector()
	if err != nil {
		// Unreachable: callers only pass single-row matrices they built
		// themselves.
		panic(err)
	}
	return v
}
