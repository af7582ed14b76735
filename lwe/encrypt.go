package lwe

import (
	"math/big"

	"github.com/gsw-lwe/gswfhe/matrix"
)

// Encrypt returns a fresh GSW encryption of bit under pk: C = A*R + bit*G
// mod q, where R is an m x N matrix of uniform bits. Each call draws a fresh
// R, so encrypting the same bit twice yields unlinkable ciphertexts.
func (s *Scheme) Encrypt(bit bool, pk *PublicKey) (*Ciphertext, error) {
	q := s.params.Q()
	r := matrix.Random(s.params.m, s.params.nn, s.rng, big.NewInt(2))

	c, err := pk.a.Multiply(r, q)
	if err != nil {
		return nil, err
	}
	if bit {
		c, err = c.Add(s.gadget, q)
		if err != nil {
			return nil, err
		}
	}
	return &Ciphertext{c: c}, nil
}
