package lwe

import (
	"math/big"

	"github.com/gsw-lwe/gswfhe/matrix"
)

// Not returns an encryption of NOT(bit), computed homomorphically as
// G - ct mod q with no fresh randomness and no noise growth.
func (s *Scheme) Not(ct *Ciphertext) (*Ciphertext, error) {
	q := s.params.Q()
	c, err := s.gadget.Subtract(ct.c, q)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{c: c}, nil
}

// And returns an encryption of bit1 AND bit2, computed as
// c1 * G^-1(c2) mod q — the GSW ciphertext product.
func (s *Scheme) And(c1, c2 *Ciphertext) (*Ciphertext, error) {
	q := s.params.Q()
	ginv, err := matrix.GadgetInverse(c2.c, s.params.ell)
	if err != nil {
		return nil, err
	}
	c, err := c1.c.Multiply(ginv, q)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{c: c}, nil
}

// Nand returns an encryption of bit1 NAND bit2.
func (s *Scheme) Nand(c1, c2 *Ciphertext) (*Ciphertext, error) {
	and, err := s.And(c1, c2)
	if err != nil {
		return nil, err
	}
	return s.Not(and)
}

// Or returns an encryption of bit1 OR bit2, via De Morgan:
// bit1 OR bit2 = NOT(NOT(bit1) AND NOT(bit2)).
func (s *Scheme) Or(c1, c2 *Ciphertext) (*Ciphertext, error) {
	n1, err := s.Not(c1)
	if err != nil {
		return nil, err
	}
	n2, err := s.Not(c2)
	if err != nil {
		return nil, err
	}
	return s.Nand(n1, n2)
}

// Xor returns an encryption of bit1 XOR bit2, computed as
// (c1 + c2) - 2*(c1 * G^-1(c2)) mod q.
func (s *Scheme) Xor(c1, c2 *Ciphertext) (*Ciphertext, error) {
	q := s.params.Q()

	sum, err := c1.c.Add(c2.c, q)
	if err != nil {
		return nil, err
	}
	and, err := s.And(c1, c2)
	if err != nil {
		return nil, err
	}
	twoAnd := and.c.ScalarMultiply(big.NewInt(2), q)
	c, err := sum.Subtract(twoAnd, q)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{c: c}, nil
}
