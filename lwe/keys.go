package lwe

import "github.com/gsw-lwe/gswfhe/matrix"

// SecretKey is the row vector s = [1, t_1, ..., t_n] over Z_q.
type SecretKey struct {
	s *matrix.Matrix
}

// PublicKey is the (n+1) x m matrix A whose first row satisfies
// a = e - t*B mod q for a small error vector e, and whose remaining n rows
// are B. Encrypt uses A directly; it never needs t or e again.
type PublicKey struct {
	a *matrix.Matrix
}

// KeyPair bundles a freshly generated SecretKey and PublicKey.
type KeyPair struct {
	Secret *SecretKey
	Public *PublicKey
}

// Ciphertext is a GSW encryption of a single bit: an (n+1) x N matrix over
// Z_q, N = (n+1)*ell.
type Ciphertext struct {
	c *matrix.Matrix
}
