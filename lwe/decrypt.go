package lwe

import "math/big"

// Decrypt recovers the bit encrypted in ct under sk. It computes u = s*C mod
// q, reads off the column whose gadget entry is 2^(ell-1) in the block of
// s's leading 1 entry (so s*G there is exactly 2^(ell-1), the value closest
// to q/2), centers that value into (-q/2, q/2], and rounds: a noise-free
// encryption of 0 centers near 0, one of 1 centers near q/2.
func (s *Scheme) Decrypt(ct *Ciphertext, sk *SecretKey) (bool, error) {
	q := s.params.Q()
	u, err := sk.s.Multiply(ct.c, q)
	if err != nil {
		return false, err
	}

	col := s.params.ell - 1
	v := u.Get(0, col)

	half := new(big.Int).Rsh(q, 1)
	centered := new(big.Int).Set(v)
	if centered.Cmp(half) > 0 {
		centered.Sub(centered, q)
	}
	centered.Abs(centered)

	threshold := new(big.Int).Lsh(big.NewInt(1), uint(s.params.ell-2))
	return centered.Cmp(threshold) > 0, nil
}
