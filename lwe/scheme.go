package lwe

import "github.com/gsw-lwe/gswfhe/matrix"

// Scheme binds a fixed Parameters and RandomSource and exposes key
// generation, encryption, decryption and the homomorphic gate set. Binding
// both at construction time — rather than threading them through every
// call — lets Scheme cache the gadget matrix once instead of rebuilding it
// on every Encrypt/Not call.
type Scheme struct {
	params Parameters
	rng    matrix.RandomSource
	gadget *matrix.Matrix
	errGen *ErrorGenerator
}

// NewScheme constructs a Scheme over params, drawing all randomness from
// rng. It uses the default noise bound; use NewSchemeWithNoiseBound to
// override it.
func NewScheme(params Parameters, rng matrix.RandomSource) *Scheme {
	return NewSchemeWithNoiseBound(params, rng, defaultNoiseBound)
}

// NewSchemeWithNoiseBound is NewScheme with an explicit error amplitude,
// letting tests shrink or grow the noise distribution independently of n, q
// and m.
func NewSchemeWithNoiseBound(params Parameters, rng matrix.RandomSource, noiseBound int64) *Scheme {
	return &Scheme{
		params: params,
		rng:    rng,
		gadget: buildGadget(params),
		errGen: NewErrorGenerator(rng, noiseBound),
	}
}

// Parameters returns the scheme's parameter set.
func (s *Scheme) Parameters() Parameters { return s.params }
