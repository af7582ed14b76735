// Package sampling implements the Random collaborator external to the
// LWE/GSW core: an io.Reader-shaped PRNG abstraction and a Source that turns
// it into a matrix.RandomSource.
package sampling

import (
	"crypto/rand"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for secure generation of random bytes, grounded on
// tuneinsight-lattigo/utils/sampling.PRNG.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG backed by crypto/rand. It is safe to call from
// multiple goroutines and gives no reproducibility guarantee; use it for
// production key generation and encryption.
type ThreadSafePRNG struct{}

// NewThreadSafePRNG returns a PRNG backed by the operating system's CSPRNG.
func NewThreadSafePRNG() *ThreadSafePRNG {
	return &ThreadSafePRNG{}
}

// Read reads len(p) random bytes from the OS CSPRNG.
func (prng *ThreadSafePRNG) Read(p []byte) (n int, err error) {
	return rand.Read(p)
}

// KeyedPRNG deterministically derives a sequence of random bytes from a key
// using the blake2b extendable-output function. Two KeyedPRNGs constructed
// with the same key produce the same byte stream, which makes it useful for
// reproducible tests and benchmarks of the noise distribution (spec.md
// §4.5's "tests SHOULD parameterise it").
//
// WARNING: a KeyedPRNG seeded with a nil or empty key is not secure, and its
// Read must not be called concurrently by multiple goroutines — the stream
// would no longer be deterministic.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a KeyedPRNG seeded with key.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	stored := make([]byte, len(key))
	copy(stored, key)
	return &KeyedPRNG{key: stored, xof: xof}, nil
}

// Key returns a copy of the seed used to construct this KeyedPRNG.
func (prng *KeyedPRNG) Key() []byte {
	key := make([]byte, len(prng.key))
	copy(key, prng.key)
	return key
}

// Read reads len(p) bytes from the keyed stream.
func (prng *KeyedPRNG) Read(p []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(p)
}

// Reset rewinds the stream to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
