package generator

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// cryptoSource feeds math/rand/v2 with 64-bit words from crypto/rand. It keeps
// no state, so the *rand.Rand wrapping it is safe for concurrent use.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never returns an error since Go 1.24.
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

var secure = rand.New(cryptoSource{})

// SecureSource returns the cryptographically secure source used when no
// WithSource option is given.
func SecureSource() Source {
	return secure
}

// SeededSource returns a deterministic source. Its output is predictable and
// must only be used in tests and reproducible examples.
func SeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func sample(src Source, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[src.IntN(len(alphabet))]
	}
	return string(b)
}
