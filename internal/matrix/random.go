package matrix

import "math/rand"

// defaultSeed keeps Random reproducible when the embedding application does
// not supply its own source.
const defaultSeed = 6_447_991_239_222_745_267

// Source is a uniform random source consumed by Random. *rand.Rand
// satisfies it, so callers can plug in any seeding strategy:
//
//	m := matrix.Random[float32](3, 2, rand.New(rand.NewSource(42)))
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// DefaultSource returns a fresh source seeded with the library's fixed
// default seed. Two calls produce identical sequences.
func DefaultSource() Source {
	//nolint:gosec // weight initialization is not security-critical
	return rand.New(rand.NewSource(defaultSeed))
}
