package cloch

import "math/rand"

// PieceSource supplies the kind of each newly spawned piece.
type PieceSource interface {
	Next() Kind
}

// RandomSource picks uniformly among the seven kinds, independently on
// every call. Repeats are possible.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a source seeded for reproducible games.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a random kind.
func (s *RandomSource) Next() Kind {
	return Kinds[s.rng.Intn(len(Kinds))]
}
