package scheduler

// Random is the randomness source for shuffles and quiz distractors.
// *math/rand/v2.Rand satisfies it.
type Random interface {
	IntN(n int) int
}

// Shuffle permutes s in place with a Fisher–Yates pass driven by rng.
func Shuffle[T any](rng Random, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Shuffled returns a shuffled copy of s.
func Shuffled[T any](rng Random, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	Shuffle(rng, out)
	return out
}
