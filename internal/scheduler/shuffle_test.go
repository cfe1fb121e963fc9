package scheduler

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scripted returns a fixed sequence of IntN results, clamped into range.
type scripted struct {
	seq []int
	pos int
}

func (s *scripted) IntN(n int) int {
	if len(s.seq) == 0 {
		return 0
	}
	v := s.seq[s.pos%len(s.seq)]
	s.pos++
	return v % n
}

func TestShuffle_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}

	out := Shuffled(rng, in)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, in, "input is not modified")
	sorted := slices.Clone(out)
	slices.Sort(sorted)
	assert.Equal(t, in, sorted)
}

func TestShuffle_ZeroDrawsIsRotation(t *testing.T) {
	s := []string{"a", "b", "c"}
	Shuffle(&scripted{seq: []int{0}}, s)
	// i=2 swaps with 0, then i=1 swaps with 0.
	assert.Equal(t, []string{"b", "c", "a"}, s)
}

func TestShuffle_RoughlyUniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	counts := map[string]int{}
	for i := 0; i < 6000; i++ {
		s := []string{"a", "b", "c"}
		Shuffle(rng, s)
		counts[s[0]+s[1]+s[2]]++
	}

	assert.Len(t, counts, 6)
	for perm, n := range counts {
		assert.InDelta(t, 1000, n, 150, "permutation %s", perm)
	}
}
