package burgess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lithocycle/burgess"
)

func TestPermutations_Lexicographic(t *testing.T) {
	want := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	assert.Equal(t, want, burgess.Permutations(3))
	assert.Len(t, burgess.Permutations(5), 120)
}

func TestUnrank_MatchesEnumeration(t *testing.T) {
	for f := 1; f <= 5; f++ {
		all := burgess.Permutations(f)
		dst := make([]int, f)
		for rank, p := range all {
			burgess.Unrank(dst, rank)
			assert.Equal(t, p, dst, "F=%d rank=%d", f, rank)
		}
	}
}

func TestNextPermutation_Last(t *testing.T) {
	p := []int{2, 1, 0}
	assert.False(t, burgess.NextPermutation(p))
	assert.Equal(t, []int{2, 1, 0}, p)
}

func TestFactorial(t *testing.T) {
	assert.Equal(t, 1, burgess.Factorial(0))
	assert.Equal(t, 40320, burgess.Factorial(8))
	assert.Panics(t, func() { burgess.Factorial(21) })
	assert.Panics(t, func() { burgess.Factorial(-1) })
}
