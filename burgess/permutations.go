// SPDX-License-Identifier: MIT

package burgess

// maxFactorialN is the largest n with n! representable in int64.
const maxFactorialN = 20

// Factorial returns n! for 0 <= n <= 20 and panics otherwise.
func Factorial(n int) int {
	if n < 0 || n > maxFactorialN {
		panic("burgess: factorial argument out of range")
	}
	out := 1
	for k := 2; k <= n; k++ {
		out *= k
	}

	return out
}

// NextPermutation advances p to its lexicographic successor in place and
// reports whether one existed. On the last permutation p is left unchanged.
//
// Starting from 0..F-1 the visiting order is the lexicographic order of
// permutations of a sorted range.
//
// Complexity: O(F) worst case, amortized O(1).
func NextPermutation(p []int) bool {
	var i, j int
	// Stage 1: rightmost ascent p[i] < p[i+1].
	for i = len(p) - 2; i >= 0 && p[i] >= p[i+1]; i-- {
	}
	if i < 0 {
		return false
	}
	// Stage 2: rightmost element greater than p[i].
	for j = len(p) - 1; p[j] <= p[i]; j-- {
	}
	p[i], p[j] = p[j], p[i]
	// Stage 3: reverse the suffix.
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}

// Unrank writes the rank-th lexicographic permutation of 0..F-1 into dst
// (len(dst) == F) via the factorial number system. Rank must lie in [0, F!).
//
// Complexity: O(F²).
func Unrank(dst []int, rank int) {
	f := len(dst)
	pool := make([]int, f)
	for i := range pool {
		pool[i] = i
	}
	var (
		i, d int
		fact int
	)
	for i = 0; i < f; i++ {
		fact = Factorial(f - 1 - i)
		d = rank / fact
		rank %= fact
		dst[i] = pool[d]
		pool = append(pool[:d], pool[d+1:]...)
	}
}

// Permutations returns every permutation of 0..F-1 in lexicographic order.
// Intended for small F; Search streams them instead.
func Permutations(f int) [][]int {
	out := make([][]int, 0, Factorial(f))
	p := make([]int, f)
	for i := range p {
		p[i] = i
	}
	for {
		out = append(out, append([]int(nil), p...))
		if !NextPermutation(p) {
			return out
		}
	}
}
