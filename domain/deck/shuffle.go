package deck

import "math/rand"

// Permute shuffles s in place with the Fisher–Yates algorithm: for n from
// len(s)-1 down to 1 the element at n is swapped with a uniformly chosen
// element in [0, n]. rng.Intn rejects out-of-range draws, so every one of
// the len(s)! orderings is equally likely.
func Permute[T any](rng *rand.Rand, s []T) {
	for n := len(s) - 1; n > 0; n-- {
		k := rng.Intn(n + 1)
		s[n], s[k] = s[k], s[n]
	}
}

// Permutation returns a random permutation of the integers [0, permSize).
func Permutation(rng *rand.Rand, permSize int) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	Permute(rng, perm)
	return perm
}
