package utils

import (
	"math/rand"
)

// Shuffled returns a uniformly random permutation of items as a new slice,
// leaving the input untouched. Every item appears exactly once.
func Shuffled[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	for i, j := range rng.Perm(len(items)) {
		out[i] = items[j]
	}
	return out
}
