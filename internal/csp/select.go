package csp

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// argMax returns the first element of seq with the highest key.
func argMax[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (T, bool) {
	var (
		best    T
		bestKey K
		found   bool
	)
	for v := range seq {
		k := key(v)
		if !found || k > bestKey {
			best, bestKey, found = v, k, true
		}
	}
	return best, found
}

// Select picks the candidate with the highest positional frequency score.
// Ties go to whichever came first. It returns false if there are no
// candidates.
func Select(candidates iter.Seq[string], freq Frequencies) (string, bool) {
	return argMax(candidates, freq.Score)
}
