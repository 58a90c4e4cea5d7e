package csp

import (
	"iter"

	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

// Matches reports whether word is consistent with every domain and bound
// in s.
func Matches(word string, s *Store) bool {
	if len(word) != s.Length() {
		return false
	}
	for i, c := range []byte(word) {
		if c < 'a' || c > 'z' || !s.domains[i].Contains(c) {
			return false
		}
	}
	counts := wordle.Counts(word)
	for c, b := range s.bounds {
		n := int(counts[c])
		if n < b.Min || n > b.Max {
			return false
		}
	}
	return true
}

// Filter yields the words consistent with s, in input order. The sequence
// is lazy and may be ranged over more than once; s must not change while
// it is in use.
func Filter(words []string, s *Store) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, w := range words {
			if Matches(w, s) && !yield(w) {
				return
			}
		}
	}
}

// Candidates collects Filter into a slice.
func Candidates(words []string, s *Store) []string {
	var ret []string
	for w := range Filter(words, s) {
		ret = append(ret, w)
	}
	return ret
}
