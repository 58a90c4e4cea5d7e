package csp

import (
	"fmt"
	"strings"

	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

// Bounds is how many times a letter may occur anywhere in the target.
type Bounds struct {
	Min, Max int
}

// Store holds everything known about the target: a domain per position and
// occurrence bounds per letter.
type Store struct {
	domains []*Domain
	bounds  [wordle.Letters]Bounds
}

// NewStore returns a store with every letter allowed everywhere and each
// letter's maximum taken from maxCounts.
func NewStore(length int, maxCounts [wordle.Letters]int) *Store {
	s := &Store{domains: make([]*Domain, length)}
	for i := range s.domains {
		s.domains[i] = fullDomain()
	}
	for c, m := range maxCounts {
		s.bounds[c] = Bounds{Min: 0, Max: m}
	}
	return s
}

func (s *Store) Length() int { return len(s.domains) }

func (s *Store) Domain(i int) *Domain { return s.domains[i] }

func (s *Store) Bounds(c byte) Bounds { return s.bounds[c-'a'] }

func (s *Store) Clone() *Store {
	ret := &Store{
		domains: make([]*Domain, len(s.domains)),
		bounds:  s.bounds,
	}
	for i, d := range s.domains {
		ret.domains[i] = d.Clone()
	}
	return ret
}

// Narrower reports whether every domain of s is contained in the matching
// domain of prev, i.e. s was reached from prev by shrinking only.
func (s *Store) Narrower(prev *Store) bool {
	if len(s.domains) != len(prev.domains) {
		return false
	}
	for i, d := range s.domains {
		if !d.SubsetOf(prev.domains[i]) {
			return false
		}
	}
	return true
}

// capacity is the number of positions that can still hold c.
func (s *Store) capacity(c byte) int {
	n := 0
	for _, d := range s.domains {
		if d.Contains(c) {
			n++
		}
	}
	return n
}

func (s *Store) String() string {
	var b strings.Builder
	for i, d := range s.domains {
		fmt.Fprintf(&b, "%d:%v ", i, d)
	}
	for c, bd := range s.bounds {
		if bd.Min > 0 {
			fmt.Fprintf(&b, "%c>=%d ", c+'a', bd.Min)
		}
	}
	return strings.TrimSpace(b.String())
}
