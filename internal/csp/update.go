package csp

import (
	"errors"
	"fmt"

	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

var ErrContradiction = errors.New("contradiction")

// Update tightens s with the clues a guess received. Malformed input is
// rejected before anything changes. If the tightened store admits no word,
// Update returns an error wrapping ErrContradiction; s is left in that
// unsatisfiable state.
func Update(s *Store, guess string, result wordle.Result) error {
	if err := wordle.Validate(guess, s.Length()); err != nil {
		return err
	}
	if len(result) != len(guess) {
		return fmt.Errorf("%w: %d clues for %d letters", wordle.ErrInvalidInput, len(result), len(guess))
	}
	for i, clue := range result {
		if clue > wordle.Exact {
			return fmt.Errorf("%w: unknown clue %v at %d", wordle.ErrInvalidInput, clue, i+1)
		}
	}

	// Counts come from the whole guess before any domain changes, so a
	// letter's own removals can't skew them.
	var hits, grays [wordle.Letters]int
	for i, clue := range result {
		c := guess[i] - 'a'
		if clue == wordle.Absent {
			grays[c]++
		} else {
			hits[c]++
		}
	}
	for c := range wordle.Letters {
		g, x := hits[c], grays[c]
		if g == 0 && x == 0 {
			continue
		}
		b := &s.bounds[c]
		b.Min = max(b.Min, g)
		if x > 0 {
			// grays mean we saw every copy there is
			b.Max = min(b.Max, g)
		}
	}

	for i, clue := range result {
		c := guess[i]
		if clue == wordle.Exact {
			s.domains[i].Restrict(c)
		} else {
			s.domains[i].Remove(c)
		}
	}

	for c := range wordle.Letters {
		if s.bounds[c].Max > 0 {
			continue
		}
		for _, d := range s.domains {
			d.Remove(byte(c) + 'a')
		}
	}

	return s.check()
}

func (s *Store) check() error {
	for i, d := range s.domains {
		if d.Len() == 0 {
			return fmt.Errorf("%w: no letter left for position %d", ErrContradiction, i+1)
		}
	}
	for c, b := range s.bounds {
		if b.Min == 0 {
			continue
		}
		letter := byte(c) + 'a'
		if b.Min > b.Max {
			return fmt.Errorf("%w: letter %q needs at least %d but at most %d",
				ErrContradiction, letter, b.Min, b.Max)
		}
		if n := s.capacity(letter); n < b.Min {
			return fmt.Errorf("%w: letter %q requires %d positions but only %d available",
				ErrContradiction, letter, b.Min, n)
		}
	}
	return nil
}
