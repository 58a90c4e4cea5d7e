package csp

import (
	"fmt"

	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

// Frequencies counts, per position, how many legal words have each letter
// there.
type Frequencies [][wordle.Letters]int

// Score sums the positional frequency of each letter of word.
func (f Frequencies) Score(word string) int {
	score := 0
	for i, c := range []byte(word) {
		score += f[i][c-'a']
	}
	return score
}

// Corpus is the legal word list for one word length together with the
// tables derived from it. It is built once and only read afterwards, so a
// single Corpus may back any number of concurrent sessions.
type Corpus struct {
	length    int
	words     []string
	freq      Frequencies
	maxCounts [wordle.Letters]int
}

// NewCorpus keeps the words of the right length that are all lowercase
// letters, in their original order, and derives the tables from them.
func NewCorpus(words []string, length int) (*Corpus, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: word length must be positive, got %d", wordle.ErrInvalidInput, length)
	}
	c := &Corpus{
		length: length,
		freq:   make(Frequencies, length),
	}
	for _, w := range words {
		if wordle.Validate(w, length) != nil {
			continue
		}
		c.words = append(c.words, w)
		for i, ch := range []byte(w) {
			c.freq[i][ch-'a']++
		}
		for i, n := range wordle.Counts(w) {
			c.maxCounts[i] = max(c.maxCounts[i], int(n))
		}
	}
	return c, nil
}

func (c *Corpus) Length() int { return c.length }

// Words returns the legal words. Callers must not modify the slice.
func (c *Corpus) Words() []string { return c.words }

func (c *Corpus) Frequencies() Frequencies { return c.freq }

func (c *Corpus) MaxCounts() [wordle.Letters]int { return c.maxCounts }

// NewStore starts a store bounded by this corpus.
func (c *Corpus) NewStore() *Store {
	return NewStore(c.length, c.maxCounts)
}
