package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

var testWords = []string{
	"crane", "rebus", "arose", "level", "excel", "geese", "speed", "erase",
	"abbey", "babes", "eerie", "llama", "allay", "sassy", "mamma", "tepee",
	"trait", "debut", "verbs", "yeast", "slate", "stare", "pride", "cider",
	"after", "water", "light", "sheep", "power", "train", "fresh", "eagle",
}

func permissive() [wordle.Letters]int {
	var m [wordle.Letters]int
	for i := range m {
		m[i] = 5
	}
	return m
}

func mustResult(t *testing.T, s string) wordle.Result {
	t.Helper()
	r, err := wordle.ParseResult(s)
	require.NoError(t, err)
	return r
}

func TestUpdateCrate(t *testing.T) {
	s := NewStore(5, permissive())
	// c gray, r yellow, a gray, t green, e gray
	require.NoError(t, Update(s, "crate", mustResult(t, "_Y_G_")))

	assert.Equal(t, Bounds{Min: 1, Max: 5}, s.Bounds('r'))
	assert.Equal(t, Bounds{Min: 1, Max: 5}, s.Bounds('t'), "no gray t, so no upper evidence")
	assert.Equal(t, Bounds{Min: 0, Max: 0}, s.Bounds('c'))
	assert.Equal(t, Bounds{Min: 0, Max: 5}, s.Bounds('z'))

	assert.Equal(t, "{t}", s.Domain(3).String())
	assert.False(t, s.Domain(1).Contains('r'))
	assert.True(t, s.Domain(0).Contains('r'))
	for i := range 5 {
		for _, c := range []byte("cae") {
			assert.False(t, s.Domain(i).Contains(c), "%c at %d", c, i)
		}
	}

	assert.True(t, Matches("rusty", s))
	assert.False(t, Matches("trust", s), "t fixed at position 4")
	assert.False(t, Matches("party", s), "a is out")
}

func TestUpdateExactAndAbsentSameLetter(t *testing.T) {
	s := NewStore(5, permissive())
	// target "rebus" against "geese": one e green, the other two gray
	require.NoError(t, Update(s, "geese", mustResult(t, "_G_Y_")))

	assert.Equal(t, Bounds{Min: 1, Max: 1}, s.Bounds('e'), "e occurs exactly once")
	assert.Equal(t, "{e}", s.Domain(1).String())
	assert.False(t, s.Domain(2).Contains('e'))
	assert.False(t, s.Domain(4).Contains('e'))
	assert.True(t, Matches("rebus", s))
}

func TestUpdateDuplicatesAllHit(t *testing.T) {
	s := NewStore(5, permissive())
	// target "speed" against "erase": both e's hit, no gray, so two is a
	// minimum only
	require.NoError(t, Update(s, "erase", mustResult(t, "Y__YY")))
	assert.Equal(t, Bounds{Min: 2, Max: 5}, s.Bounds('e'))
	assert.True(t, Matches("speed", s))
	assert.False(t, Matches("shelf", s))
}

func TestUpdateContradiction(t *testing.T) {
	s := NewStore(5, permissive())
	require.NoError(t, Update(s, "zezzz", mustResult(t, "_G___")))
	require.NoError(t, Update(s, "qqeeq", mustResult(t, "__YY_")))
	assert.Equal(t, 2, s.Bounds('e').Min)

	// e now needs two spots but only position 2 can still hold it
	err := Update(s, "eqqqe", mustResult(t, "Y___Y"))
	require.ErrorIs(t, err, ErrContradiction)
	assert.Contains(t, err.Error(), "requires 2 positions but only 1 available")
}

func TestUpdateMinAboveMax(t *testing.T) {
	s := NewStore(5, permissive())
	require.NoError(t, Update(s, "abcde", mustResult(t, "Y____")))
	require.NoError(t, Update(s, "xaaxx", mustResult(t, "_Y___")))
	assert.Equal(t, Bounds{Min: 1, Max: 1}, s.Bounds('a'))

	err := Update(s, "yyyaa", mustResult(t, "___YY"))
	assert.ErrorIs(t, err, ErrContradiction)
}

func TestUpdateEmptyDomain(t *testing.T) {
	s := NewStore(2, permissive())
	require.NoError(t, Update(s, "ab", mustResult(t, "G_")))
	err := Update(s, "bb", mustResult(t, "G_"))
	assert.ErrorIs(t, err, ErrContradiction)
}

func TestUpdateInvalidInputLeavesStore(t *testing.T) {
	s := NewStore(5, permissive())
	before := s.String()

	for _, tt := range []struct {
		guess  string
		result wordle.Result
	}{
		{"cran", mustResult(t, "____")},
		{"crane", mustResult(t, "____")},
		{"CRANE", mustResult(t, "_____")},
		{"crane", wordle.Result{0, 0, 0, 0, 7}},
	} {
		err := Update(s, tt.guess, tt.result)
		assert.ErrorIs(t, err, wordle.ErrInvalidInput, tt.guess)
	}
	assert.Equal(t, before, s.String())
	assert.Equal(t, Bounds{Min: 0, Max: 5}, s.Bounds('c'))
}

// Every target must survive every round of propagation from honest clues,
// and domains must only shrink.
func TestUpdateSoundAndMonotonic(t *testing.T) {
	corpus, err := NewCorpus(testWords, 5)
	require.NoError(t, err)

	for _, target := range corpus.Words() {
		s := corpus.NewStore()
		for _, guess := range corpus.Words() {
			result, err := wordle.Feedback(target, guess)
			require.NoError(t, err)

			prev := s.Clone()
			require.NoError(t, Update(s, guess, result), "target %s guess %s", target, guess)
			require.True(t, Matches(target, s), "target %s pruned by %s %v: %v", target, guess, result, s)
			require.True(t, s.Narrower(prev), "domains grew on %s", guess)
			for c := byte('a'); c <= 'z'; c++ {
				assert.GreaterOrEqual(t, s.Bounds(c).Min, prev.Bounds(c).Min)
				assert.LessOrEqual(t, s.Bounds(c).Max, prev.Bounds(c).Max)
			}

			// the target's own clues leave it as the only word still
			// matching if it was guessed
			if guess == target {
				assert.Equal(t, []string{target}, Candidates(corpus.Words(), s))
			}
		}
	}
}
