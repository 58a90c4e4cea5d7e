package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	A = Absent
	P = Present
	E = Exact
)

func TestFeedback(t *testing.T) {
	tests := []struct {
		target, guess string
		want          Result
	}{
		{"rebus", "arose", Result{A, P, A, P, P}},
		// one e in the target: only the green one counts
		{"rebus", "geese", Result{A, E, A, P, A}},
		{"level", "excel", Result{P, A, A, E, E}},
		{"crane", "crane", Result{E, E, E, E, E}},
		{"abbey", "babes", Result{P, P, E, E, A}},
		{"speed", "erase", Result{P, A, A, P, P}},
		{"aaxyz", "bbbaa", Result{A, A, A, P, P}},
		{"ab", "ba", Result{P, P}},
		{"a", "b", Result{A}},
	}
	for _, tt := range tests {
		t.Run(tt.target+"/"+tt.guess, func(t *testing.T) {
			got, err := Feedback(tt.target, tt.guess)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "got %v want %v", got, tt.want)
		})
	}
}

func TestFeedbackInvalid(t *testing.T) {
	for _, tt := range []struct{ target, guess string }{
		{"crane", "cran"},
		{"crane", "cranes"},
		{"crane", "Crane"},
		{"cr4ne", "crane"},
		{"", ""},
	} {
		_, err := Feedback(tt.target, tt.guess)
		assert.ErrorIs(t, err, ErrInvalidInput, "%q/%q", tt.target, tt.guess)
	}
}

var sampleWords = []string{
	"rebus", "arose", "level", "excel", "geese", "speed", "erase", "abbey",
	"babes", "eerie", "crane", "llama", "allay", "sassy", "mamma", "tepee",
}

func TestFeedbackSelfIsAllExact(t *testing.T) {
	for _, w := range sampleWords {
		got, err := Feedback(w, w)
		require.NoError(t, err)
		assert.True(t, got.Won(), w)
	}
}

func TestFeedbackNeverOvercounts(t *testing.T) {
	for _, target := range sampleWords {
		for _, guess := range sampleWords {
			got, err := Feedback(target, guess)
			require.NoError(t, err)

			var marked [Letters]uint8
			for i, c := range got {
				if c == Exact {
					assert.Equal(t, target[i], guess[i])
				}
				if c != Absent {
					marked[guess[i]-'a']++
				}
			}
			want := Counts(target)
			for c := range Letters {
				assert.LessOrEqual(t, marked[c], want[c], "%s/%s letter %c", target, guess, c+'a')
			}
		}
	}
}

func TestParseResult(t *testing.T) {
	got, err := ParseResult(" _yG.x ")
	require.NoError(t, err)
	assert.Equal(t, Result{A, P, E, A, A}, got)
	assert.Equal(t, "_YGGY", Result{A, P, E, E, P}.String())

	_, err = ParseResult("GGZ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ParseResult("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResultWon(t *testing.T) {
	assert.True(t, Result{E, E}.Won())
	assert.False(t, Result{E, P}.Won())
	assert.False(t, Result{}.Won())
}
