package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameGuess(t *testing.T) {
	g, err := NewGame("rebus")
	require.NoError(t, err)
	assert.Equal(t, 5, g.Length())

	result, won, err := g.Guess("arose")
	require.NoError(t, err)
	assert.False(t, won)
	assert.Equal(t, "_Y_YY", result.String())

	_, _, err = g.Guess("abc")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 1, g.Guesses())

	_, won, err = g.Guess("rebus")
	require.NoError(t, err)
	assert.True(t, won)
	assert.Equal(t, 2, g.Guesses())
}

func TestNewGameInvalid(t *testing.T) {
	_, err := NewGame("Rebus")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHardMode(t *testing.T) {
	g, err := NewGame("rebus")
	require.NoError(t, err)
	// e green, s yellow, the second e gray
	_, _, err = g.Guess("geese")
	require.NoError(t, err)

	tests := []struct {
		word    string
		problem string
	}{
		{"rebus", ""},
		{"verbs", ""},
		{"debts", ""},
		{"beset", "need to use e exactly 1 times"},
		{"reuse", "need to use e exactly 1 times"},
		{"debut", "need to use s at least 1 times"},
		{"gesso", "can't use g"},
		{"sable", "need e as letter 2"},
		{"yeast", "can't use s as letter 4"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			err := g.HardModeProblem(tt.word)
			if tt.problem == "" {
				assert.NoError(t, err)
				assert.True(t, g.HardModeOK(tt.word))
			} else {
				assert.EqualError(t, err, tt.problem)
				assert.False(t, g.HardModeOK(tt.word))
			}
		})
	}
}
