package wordle

import (
	"errors"
	"fmt"
)

const Letters = 26

var ErrInvalidInput = errors.New("invalid input")

// Validate checks that word is exactly length lowercase ASCII letters.
func Validate(word string, length int) error {
	if length < 1 {
		return fmt.Errorf("%w: word length must be positive, got %d", ErrInvalidInput, length)
	}
	if len(word) != length {
		return fmt.Errorf("%w: len(%q) = %d, want %d", ErrInvalidInput, word, len(word), length)
	}
	for i, c := range []byte(word) {
		if c < 'a' || c > 'z' {
			return fmt.Errorf("%w: %q has non-letter %q at %d", ErrInvalidInput, word, c, i+1)
		}
	}
	return nil
}

// Counts returns how many times each letter occurs in word. The word must
// already be validated.
func Counts(word string) [Letters]uint8 {
	var ret [Letters]uint8
	for _, c := range []byte(word) {
		ret[c-'a']++
	}
	return ret
}
