package wordle

import "fmt"

// Feedback scores guess against target. Greens are assigned before yellows,
// and each target letter can back at most one green or yellow, so repeated
// letters in the guess beyond the target's count come back Absent.
func Feedback(target, guess string) (Result, error) {
	if err := Validate(target, len(target)); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	if err := Validate(guess, len(target)); err != nil {
		return nil, fmt.Errorf("guess: %w", err)
	}

	result := make(Result, len(guess))
	remaining := Counts(target)
	for i := range len(guess) {
		if guess[i] == target[i] {
			result[i] = Exact
			remaining[guess[i]-'a']--
		}
	}
	for i := range len(guess) {
		if result[i] == Exact {
			continue
		}
		c := guess[i] - 'a'
		if remaining[c] > 0 {
			result[i] = Present
			remaining[c]--
		} else {
			result[i] = Absent
		}
	}
	return result, nil
}
