// Package wordlist reads word lists from disk into the normalised form the
// solver expects.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

// Sample is used when no real list is available.
var Sample = []string{"crane", "train", "power", "sheep", "light"}

// Read returns the words of the given length in r, lowercased and trimmed,
// dropping blanks, anything that isn't all letters, and repeats.
func Read(r io.Reader, length int) ([]string, error) {
	var words []string
	seen := make(map[string]bool)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || seen[w] || wordle.Validate(w, length) != nil {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}

func Load(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := Read(f, length)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// LoadOrSample is Load, except that a missing file or one with no words of
// the right length gives the sample list (filtered to length) and a
// non-empty warning.
func LoadOrSample(path string, length int) (words []string, warning string, err error) {
	words, err = Load(path, length)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		warning = fmt.Sprintf("%s not found, using sample list", path)
	case err != nil:
		return nil, "", err
	case len(words) == 0:
		warning = fmt.Sprintf("no %d-letter words in %s, using sample list", length, path)
	default:
		return words, "", nil
	}
	words = nil
	for _, w := range Sample {
		if len(w) == length {
			words = append(words, w)
		}
	}
	return words, warning, nil
}
