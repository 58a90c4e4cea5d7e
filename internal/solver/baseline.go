package solver

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/benjaminjkraft/csp-wordle/internal/csp"
	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

// Baseline ignores every clue and walks the word list in order, skipping
// words it has already tried. It exists to measure the CSP strategy against.
type Baseline struct {
	session
	words   []string
	next    int
	guessed mapset.Set[string]
}

func NewBaseline(corpus *csp.Corpus, _ ...Option) *Baseline {
	return &Baseline{
		session: session{length: corpus.Length()},
		words:   corpus.Words(),
		guessed: mapset.NewThreadUnsafeSet[string](),
	}
}

func (b *Baseline) NextGuess() (string, bool) {
	if b.state != Active {
		return "", false
	}
	for ; b.next < len(b.words); b.next++ {
		if w := b.words[b.next]; !b.guessed.Contains(w) {
			return w, true
		}
	}
	b.fail(ErrNoCandidate)
	return "", false
}

func (b *Baseline) Incorporate(guess string, result wordle.Result) (State, error) {
	if err := b.checkActive(); err != nil {
		return b.state, err
	}
	if err := b.validate(guess, result); err != nil {
		return b.state, err
	}
	b.guessed.Add(guess)
	return b.record(guess, result), nil
}
