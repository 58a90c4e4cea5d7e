package solver

import (
	"math/rand"

	"github.com/benjaminjkraft/csp-wordle/internal/csp"
)

// Random keeps the same constraints as CSP but guesses uniformly among the
// consistent words instead of scoring them.
type Random struct {
	*CSP
	rand *rand.Rand
}

func NewRandom(corpus *csp.Corpus, opts ...Option) *Random {
	o := buildOptions(opts)
	return &Random{CSP: NewCSP(corpus, opts...), rand: o.rand}
}

func (r *Random) NextGuess() (string, bool) {
	if r.state != Active {
		return "", false
	}
	possible := r.Candidates()
	if len(possible) == 0 {
		r.fail(ErrNoCandidate)
		return "", false
	}
	return possible[r.rand.Intn(len(possible))], true
}
