package solver

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/benjaminjkraft/csp-wordle/internal/csp"
	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

// CSP narrows a constraint store with every clue and guesses the
// best-scoring word still consistent with it.
type CSP struct {
	session
	corpus *csp.Corpus
	store  *csp.Store
	log    *zap.Logger
}

// NewSession builds a corpus from words and starts a CSP session on it.
// Prefer NewCSP with a shared corpus when running many games.
func NewSession(words []string, length int, opts ...Option) (*CSP, error) {
	corpus, err := csp.NewCorpus(words, length)
	if err != nil {
		return nil, err
	}
	return NewCSP(corpus, opts...), nil
}

func NewCSP(corpus *csp.Corpus, opts ...Option) *CSP {
	o := buildOptions(opts)
	return &CSP{
		session: session{length: corpus.Length()},
		corpus:  corpus,
		store:   corpus.NewStore(),
		log:     o.logger,
	}
}

// Store exposes the current constraints. Callers must not modify it.
func (s *CSP) Store() *csp.Store { return s.store }

// Candidates lists the corpus words still consistent with every clue.
func (s *CSP) Candidates() []string {
	return csp.Candidates(s.corpus.Words(), s.store)
}

func (s *CSP) NextGuess() (string, bool) {
	if s.state != Active {
		return "", false
	}
	guess, ok := csp.Select(csp.Filter(s.corpus.Words(), s.store), s.corpus.Frequencies())
	if !ok {
		s.fail(ErrNoCandidate)
		s.log.Debug("no candidate left", zap.Int("guesses", len(s.history)))
		return "", false
	}
	s.log.Debug("next guess", zap.String("guess", guess), zap.Int("turn", len(s.history)+1))
	return guess, true
}

func (s *CSP) Incorporate(guess string, result wordle.Result) (State, error) {
	if err := s.checkActive(); err != nil {
		return s.state, err
	}
	if err := s.validate(guess, result); err != nil {
		return s.state, err
	}
	if err := csp.Update(s.store, guess, result); err != nil {
		if !errors.Is(err, csp.ErrContradiction) {
			return s.state, err
		}
		s.record(guess, result)
		s.fail(err)
		s.log.Debug("contradiction", zap.String("guess", guess), zap.Stringer("result", result), zap.Error(err))
		return s.state, fmt.Errorf("after %q: %w", guess, err)
	}
	state := s.record(guess, result)
	s.log.Debug("incorporated",
		zap.String("guess", guess),
		zap.Stringer("result", result),
		zap.Stringer("store", s.store),
		zap.Stringer("state", state))
	return state, nil
}
