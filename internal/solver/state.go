package solver

import (
	"errors"
	"fmt"

	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

type State uint8

const (
	Active State = iota
	Won
	Exhausted
	Failed
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Won:
		return "won"
	case Exhausted:
		return "exhausted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

func (s State) Terminal() bool { return s != Active }

var (
	// ErrNoCandidate means no word is consistent with what is known, even
	// though the clues themselves did not contradict each other.
	ErrNoCandidate = errors.New("no candidate word left")
	ErrNotActive   = errors.New("session is not active")
)

// Turn is one guess and the clues it got.
type Turn struct {
	Guess  string
	Result wordle.Result
}

// Strategy is a guessing policy over one game. Implementations are not
// safe for concurrent use; run one per game.
type Strategy interface {
	// NextGuess proposes a word. It returns false once the strategy has
	// nothing left to offer, which also ends the session as Failed.
	NextGuess() (string, bool)
	// Incorporate records the clues received for guess.
	Incorporate(guess string, result wordle.Result) (State, error)
	// MarkExhausted ends an active session because the caller's guess
	// budget ran out.
	MarkExhausted()
	State() State
	// Err is the reason for a Failed state, or nil.
	Err() error
	History() []Turn
}

// session is the bookkeeping shared by every strategy.
type session struct {
	length  int
	state   State
	err     error
	history []Turn
}

func (s *session) State() State { return s.state }

func (s *session) Err() error { return s.err }

func (s *session) History() []Turn { return s.history }

func (s *session) MarkExhausted() {
	if s.state == Active {
		s.state = Exhausted
	}
}

func (s *session) fail(err error) {
	s.state = Failed
	s.err = err
}

func (s *session) checkActive() error {
	if s.state != Active {
		return fmt.Errorf("%w: %v", ErrNotActive, s.state)
	}
	return nil
}

func (s *session) validate(guess string, result wordle.Result) error {
	if err := wordle.Validate(guess, s.length); err != nil {
		return err
	}
	if len(result) != s.length {
		return fmt.Errorf("%w: %d clues for length %d", wordle.ErrInvalidInput, len(result), s.length)
	}
	return nil
}

// record appends the turn and moves to Won if every clue was exact.
func (s *session) record(guess string, result wordle.Result) State {
	s.history = append(s.history, Turn{Guess: guess, Result: append(wordle.Result(nil), result...)})
	if result.Won() {
		s.state = Won
	}
	return s.state
}
