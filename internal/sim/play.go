// Package sim plays many games against known targets to evaluate a
// guessing strategy.
package sim

import (
	"errors"
	"fmt"

	"github.com/benjaminjkraft/csp-wordle/internal/solver"
	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

var ErrHardMode = errors.New("hard mode violation")

// Game is how one strategy fared against one target.
type Game struct {
	Target string
	State  solver.State
	Turns  []solver.Turn
	// Err is why the strategy failed, if it did.
	Err error
}

func (g Game) Guesses() int { return len(g.Turns) }

// Play lets strat guess target until it wins, fails, or uses up
// maxGuesses. With hardMode set every guess must respect the clues so far.
// Errors are reserved for problems with the harness or the strategy's
// contract; a lost game is not an error.
func Play(target string, strat solver.Strategy, maxGuesses int, hardMode bool) (Game, error) {
	game, err := wordle.NewGame(target)
	if err != nil {
		return Game{}, err
	}
	for i := 0; i < maxGuesses && strat.State() == solver.Active; i++ {
		guess, ok := strat.NextGuess()
		if !ok {
			break
		}
		if hardMode {
			if err := game.HardModeProblem(guess); err != nil {
				return Game{}, fmt.Errorf("%w: guess %d %q for %q: %w", ErrHardMode, i+1, guess, target, err)
			}
		}
		result, _, err := game.Guess(guess)
		if err != nil {
			return Game{}, fmt.Errorf("guess %d %q for %q: %w", i+1, guess, target, err)
		}
		state, err := strat.Incorporate(guess, result)
		if err != nil && state != solver.Failed {
			return Game{}, fmt.Errorf("incorporating %q for %q: %w", guess, target, err)
		}
	}
	strat.MarkExhausted()
	return Game{
		Target: target,
		State:  strat.State(),
		Turns:  strat.History(),
		Err:    strat.Err(),
	}, nil
}
