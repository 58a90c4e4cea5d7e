package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benjaminjkraft/csp-wordle/internal/csp"
	"github.com/benjaminjkraft/csp-wordle/internal/solver"
	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Suggest guesses for a game played elsewhere",
	Long: `solve suggests a guess, then reads the clues you got for it, one line per
turn: G for green, Y for yellow and _ for gray, e.g. "_YG__". To report a
different word than the one suggested, type the word first: "crane _YG__".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus, _, err := loadCorpus()
		if err != nil {
			return err
		}
		strat, err := solver.New(cfg.Strategy, corpus, solver.WithLogger(logger))
		if err != nil {
			return err
		}
		return solve(cmd.InOrStdin(), cmd.OutOrStdout(), strat, corpus.Length())
	},
}

func solve(in io.Reader, out io.Writer, strat solver.Strategy, length int) error {
	sc := bufio.NewScanner(in)
	for turn := 1; turn <= cfg.MaxGuesses; turn++ {
		suggestion, ok := strat.NextGuess()
		if !ok {
			fmt.Fprintln(out, "No word left that fits the clues.")
			return nil
		}
		fmt.Fprintf(out, "Guess %d: %s\n", turn, suggestion)

		var (
			guess  string
			result wordle.Result
		)
		for {
			fmt.Fprintf(out, "Clues %d: ", turn)
			if !sc.Scan() {
				return sc.Err()
			}
			var err error
			guess, result, err = parseTurn(sc.Text(), suggestion, length)
			if err == nil {
				break
			}
			fmt.Fprintln(out, err)
		}

		state, err := strat.Incorporate(guess, result)
		switch {
		case errors.Is(err, csp.ErrContradiction):
			fmt.Fprintln(out, "Those clues contradict earlier ones:", err)
			return nil
		case err != nil:
			return err
		case state == solver.Won:
			fmt.Fprintf(out, "Solved in %d.\n", turn)
			return nil
		}
	}
	strat.MarkExhausted()
	fmt.Fprintln(out, "Out of guesses.")
	return nil
}

// parseTurn reads "PATTERN" or "WORD PATTERN".
func parseTurn(line, suggestion string, length int) (string, wordle.Result, error) {
	fields := strings.Fields(line)
	guess := suggestion
	switch len(fields) {
	case 1:
	case 2:
		guess = strings.ToLower(fields[0])
		fields = fields[1:]
	default:
		return "", nil, fmt.Errorf("want PATTERN or WORD PATTERN")
	}
	if err := wordle.Validate(guess, length); err != nil {
		return "", nil, err
	}
	result, err := wordle.ParseResult(fields[0])
	if err != nil {
		return "", nil, err
	}
	if len(result) != length {
		return "", nil, fmt.Errorf("want %d clues, got %d", length, len(result))
	}
	return guess, result, nil
}
