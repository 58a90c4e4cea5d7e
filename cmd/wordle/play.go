package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benjaminjkraft/csp-wordle/internal/csp"
	"github.com/benjaminjkraft/csp-wordle/internal/wordle"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Guess a random answer yourself",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus, answers, err := loadCorpus()
		if err != nil {
			return err
		}
		if len(answers) == 0 {
			return errors.New("no answers to pick from")
		}
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		target := answers[r.Intn(len(answers))]
		return play(cmd.InOrStdin(), cmd.OutOrStdout(), corpus, target)
	},
}

func play(in io.Reader, out io.Writer, corpus *csp.Corpus, target string) error {
	game, err := wordle.NewGame(target)
	if err != nil {
		return err
	}
	// track what the clues allow so we can show how many words are left
	store := corpus.NewStore()
	legal := make(map[string]bool, len(corpus.Words()))
	for _, w := range corpus.Words() {
		legal[w] = true
	}

	r := bufio.NewReader(in)
	i := 1
	errs := 0
	for i <= cfg.MaxGuesses {
		fmt.Fprintln(out, "Valid words:", len(csp.Candidates(corpus.Words(), store)))
		fmt.Fprintf(out, "Guess %d: ", i)
		guess, err := r.ReadString('\n')
		if errors.Is(err, io.EOF) && guess == "" {
			return nil
		} else if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintln(out, "Read failed:", err)
			errs++
			if errs > 10 {
				return err
			}
			continue
		}
		guess = strings.ToLower(strings.TrimSpace(guess))
		if !legal[guess] {
			fmt.Fprintln(out, "Invalid guess:", guess)
			continue
		} else if cfg.HardMode {
			if err := game.HardModeProblem(guess); err != nil {
				fmt.Fprintln(out, "Hard mode:", err)
				continue
			}
		}

		result, won, err := game.Guess(guess)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Clues %d: %v\n", i, result)
		if won {
			fmt.Fprintln(out, "You won!")
			return nil
		}
		if err := csp.Update(store, guess, result); err != nil {
			// the target isn't in the word list
			logger.Debug("store contradiction", zap.Error(err))
		}
		i++
	}
	fmt.Fprintln(out, "Out of guesses. The word was", strings.ToUpper(target))
	return nil
}
