package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benjaminjkraft/csp-wordle/internal/config"
	"github.com/benjaminjkraft/csp-wordle/internal/csp"
	"github.com/benjaminjkraft/csp-wordle/internal/wordlist"
)

var (
	// Global flags
	configPath string
	verbose    bool
	flagWords  string
	flagAnswer string
	flagLength int
	flagStrat  string
	flagMax    int
	flagHard   bool
	flagSample bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Solve word-guessing puzzles with constraint propagation",
	Long: `wordle models a word-guessing puzzle as a constraint problem over
letter positions and letter counts, guesses, reads the clues and narrows the
candidates until it finds the word.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Resolve(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger, err = newLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("words") {
		cfg.WordsPath = flagWords
	}
	if flags.Changed("answers") {
		cfg.AnswersPath = flagAnswer
	}
	if flags.Changed("length") {
		cfg.WordLength = flagLength
	}
	if flags.Changed("strategy") {
		cfg.Strategy = flagStrat
	}
	if flags.Changed("max-guesses") {
		cfg.MaxGuesses = flagMax
	}
	if flags.Changed("hard") {
		cfg.HardMode = flagHard
	}
	if flags.Changed("sample") {
		cfg.UseSample = flagSample
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
}

func newLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if !lc.JSON {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func loadWords(path string) ([]string, error) {
	if !cfg.UseSample {
		return wordlist.Load(path, cfg.WordLength)
	}
	words, warning, err := wordlist.LoadOrSample(path, cfg.WordLength)
	if warning != "" {
		logger.Warn(warning)
	}
	return words, err
}

// loadCorpus reads the legal word list and the answers to draw targets
// from. Without a separate answers file every legal word is an answer.
func loadCorpus() (*csp.Corpus, []string, error) {
	words, err := loadWords(cfg.WordsPath)
	if err != nil {
		return nil, nil, err
	}
	corpus, err := csp.NewCorpus(words, cfg.WordLength)
	if err != nil {
		return nil, nil, err
	}
	answers := corpus.Words()
	if cfg.AnswersPath != "" {
		if answers, err = loadWords(cfg.AnswersPath); err != nil {
			return nil, nil, err
		}
	}
	logger.Debug("loaded word lists",
		zap.Int("length", cfg.WordLength),
		zap.Int("words", len(corpus.Words())),
		zap.Int("answers", len(answers)))
	return corpus, answers, nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&flagWords, "words", "", "legal word list, one word per line")
	pf.StringVar(&flagAnswer, "answers", "", "answer list (defaults to the word list)")
	pf.IntVarP(&flagLength, "length", "n", 5, "word length")
	pf.StringVarP(&flagStrat, "strategy", "s", "csp", "guessing strategy: csp, baseline or random")
	pf.IntVarP(&flagMax, "max-guesses", "m", 6, "guesses allowed per game")
	pf.BoolVar(&flagHard, "hard", false, "require guesses to respect earlier clues")
	pf.BoolVar(&flagSample, "sample", false, "fall back to a built-in sample list if the word list is missing")

	rootCmd.AddCommand(simulateCmd, playCmd, solveCmd, feedbackCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
