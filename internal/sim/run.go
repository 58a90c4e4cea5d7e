package sim

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/benjaminjkraft/csp-wordle/internal/csp"
	"github.com/benjaminjkraft/csp-wordle/internal/solver"
)

type Options struct {
	MaxGuesses int
	// Trials is how many games to play per target; only useful for
	// strategies that choose randomly.
	Trials  int
	Workers int
	// Limit caps how many targets are played; 0 plays them all.
	Limit    int
	Seed     int64
	HardMode bool
	Progress bool
	Logger   *zap.Logger
}

// Report summarises a batch of games.
type Report struct {
	Strategy   string
	MaxGuesses int
	Games      []Game
	// Distribution maps guess count to number of wins with that count.
	Distribution map[int]int
	Wins         int
	FailedWords  []string

	perTarget map[string]histogram
}

func (r *Report) Total() int { return len(r.Games) }

func (r *Report) WinRate() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	return 100 * float64(r.Wins) / float64(len(r.Games))
}

// AverageGuesses is the mean guess count over won games, or NaN if none
// were won.
func (r *Report) AverageGuesses() float64 {
	if r.Wins == 0 {
		return math.NaN()
	}
	sum := 0
	for n, ct := range r.Distribution {
		sum += n * ct
	}
	return float64(sum) / float64(r.Wins)
}

// Metrics reports the hardest targets under each metric.
func (r *Report) Metrics() []string {
	if len(r.perTarget) == 0 {
		return nil
	}
	ret := make([]string, len(metrics))
	for i, m := range metrics {
		ret[i] = m.run(r.perTarget)
	}
	return ret
}

// Run plays every answer (up to opts.Limit) with a fresh strategy from
// newStrategy, in parallel. All games share corpus read-only.
func Run(ctx context.Context, name string, corpus *csp.Corpus, answers []string, newStrategy solver.Factory, opts Options) (*Report, error) {
	if opts.MaxGuesses < 1 {
		return nil, fmt.Errorf("max guesses must be positive, got %d", opts.MaxGuesses)
	}
	if opts.Trials < 1 {
		opts.Trials = 1
	}
	if opts.Workers < 1 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Limit > 0 && opts.Limit < len(answers) {
		answers = answers[:opts.Limit]
	}
	log := opts.Logger.With(zap.String("strategy", name))

	n := len(answers) * opts.Trials
	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(n), "simulating")
	} else {
		bar = progressbar.DefaultSilent(int64(n))
	}
	defer func() { _ = bar.Finish() }()

	games := make([]Game, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, target := range answers {
		g.Go(func() error {
			for j := 0; j < opts.Trials; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				k := i*opts.Trials + j
				r := rand.New(rand.NewSource(opts.Seed + int64(k)))
				strat := newStrategy(corpus, solver.WithLogger(log), solver.WithRand(r))
				game, err := Play(target, strat, opts.MaxGuesses, opts.HardMode)
				if err != nil {
					return err
				}
				games[k] = game
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := newReport(name, opts.MaxGuesses, games)
	log.Info("simulation finished",
		zap.Int("games", report.Total()),
		zap.Int("wins", report.Wins),
		zap.Float64("win_rate", report.WinRate()))
	return report, nil
}

func newReport(name string, maxGuesses int, games []Game) *Report {
	r := &Report{
		Strategy:     name,
		MaxGuesses:   maxGuesses,
		Games:        games,
		Distribution: make(map[int]int),
		perTarget:    make(map[string]histogram),
	}
	failed := make(map[string]bool)
	for _, game := range games {
		h, ok := r.perTarget[game.Target]
		if !ok {
			h = make(histogram, maxGuesses+2)
			r.perTarget[game.Target] = h
		}
		if game.State == solver.Won {
			r.Wins++
			r.Distribution[game.Guesses()]++
			h[game.Guesses()]++
			continue
		}
		h[h.lost()]++
		if !failed[game.Target] {
			failed[game.Target] = true
			r.FailedWords = append(r.FailedWords, game.Target)
		}
	}
	return r
}

// Print writes the report in a human-readable form.
func (r *Report) Print(out io.Writer) {
	n := r.Total()
	w := "%" + strconv.Itoa(len(strconv.Itoa(n))) + "d"
	fmt.Fprintf(out, "Strategy: %s\n", r.Strategy)
	fmt.Fprintf(out, "Total games: %d\n", n)
	fmt.Fprintf(out, "Wins: %d (%.2f%%)\n", r.Wins, r.WinRate())
	if r.Wins > 0 {
		fmt.Fprintf(out, "Average guesses (wins only): %.2f\n", r.AverageGuesses())
	}

	fmt.Fprintln(out, "\nDistribution:")
	keys := make([]int, 0, len(r.Distribution))
	for k := range r.Distribution {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	cum := 0
	for _, k := range keys {
		ct := r.Distribution[k]
		cum += ct
		fmt.Fprintf(out, "  "+w+": "+w+"/"+w+" (cum. "+w+"/"+w+")\n", k, ct, n, cum, n)
	}
	fmt.Fprintf(out, "  fail: "+w+"/"+w+"\n", n-r.Wins, n)

	const shown = 20
	failed := r.FailedWords
	more := ""
	if len(failed) > shown {
		failed, more = failed[:shown], " ..."
	}
	fmt.Fprintf(out, "\nFailed words (%d): %s%s\n", len(r.FailedWords), strings.Join(failed, " "), more)

	if ms := r.Metrics(); len(ms) > 0 {
		fmt.Fprintln(out)
		for _, m := range ms {
			fmt.Fprintln(out, m)
		}
	}
}
