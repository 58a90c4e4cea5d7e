package sim

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// histogram counts games by number of guesses; the last bucket holds games
// that were never solved.
type histogram []int

func (h histogram) lost() int { return len(h) - 1 }

type metricImpl[T constraints.Ordered] struct {
	name        string
	badnessFunc func(histogram) T
}

func (m *metricImpl[T]) run(results map[string]histogram) string {
	var worst T
	var worstWords []string
	for w, r := range results {
		badness := m.badnessFunc(r)
		switch {
		case len(worstWords) == 0 || worst < badness:
			worstWords = []string{w}
			worst = badness
		case worst == badness:
			worstWords = append(worstWords, w)
		}
	}
	sort.Strings(worstWords)
	return fmt.Sprintf("worst %v: %v (%v)", m.name, worst, strings.Join(worstWords, " "))
}

type metric interface {
	run(results map[string]histogram) string
}

var metrics = []metric{
	&metricImpl[int]{"worst", func(r histogram) int {
		for i := len(r) - 1; i >= 0; i-- {
			if r[i] > 0 {
				return i
			}
		}
		panic("empty result")
	}},
	&metricImpl[int]{"best", func(r histogram) int {
		for i := 0; i < len(r); i++ {
			if r[i] > 0 {
				return i
			}
		}
		panic("empty result")
	}},
	&metricImpl[float64]{"average", func(r histogram) float64 {
		sum := 0
		ct := 0
		for i := 0; i < len(r); i++ {
			sum += i * r[i]
			ct += r[i]
		}
		return float64(sum) / float64(ct)
	}},
	&metricImpl[float64]{"unsolved %", func(r histogram) float64 {
		win := 0
		for i := 0; i < r.lost(); i++ {
			win += r[i]
		}
		loss := r[r.lost()]
		return 100 * float64(loss) / float64(win+loss)
	}},
}
