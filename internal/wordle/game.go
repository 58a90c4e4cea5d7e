package wordle

import "fmt"

const exactBit = 0x80

// Game holds a hidden target and what the player has been told about it so
// far, in the form hard mode needs.
type Game struct {
	target string
	// (letter that was green)+1 per position, or 0 if none
	greens []byte
	// bitmask per position of letters that were yellow/gray there
	excluded []uint32
	// low 7 bits: most times the letter was yellow/green in one guess
	// high bit: 1 if exact (i.e. also had gray on that guess)
	counts  [Letters]uint8
	guesses int
}

func NewGame(target string) (*Game, error) {
	if err := Validate(target, len(target)); err != nil {
		return nil, fmt.Errorf("invalid target: %w", err)
	}
	return &Game{
		target:   target,
		greens:   make([]byte, len(target)),
		excluded: make([]uint32, len(target)),
	}, nil
}

func (g *Game) Length() int { return len(g.target) }
func (g *Game) Target() string { return g.target }
func (g *Game) Guesses() int { return g.guesses }

// Guess scores word and remembers the clues for hard mode checks.
func (g *Game) Guess(word string) (result Result, won bool, err error) {
	result, err = Feedback(g.target, word)
	if err != nil {
		return nil, false, err
	}
	g.guesses++

	var hits, grays [Letters]uint8
	for j, clue := range result {
		c := word[j] - 'a'
		switch clue {
		case Exact:
			g.greens[j] = c + 1
			hits[c]++
		case Present:
			g.excluded[j] |= 1 << c
			hits[c]++
		case Absent:
			g.excluded[j] |= 1 << c
			grays[c]++
		}
	}
	for i := range Letters {
		n := g.counts[i]
		switch {
		case grays[i] > 0:
			// guessed too many of this letter: we now know the count
			n = exactBit | hits[i]
		case n&exactBit != 0:
			// already exact, nothing new
		case hits[i] > n:
			n = hits[i]
		}
		g.counts[i] = n
	}

	return result, result.Won(), nil
}

func (g *Game) hardModeInfo(word string) (bool, string, byte, int) {
	counts := Counts(word)
	for i, n := range g.counts {
		max := n &^ exactBit
		c := byte(i + 'a')
		if n&exactBit != 0 {
			// if a previous guess had m copies of a letter, and k < m were
			// yellow/green, must use that letter exactly k times
			if counts[i] != max {
				if max == 0 {
					return false, "can't use %c", c, -1
				}
				return false, "need to use %c exactly %d times", c, int(max)
			}
		} else if counts[i] < max {
			// all copies were yellow/green: must use at least that many
			return false, "need to use %c at least %d times", c, int(max)
		}
	}

	for j, c := range []byte(word) {
		i := c - 'a'
		// a green in a spot must be reused in that spot
		if green := g.greens[j]; green != 0 && i != green-1 {
			return false, "need %c as letter %d", 'a' + green - 1, j + 1
		}
		// yellow or gray in a spot rules that letter out there
		if g.excluded[j]&(1<<i) != 0 {
			return false, "can't use %c as letter %d", c, j + 1
		}
	}

	return true, "", 0, 0
}

// HardModeProblem returns nil if word may be played in hard mode, or an
// error describing the first rule it breaks.
func (g *Game) HardModeProblem(word string) error {
	if err := Validate(word, len(g.target)); err != nil {
		return err
	}
	ok, str, b, n := g.hardModeInfo(word)
	switch {
	case ok:
		return nil
	case n == -1:
		return fmt.Errorf(str, b)
	default:
		return fmt.Errorf(str, b, n)
	}
}

func (g *Game) HardModeOK(word string) bool {
	return g.HardModeProblem(word) == nil
}
