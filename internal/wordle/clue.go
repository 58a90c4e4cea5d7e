package wordle

import (
	"fmt"
	"strings"
)

type Clue uint8

const (
	Absent Clue = iota
	Present
	Exact
)

func (c Clue) String() string {
	switch c {
	case Absent:
		return "ABSENT"
	case Present:
		return "PRESENT"
	case Exact:
		return "EXACT"
	default:
		return fmt.Sprintf("Clue(%d)", uint8(c))
	}
}

// Result is the feedback for one guess, one clue per position.
type Result []Clue

func (r Result) Won() bool {
	if len(r) == 0 {
		return false
	}
	for _, c := range r {
		if c != Exact {
			return false
		}
	}
	return true
}

func (r Result) String() string {
	b := make([]byte, len(r))
	for i, c := range r {
		switch c {
		case Absent:
			b[i] = '_'
		case Present:
			b[i] = 'Y'
		case Exact:
			b[i] = 'G'
		default:
			b[i] = '?'
		}
	}
	return string(b)
}

// ParseResult reads a pattern as typed by a player copying a real game:
// G for green, Y for yellow, and any of _ . - x b for gray.
func ParseResult(s string) (Result, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty feedback pattern", ErrInvalidInput)
	}
	r := make(Result, len(s))
	for i, ch := range []byte(s) {
		switch ch {
		case 'G', 'g':
			r[i] = Exact
		case 'Y', 'y':
			r[i] = Present
		case '_', '.', '-', 'x', 'X', 'b', 'B':
			r[i] = Absent
		default:
			return nil, fmt.Errorf("%w: bad feedback character %q at %d", ErrInvalidInput, ch, i+1)
		}
	}
	return r, nil
}
