package solver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/benjaminjkraft/csp-wordle/internal/csp"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Factory starts a fresh strategy for one game.
type Factory func(corpus *csp.Corpus, opts ...Option) Strategy

var factories = map[string]Factory{
	"csp":      func(c *csp.Corpus, opts ...Option) Strategy { return NewCSP(c, opts...) },
	"baseline": func(c *csp.Corpus, opts ...Option) Strategy { return NewBaseline(c, opts...) },
	"random":   func(c *csp.Corpus, opts ...Option) Strategy { return NewRandom(c, opts...) },
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownStrategy, name, Names())
	}
	return f, nil
}

// New starts a strategy by name.
func New(name string, corpus *csp.Corpus, opts ...Option) (Strategy, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f(corpus, opts...), nil
}

func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
