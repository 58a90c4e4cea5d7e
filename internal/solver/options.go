package solver

import (
	"math/rand"

	"go.uber.org/zap"
)

type options struct {
	logger *zap.Logger
	rand   *rand.Rand
}

type Option func(*options)

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRand sets the source used by strategies that choose randomly.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rand = r }
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewSource(1))
	}
	return o
}
