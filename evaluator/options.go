package evaluator

import (
	"context"

	"github.com/katalvlaran/ctlquant/satisfaction"
)

// Options configures Evaluate.
type Options struct {
	Ctx           context.Context
	KernelOptions []satisfaction.Option
}

// Option is a functional option over Options.
type Option func(*Options)

// DefaultOptions returns Options with a background context and the
// satisfaction package's default axis-weighting strategy.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context checked for cancellation once per worklist
// iteration.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithKernelOptions forwards satisfaction.Option values (e.g.
// satisfaction.WithAxisWeightFunc) to every atomic-formula score
// computation.
func WithKernelOptions(opts ...satisfaction.Option) Option {
	return func(o *Options) {
		o.KernelOptions = append(o.KernelOptions, opts...)
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
