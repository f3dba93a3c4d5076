package network

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/aretw0/advent/internal/logging"
	"github.com/aretw0/advent/pkg/domain"
)

// ctxCheckInterval is how many steps a walker takes between context checks.
const ctxCheckInterval = 4096

// Option configures a traversal via functional arguments.
type Option func(*Options)

// Options holds the tunables shared by PathLength and ResolveWalkers.
type Options struct {
	// MaxSteps caps a single walker. Zero derives the cap from the state space.
	MaxSteps uint64

	// Parallelism bounds how many walkers ResolveWalkers runs at once.
	Parallelism int

	// Hooks receive walker events. They may be called from several goroutines.
	Hooks domain.LifecycleHooks

	Logger *slog.Logger
}

// DefaultOptions returns derived step caps, one worker per CPU, no hooks and a nop logger.
func DefaultOptions() Options {
	return Options{
		Parallelism: runtime.GOMAXPROCS(0),
		Logger:      logging.NewNop(),
	}
}

// WithMaxSteps overrides the derived step cap. Zero keeps the derived cap.
func WithMaxSteps(n uint64) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithParallelism sets the number of concurrent walkers. Values below 1 are ignored.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Parallelism = n
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(h domain.LifecycleHooks) Option {
	return func(o *Options) {
		o.Hooks = o.Hooks.Merge(h)
	}
}

// WithLogger sets a structured logger for traversal diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// limit returns the step cap for n: |nodes| × len(instructions) + 1 unless overridden.
func (o Options) limit(n *Network) uint64 {
	if o.MaxSteps > 0 {
		return o.MaxSteps
	}
	return n.StateSpace() + 1
}

func emit(ctx context.Context, fn func(context.Context, *domain.WalkerEvent), ev *domain.WalkerEvent) {
	if fn != nil {
		fn(ctx, ev)
	}
}
