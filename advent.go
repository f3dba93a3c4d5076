package advent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/advent/internal/logging"
	"github.com/aretw0/advent/pkg/cache"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/network"
	"github.com/aretw0/advent/pkg/ports"
	"github.com/aretw0/advent/pkg/puzzles"
	"github.com/aretw0/advent/pkg/registry"
)

// ErrNoLoader is returned by SolveDay when the engine has no input loader.
var ErrNoLoader = errors.New("no input loader configured")

// Engine is the high-level entry point of the library.
// It finds the puzzle of a day, feeds it input and optionally caches answers.
type Engine struct {
	registry    *registry.Registry
	loader      ports.InputLoader
	store       ports.ResultStore
	locker      ports.DistributedLocker
	cache       *cache.Manager
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	maxSteps    uint64
	parallelism int
	extra       []registry.Puzzle
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks. Repeated calls accumulate.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLoader sets where SolveDay reads puzzle input from.
func WithLoader(l ports.InputLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithStore enables answer caching.
func WithStore(s ports.ResultStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithLocker coordinates solves across processes sharing the store.
// It has no effect without WithStore.
func WithLocker(l ports.DistributedLocker) Option {
	return func(e *Engine) {
		e.locker = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegistry replaces the default puzzle set. Network options given to
// the engine do not apply to a custom registry.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithPuzzles registers additional puzzles on top of the engine registry,
// replacing any puzzle already registered for the same day.
func WithPuzzles(puzzles ...registry.Puzzle) Option {
	return func(e *Engine) {
		e.extra = append(e.extra, puzzles...)
	}
}

// WithMaxSteps caps every day 8 walker. Zero keeps the derived cap.
func WithMaxSteps(n uint64) Option {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

// WithParallelism bounds concurrent day 8 walkers.
func WithParallelism(n int) Option {
	return func(e *Engine) {
		e.parallelism = n
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	if eng.store != nil {
		cacheOpts := []cache.Option{cache.WithLogger(eng.logger)}
		if eng.locker != nil {
			cacheOpts = append(cacheOpts, cache.WithLocker(eng.locker))
		}
		eng.cache = cache.NewManager(eng.store, cacheOpts...)
	}

	if eng.registry == nil {
		eng.registry = puzzles.Default(
			network.WithLogger(eng.logger),
			network.WithLifecycleHooks(eng.hooks),
			network.WithMaxSteps(eng.maxSteps),
			network.WithParallelism(eng.parallelism),
		)
	}
	for _, p := range eng.extra {
		eng.registry.Register(p)
	}
	return eng
}

// Puzzles lists the registered puzzles ordered by day.
func (e *Engine) Puzzles() []registry.Puzzle {
	return e.registry.Puzzles()
}

// Solve computes the answer of day from lines, consulting the store first.
func (e *Engine) Solve(ctx context.Context, day int, lines []string) (domain.Answer, error) {
	if _, err := e.registry.Lookup(day); err != nil {
		return domain.Answer{}, err
	}
	if len(lines) == 0 {
		return domain.Answer{}, fmt.Errorf("day %d: %w", day, domain.ErrEmptyInput)
	}

	solve := func(ctx context.Context) (domain.Answer, error) {
		started := time.Now()
		answer, err := e.registry.Execute(ctx, day, lines)
		if err != nil {
			return domain.Answer{}, fmt.Errorf("day %d: %w", day, err)
		}
		answer.Day = day
		e.logger.Debug("puzzle solved", "day", day, "duration", time.Since(started))
		return answer, nil
	}

	started := time.Now()
	if e.cache == nil {
		answer, err := solve(ctx)
		if err != nil {
			return domain.Answer{}, err
		}
		e.emitSolved(ctx, day, false, time.Since(started))
		return answer, nil
	}

	answer, hit, err := e.cache.GetOrCompute(ctx, ports.ResultKey(day, lines), solve)
	if err != nil {
		return domain.Answer{}, err
	}
	if hit {
		e.logger.Debug("answer served from store", "day", day)
	}
	e.emitSolved(ctx, day, hit, time.Since(started))
	return answer, nil
}

// SolveDay loads the input of day through the configured loader and solves it.
func (e *Engine) SolveDay(ctx context.Context, day int) (domain.Answer, error) {
	if e.loader == nil {
		return domain.Answer{}, ErrNoLoader
	}
	if _, err := e.registry.Lookup(day); err != nil {
		return domain.Answer{}, err
	}

	lines, err := e.loader.Load(ctx, day)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("load day %d: %w", day, err)
	}
	return e.Solve(ctx, day, lines)
}

// SolveAll solves every registered day whose input is available.
// Days without input are skipped; any other failure stops the run.
func (e *Engine) SolveAll(ctx context.Context) ([]domain.Answer, error) {
	var answers []domain.Answer
	for _, p := range e.registry.Puzzles() {
		answer, err := e.SolveDay(ctx, p.Day)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) || errors.Is(err, domain.ErrDayNotFound) {
				e.logger.Info("skipping day without input", "day", p.Day)
				continue
			}
			return answers, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

func (e *Engine) emitSolved(ctx context.Context, day int, cached bool, d time.Duration) {
	if e.hooks.OnPuzzleSolved == nil {
		return
	}
	e.hooks.OnPuzzleSolved(ctx, &domain.SolveEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventPuzzleSolved},
		Day:       day,
		Cached:    cached,
		Duration:  d,
	})
}
