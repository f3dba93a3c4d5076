package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/advent/internal/config"
	"github.com/aretw0/advent/internal/logging"
	"github.com/aretw0/advent/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// loadConfig resolves the config file and flag overrides.
func loadConfig(opts Options) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path, opts.overrides())
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// createLogger configures the application logger.
// It always writes to Stderr so answers on Stdout can be piped.
func createLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnWalkerStart: func(ctx context.Context, e *domain.WalkerEvent) {
			logger.Debug("Walker Start", "start", e.Start)
		},
		OnTargetHit: func(ctx context.Context, e *domain.WalkerEvent) {
			logger.Debug("Target Hit", "start", e.Start, "node_id", e.NodeID, "steps", e.Steps)
		},
		OnCycleDetected: func(ctx context.Context, e *domain.WalkerEvent) {
			logger.Debug("Cycle Detected", "start", e.Start, "node_id", e.NodeID, "phase", e.Phase,
				"cycle_length", e.CycleLength, "factors", e.Factors)
		},
		OnPuzzleSolved: func(ctx context.Context, e *domain.SolveEvent) {
			logger.Debug("Puzzle Solved", "day", e.Day, "cached", e.Cached, "duration", e.Duration)
		},
	}
}

// printSystemMessage prints a standardized system message to stderr.
func printSystemMessage(format string, args ...any) {
	fmt.Fprintf(os.Stderr, ">>> %s\n", fmt.Sprintf(format, args...))
}
