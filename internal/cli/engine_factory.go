package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/advent"
	"github.com/aretw0/advent/internal/config"
	"github.com/aretw0/advent/pkg/adapters/file"
	"github.com/aretw0/advent/pkg/adapters/process"
	"github.com/aretw0/advent/pkg/adapters/redis"
	"github.com/aretw0/advent/pkg/domain"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// createEngine initializes an engine with standard CLI conventions: inputs
// from the configured directory, external solvers from solvers_file, a Redis
// cache when redis.addr is set and debug hooks when logging at debug level.
func createEngine(ctx context.Context, cfg config.Config, logger *slog.Logger, hooks ...domain.LifecycleHooks) (*advent.Engine, io.Closer, error) {
	engineOpts := []advent.Option{
		advent.WithLogger(logger),
		advent.WithLoader(file.NewLoader(cfg.InputDir)),
		advent.WithMaxSteps(cfg.MaxSteps),
		advent.WithParallelism(cfg.Parallelism),
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		engineOpts = append(engineOpts, advent.WithLifecycleHooks(createDebugHooks(logger)))
	}
	for _, h := range hooks {
		engineOpts = append(engineOpts, advent.WithLifecycleHooks(h))
	}

	if cfg.SolversFile != "" {
		solvers, err := process.LoadSolvers(cfg.SolversFile)
		if err != nil {
			return nil, nil, err
		}
		if len(solvers) > 0 {
			runner := process.NewRunner(
				process.WithRegistry(solvers),
				process.WithBaseDir(filepath.Dir(cfg.SolversFile)),
			)
			logger.Debug("external solvers loaded", "path", cfg.SolversFile, "count", len(solvers))
			engineOpts = append(engineOpts, advent.WithPuzzles(runner.Puzzles()...))
		}
	}

	var closer io.Closer = nopCloser{}
	if cfg.Redis.Addr != "" {
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
		)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		logger.Debug("result cache enabled", "addr", cfg.Redis.Addr)
		engineOpts = append(engineOpts, advent.WithStore(store), advent.WithLocker(store.Locker()))
		closer = store
	}

	return advent.New(engineOpts...), closer, nil
}
