package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/advent/internal/adapters/http"
	"github.com/aretw0/advent/pkg/observability"
)

const shutdownTimeout = 5 * time.Second

// RunServe handles the 'serve' command: the HTTP API with Prometheus metrics.
// It blocks until the context is cancelled or a signal arrives.
func RunServe(opts ServeOptions) error {
	if opts.Port != "" {
		opts.Options = withOverride(opts.Options, "server.port", opts.Port)
	}
	cfg, err := loadConfig(opts.Options)
	if err != nil {
		return err
	}
	logger, err := createLogger(cfg)
	if err != nil {
		return err
	}

	ctx := NewSignalContext(opts.baseContext())
	defer ctx.Cancel()

	metrics := observability.NewMetrics()
	eng, closer, err := createEngine(ctx, cfg, logger, metrics.Hooks())
	if err != nil {
		return err
	}
	defer closer.Close()

	srv := &http.Server{
		Addr: ":" + cfg.Server.Port,
		Handler: httpAdapter.NewHandler(eng,
			httpAdapter.WithGatherer(metrics.Registry),
			httpAdapter.WithLogger(logger),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting advent server", "addr", srv.Addr, "input_dir", cfg.InputDir)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		if sig := ctx.Signal(); sig != nil {
			logger.Info("Start shutdown", "signal", sig.String())
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		logger.Info("advent server stopped gracefully")
		return nil
	}
}

// withOverride returns a copy of opts whose config gets key=value applied last.
func withOverride(opts Options, key string, value any) Options {
	extra := make(map[string]any, len(opts.Extra)+1)
	for k, v := range opts.Extra {
		extra[k] = v
	}
	extra[key] = value
	opts.Extra = extra
	return opts
}
