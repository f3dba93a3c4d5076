package cli

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/aretw0/advent/pkg/adapters/mcp"
)

// RunMCP handles the 'mcp' command.
func RunMCP(opts MCPOptions) error {
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

	eng, closer, err := createEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	srv := mcp.NewServer(eng, mcp.WithLogger(logger))

	switch opts.Transport {
	case "", "stdio":
		// Stdout carries JSON-RPC.
		log.SetOutput(os.Stderr)
		logger.Info("Starting advent MCP Server (Stdio)")
		return srv.ServeStdio()
	case "sse":
		logger.Info("Starting advent MCP Server (SSE)", "port", opts.Port)
		if err := srv.ServeSSE(ctx, opts.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("MCP Server stopped gracefully")
		return nil
	}
	return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", opts.Transport)
}
