// Package mcp exposes the puzzle engine as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/advent"
	"github.com/aretw0/advent/internal/logging"
	"github.com/aretw0/advent/pkg/adapters/file"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const daysURI = "advent://days"

// Engine defines what the MCP server needs from the solver.
type Engine interface {
	Solve(ctx context.Context, day int, lines []string) (domain.Answer, error)
	Puzzles() []registry.Puzzle
}

// Server wraps the Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger used for transport events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("advent-mcp", strings.TrimSpace(advent.Version)),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	solveTool := mcp.NewTool("solve",
		mcp.WithDescription("Solve both parts of an Advent of Code 2023 puzzle from its raw input."),
		mcp.WithString("day", mcp.Required(), mcp.Description("Puzzle day, e.g. \"8\"")),
		mcp.WithString("input", mcp.Required(), mcp.Description("Raw puzzle input text")),
		mcp.WithOutputSchema[domain.Answer](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))

	s.mcpServer.AddTool(mcp.NewTool("list_days",
		mcp.WithDescription("List the puzzle days this server can solve."),
	), s.handleListDays)
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Answer, error) {
	dayStr, _ := args["day"].(string)
	day, err := strconv.Atoi(strings.TrimSpace(dayStr))
	if err != nil {
		return domain.Answer{}, fmt.Errorf("invalid day %q", dayStr)
	}

	input, _ := args["input"].(string)
	if strings.TrimSpace(input) == "" {
		return domain.Answer{}, errors.New("input is required")
	}

	answer, err := s.engine.Solve(ctx, day, file.SplitLines(input))
	if err != nil {
		return domain.Answer{}, fmt.Errorf("solve failed: %w", err)
	}
	return answer, nil
}

func (s *Server) handleListDays(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(s.engine.Puzzles())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(daysURI, "Registered Puzzles",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Puzzles())
		if err != nil {
			return nil, fmt.Errorf("failed to list puzzles: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      daysURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
