package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/aretw0/advent"
	"github.com/aretw0/advent/internal/logging"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_Logger(t *testing.T) {
	assert.NotNil(t, NewServer(advent.New()).logger)

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelInfo, false)
	s := NewServer(advent.New(), WithLogger(logger))
	assert.Same(t, logger, s.logger)
}

func TestHandleSolve(t *testing.T) {
	s := NewServer(advent.New())
	ctx := context.Background()

	answer, err := s.handleSolve(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"day":   "8",
		"input": "LLR\n\nAAA = (BBB, BBB)\nBBB = (AAA, ZZZ)\nZZZ = (ZZZ, ZZZ)\n",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Answer{Day: 8, PartOne: 6, PartTwo: 6}, answer)
}

func TestHandleSolve_Errors(t *testing.T) {
	s := NewServer(advent.New())
	ctx := context.Background()

	_, err := s.handleSolve(ctx, mcp.CallToolRequest{}, map[string]interface{}{"day": "eight", "input": "LR"})
	assert.ErrorContains(t, err, "invalid day")

	_, err = s.handleSolve(ctx, mcp.CallToolRequest{}, map[string]interface{}{"day": "8"})
	assert.ErrorContains(t, err, "input is required")

	_, err = s.handleSolve(ctx, mcp.CallToolRequest{}, map[string]interface{}{"day": "25", "input": "x"})
	assert.ErrorIs(t, err, domain.ErrDayNotFound)
}

func TestHandleListDays(t *testing.T) {
	s := NewServer(advent.New())

	result, err := s.handleListDays(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var puzzles []registry.Puzzle
	require.NoError(t, json.Unmarshal([]byte(text.Text), &puzzles))
	assert.Len(t, puzzles, 4)
	assert.Equal(t, "Haunted Wasteland", puzzles[3].Title)
}
