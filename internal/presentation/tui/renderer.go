package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// ReportMarkdown builds a markdown table of answers.
// titles maps a day to its puzzle name and may be nil.
func ReportMarkdown(answers []domain.Answer, titles map[int]string) string {
	var sb strings.Builder
	sb.WriteString("# Advent of Code 2023\n\n")
	sb.WriteString("| Day | Puzzle | Part one | Part two |\n")
	sb.WriteString("|----:|--------|---------:|---------:|\n")
	for _, a := range answers {
		sb.WriteString(fmt.Sprintf("| %d | %s | %d | %d |\n", a.Day, titles[a.Day], a.PartOne, a.PartTwo))
	}
	return sb.String()
}

// RenderReport renders the answers table for the terminal.
func RenderReport(answers []domain.Answer, titles map[int]string) (string, error) {
	render, err := NewRenderer()
	if err != nil {
		return "", err
	}
	return render(ReportMarkdown(answers, titles))
}
