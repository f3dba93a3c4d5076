// Package file provides filesystem adapters: an input loader for
// "<dir>/<day>.in" files and a JSON result store.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPattern names a day's input file inside the input directory.
const DefaultPattern = "%d.in"

// Loader implements ports.InputLoader over a directory of input files.
type Loader struct {
	Dir     string
	Pattern string
}

// NewLoader creates a loader reading "<dir>/<day>.in".
// If dir is empty, it defaults to "data".
func NewLoader(dir string) *Loader {
	if dir == "" {
		dir = "data"
	}
	return &Loader{Dir: dir, Pattern: DefaultPattern}
}

// Path returns the input file of day.
func (l *Loader) Path(day int) string {
	return filepath.Join(l.Dir, fmt.Sprintf(l.Pattern, day))
}

// Load reads and splits the input file of day.
func (l *Loader) Load(ctx context.Context, day int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadLines(l.Path(day))
}

// ReadLines reads path and splits it into lines.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text on newlines, dropping carriage returns and the empty
// element produced by a trailing newline.
func SplitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
