package cli

import (
	"fmt"
	"path/filepath"

	"github.com/aretw0/advent/internal/config"
	"github.com/aretw0/advent/pkg/adapters/file"
	"github.com/aretw0/advent/pkg/network"
)

// loadNetwork parses the day 8 network from input, or from the configured
// input directory when input is empty.
func loadNetwork(cfg config.Config, input string) (*network.Network, string, error) {
	path := input
	if path == "" {
		path = file.NewLoader(cfg.InputDir).Path(network.Day)
	}
	lines, err := file.ReadLines(path)
	if err != nil {
		return nil, path, err
	}
	n, err := network.Parse(lines)
	if err != nil {
		return nil, path, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return n, path, nil
}
