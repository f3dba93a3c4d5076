package cli

import (
	"fmt"

	"github.com/aretw0/advent/internal/presentation/graph"
)

// RunGraph handles the 'graph' command: prints the network as Mermaid.
func RunGraph(opts GraphOptions) error {
	cfg, err := loadConfig(opts.Options)
	if err != nil {
		return err
	}

	n, _, err := loadNetwork(cfg, opts.Input)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if opts.Walkers {
		overlay = graph.NewWalkerOverlay(n)
	}
	_, err = fmt.Fprint(opts.out(), graph.GenerateMermaid(n, overlay))
	return err
}
