package cli

import (
	"fmt"

	"github.com/aretw0/advent/internal/validator"
	"github.com/aretw0/advent/pkg/network"
)

// RunValidate handles the 'validate' command. Unreachable nodes are reported
// but only dangling references fail validation.
func RunValidate(opts ValidateOptions) error {
	cfg, err := loadConfig(opts.Options)
	if err != nil {
		return err
	}

	n, path, err := loadNetwork(cfg, opts.Input)
	if err != nil {
		return err
	}

	report := validator.ValidateNetwork(n, network.StartNode)
	w := opts.out()
	fmt.Fprintf(w, "%s: %d nodes, %d instructions\n", path, len(n.Nodes), n.Instructions.Len())
	if len(report.Unreachable) > 0 {
		fmt.Fprintf(w, "%d nodes unreachable from %s: %v\n", len(report.Unreachable), network.StartNode, report.Unreachable)
	}
	return report.Err()
}
