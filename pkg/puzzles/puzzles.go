// Package puzzles wires every implemented day into a registry.
package puzzles

import (
	"context"

	"github.com/aretw0/advent/pkg/cubes"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/network"
	"github.com/aretw0/advent/pkg/race"
	"github.com/aretw0/advent/pkg/registry"
	"github.com/aretw0/advent/pkg/scratchcard"
)

// Default returns a registry holding every implemented day.
// The network options apply to the day 8 solver only.
func Default(opts ...network.Option) *registry.Registry {
	reg := registry.NewRegistry()
	reg.Register(registry.Puzzle{Day: 2, Title: "Cube Conundrum", Solve: cubes.Solve})
	reg.Register(registry.Puzzle{Day: 4, Title: "Scratchcards", Solve: scratchcard.Solve})
	reg.Register(registry.Puzzle{Day: 6, Title: "Wait For It", Solve: race.Solve})
	reg.Register(registry.Puzzle{
		Day:   network.Day,
		Title: "Haunted Wasteland",
		Solve: func(ctx context.Context, lines []string) (domain.Answer, error) {
			return network.Solve(ctx, lines, opts...)
		},
	})
	return reg
}
