package network

import (
	"context"
	"fmt"

	"github.com/aretw0/advent/pkg/domain"
)

// Day is the puzzle day this package solves.
const Day = 8

// Solve parses the network and computes both parts.
func Solve(ctx context.Context, lines []string, opts ...Option) (domain.Answer, error) {
	n, err := Parse(lines)
	if err != nil {
		return domain.Answer{}, err
	}

	partOne, err := n.PartOne(ctx, opts...)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("part one: %w", err)
	}

	partTwo, err := n.GhostPathLength(ctx, opts...)
	if err != nil {
		return domain.Answer{}, fmt.Errorf("part two: %w", err)
	}

	return domain.Answer{Day: Day, PartOne: partOne, PartTwo: partTwo}, nil
}
