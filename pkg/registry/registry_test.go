package registry_test

import (
	"context"
	"testing"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(day int, one, two uint64) registry.SolveFunc {
	return func(ctx context.Context, lines []string) (domain.Answer, error) {
		return domain.Answer{Day: day, PartOne: one, PartTwo: two}, nil
	}
}

func TestRegistry(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register(registry.Puzzle{Day: 8, Title: "eight", Solve: constant(8, 1, 2)})
	reg.Register(registry.Puzzle{Day: 2, Title: "two", Solve: constant(2, 3, 4)})

	assert.Equal(t, []int{2, 8}, reg.Days())

	p, err := reg.Lookup(8)
	require.NoError(t, err)
	assert.Equal(t, "eight", p.Title)

	answer, err := reg.Execute(context.Background(), 2, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer{Day: 2, PartOne: 3, PartTwo: 4}, answer)

	_, err = reg.Execute(context.Background(), 5, nil)
	assert.ErrorIs(t, err, domain.ErrDayNotFound)
}

func TestRegistry_Overwrite(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register(registry.Puzzle{Day: 8, Title: "old", Solve: constant(8, 1, 1)})
	reg.Register(registry.Puzzle{Day: 8, Title: "new", Solve: constant(8, 2, 2)})

	puzzles := reg.Puzzles()
	require.Len(t, puzzles, 1)
	assert.Equal(t, "new", puzzles[0].Title)
}
