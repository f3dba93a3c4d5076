package cubes

import (
	"context"
	"testing"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{
	"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
	"Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue",
	"Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red",
	"Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red",
	"Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green",
	"",
}

func TestParse(t *testing.T) {
	games, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, games, 5)

	assert.Equal(t, uint64(3), games[2].ID)
	assert.Equal(t, Cubes{Red: 20, Green: 8, Blue: 6}, games[2].Draws[0])
	assert.False(t, games[2].Possible(Bag))
	assert.Equal(t, Cubes{Red: 4, Green: 2, Blue: 6}, games[0].MinimumBag())
	assert.Equal(t, uint64(48), games[0].MinimumBag().Power())
}

func TestSolve(t *testing.T) {
	ans, err := Solve(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer{Day: 2, PartOne: 8, PartTwo: 2286}, ans)
}

func TestParse_Errors(t *testing.T) {
	for _, line := range []string{
		"Game 1 3 blue",
		"Round 1: 3 blue",
		"Game x: 3 blue",
		"Game 1: three blue",
		"Game 1: 3",
	} {
		_, err := Parse([]string{line})
		assert.ErrorIs(t, err, domain.ErrParse, line)
	}

	_, err := Parse([]string{"", ""})
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}
