package advent_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aretw0/advent"
	"github.com/aretw0/advent/pkg/adapters/memory"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/ports"
	"github.com/aretw0/advent/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenarioTwo = []string{
	"LLR",
	"",
	"AAA = (BBB, BBB)",
	"BBB = (AAA, ZZZ)",
	"ZZZ = (ZZZ, ZZZ)",
}

type solvedRecorder struct {
	mu     sync.Mutex
	events []domain.SolveEvent
}

func (r *solvedRecorder) hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPuzzleSolved: func(_ context.Context, e *domain.SolveEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.events = append(r.events, *e)
		},
	}
}

func TestEngine_Solve(t *testing.T) {
	eng := advent.New()

	answer, err := eng.Solve(context.Background(), 8, scenarioTwo)
	require.NoError(t, err)
	assert.Equal(t, domain.Answer{Day: 8, PartOne: 6, PartTwo: 6}, answer)
}

func TestEngine_Errors(t *testing.T) {
	eng := advent.New()
	ctx := context.Background()

	_, err := eng.Solve(ctx, 25, scenarioTwo)
	assert.ErrorIs(t, err, domain.ErrDayNotFound)

	_, err = eng.Solve(ctx, 8, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	_, err = eng.Solve(ctx, 8, []string{"LX", "", "AAA = (AAA, AAA)"})
	assert.ErrorIs(t, err, domain.ErrParse)

	_, err = eng.SolveDay(ctx, 8)
	assert.ErrorIs(t, err, advent.ErrNoLoader)
}

func TestEngine_CachesAnswers(t *testing.T) {
	store := memory.NewStore()
	rec := &solvedRecorder{}
	eng := advent.New(advent.WithStore(store), advent.WithLifecycleHooks(rec.hooks()))
	ctx := context.Background()

	first, err := eng.Solve(ctx, 8, scenarioTwo)
	require.NoError(t, err)
	second, err := eng.Solve(ctx, 8, scenarioTwo)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	cached, err := store.Load(ctx, ports.ResultKey(8, scenarioTwo))
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	require.Len(t, rec.events, 2)
	assert.False(t, rec.events[0].Cached)
	assert.True(t, rec.events[1].Cached)
	assert.Equal(t, domain.EventPuzzleSolved, rec.events[1].Type)
}

func TestEngine_MaxSteps(t *testing.T) {
	eng := advent.New(advent.WithMaxSteps(3))

	_, err := eng.Solve(context.Background(), 8, scenarioTwo)
	assert.ErrorIs(t, err, domain.ErrUnreachableTarget)
}

func TestEngine_SolveAll(t *testing.T) {
	loader := memory.NewLoader(map[int]string{
		6: "Time:      7  15   30\nDistance:  9  40  200\n",
		8: "LLR\n\nAAA = (BBB, BBB)\nBBB = (AAA, ZZZ)\nZZZ = (ZZZ, ZZZ)\n",
	})
	eng := advent.New(advent.WithLoader(loader))

	answers, err := eng.SolveAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Answer{
		{Day: 6, PartOne: 288, PartTwo: 71503},
		{Day: 8, PartOne: 6, PartTwo: 6},
	}, answers)
}

func TestEngine_CustomRegistry(t *testing.T) {
	boom := errors.New("boom")
	reg := registry.NewRegistry()
	reg.Register(registry.Puzzle{Day: 1, Title: "failing", Solve: func(ctx context.Context, lines []string) (domain.Answer, error) {
		return domain.Answer{}, boom
	}})

	eng := advent.New(advent.WithRegistry(reg))
	require.Len(t, eng.Puzzles(), 1)

	_, err := eng.Solve(context.Background(), 1, []string{"x"})
	assert.ErrorIs(t, err, boom)
}

func TestEngine_WithPuzzles(t *testing.T) {
	extra := registry.Puzzle{Day: 1, Title: "Trebuchet?!", Solve: func(ctx context.Context, lines []string) (domain.Answer, error) {
		return domain.Answer{PartOne: uint64(len(lines))}, nil
	}}

	eng := advent.New(advent.WithPuzzles(extra))
	days := make([]int, 0)
	for _, p := range eng.Puzzles() {
		days = append(days, p.Day)
	}
	assert.Equal(t, []int{1, 2, 4, 6, 8}, days)

	answer, err := eng.Solve(context.Background(), 1, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), answer.PartOne)
	assert.Equal(t, 1, answer.Day)
}

func TestEngine_ConcurrentSolvesShareCache(t *testing.T) {
	store := memory.NewStore()
	rec := &solvedRecorder{}
	eng := advent.New(advent.WithStore(store), advent.WithLifecycleHooks(rec.hooks()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			answer, err := eng.Solve(context.Background(), 8, scenarioTwo)
			assert.NoError(t, err)
			assert.Equal(t, uint64(6), answer.PartOne)
		}()
	}
	wg.Wait()

	fresh := 0
	for _, e := range rec.events {
		if !e.Cached {
			fresh++
		}
	}
	assert.Equal(t, 1, fresh, "only one goroutine computes the answer")
	assert.Len(t, rec.events, 8)
}
