package network_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/network"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ghosts is the two-walker sample: 11A hits a Z every 2 steps, 22A every 3.
var ghosts = []string{
	"LR",
	"",
	"11A = (11B, XXX)",
	"11B = (XXX, 11Z)",
	"11Z = (11B, XXX)",
	"22A = (22B, XXX)",
	"22B = (22C, 22C)",
	"22C = (22Z, 22Z)",
	"22Z = (22B, 22B)",
	"XXX = (XXX, XXX)",
}

func TestResolveWalkers_Summaries(t *testing.T) {
	n := mustParse(t, ghosts)

	got, err := n.ResolveWalkers(context.Background(),
		network.HasSuffix(network.GhostStartSuffix), network.HasSuffix(network.GhostTargetSuffix))
	require.NoError(t, err)

	want := []network.WalkerSummary{
		{Start: "11A", Factors: []uint64{2}, CycleStart: 1, CycleLength: 2, Steps: 3},
		{Start: "22A", Factors: []uint64{3, 6}, CycleStart: 1, CycleLength: 6, Steps: 7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolveWalkers() mismatch (-want +got):\n%s", diff)
	}
	for _, s := range got {
		assert.True(t, s.Periodic(), "walker %s should be periodic", s.Start)
	}
}

func TestGhostPathLength(t *testing.T) {
	n := mustParse(t, ghosts)

	for _, workers := range []int{1, 4} {
		steps, err := n.GhostPathLength(context.Background(), network.WithParallelism(workers))
		require.NoError(t, err)
		assert.Equal(t, uint64(6), steps, "lcm(2, 3) with %d workers", workers)
	}
}

func TestGhostPathLength_SingleWalker(t *testing.T) {
	steps, err := mustParse(t, scenarioTwo).GhostPathLength(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(6), steps)
}

func TestGhostPathLength_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("No Walkers", func(t *testing.T) {
		n := mustParse(t, []string{"L", "", "BBB = (BBB, BBB)"})
		_, err := n.GhostPathLength(ctx)
		assert.ErrorIs(t, err, domain.ErrNoWalkers)
	})

	t.Run("No Target Hit", func(t *testing.T) {
		n := mustParse(t, []string{"L", "", "AAA = (BBB, BBB)", "BBB = (AAA, AAA)"})
		_, err := n.GhostPathLength(ctx)
		assert.ErrorIs(t, err, domain.ErrNoTargetHit)
	})

	t.Run("Dangling Successor", func(t *testing.T) {
		n := mustParse(t, []string{"L", "", "AAA = (BBB, BBB)", "BBB = (CCC, CCC)"})
		_, err := n.GhostPathLength(ctx)
		assert.ErrorIs(t, err, domain.ErrLookup)
	})

	t.Run("Step Cap", func(t *testing.T) {
		_, err := mustParse(t, ghosts).GhostPathLength(ctx, network.WithMaxSteps(2))
		assert.ErrorIs(t, err, domain.ErrCycleNotFound)
	})
}

func TestGhostPathLength_AssumptionViolated(t *testing.T) {
	// 11A first stands on 11Z after one step, then every two steps.
	n := mustParse(t, []string{
		"L",
		"",
		"11A = (11Z, 11Z)",
		"11Z = (11B, 11B)",
		"11B = (11Z, 11Z)",
	})

	var mu sync.Mutex
	var violations []*domain.WalkerEvent
	hooks := domain.LifecycleHooks{
		OnAssumptionViolated: func(_ context.Context, e *domain.WalkerEvent) {
			mu.Lock()
			defer mu.Unlock()
			violations = append(violations, e)
		},
	}

	steps, err := n.GhostPathLength(context.Background(), network.WithLifecycleHooks(hooks))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), steps, "the first factor is still used")

	require.Len(t, violations, 1)
	assert.Equal(t, "11A", violations[0].Start)
	assert.Equal(t, uint64(2), violations[0].CycleLength)
}

func TestResolveWalkers_Hooks(t *testing.T) {
	var mu sync.Mutex
	counts := map[domain.EventType]int{}
	record := func(_ context.Context, e *domain.WalkerEvent) {
		mu.Lock()
		defer mu.Unlock()
		counts[e.Type]++
	}

	_, err := mustParse(t, ghosts).ResolveWalkers(context.Background(),
		network.HasSuffix("A"), network.HasSuffix("Z"),
		network.WithLifecycleHooks(domain.LifecycleHooks{
			OnWalkerStart:   record,
			OnTargetHit:     record,
			OnCycleDetected: record,
		}))
	require.NoError(t, err)

	assert.Equal(t, 2, counts[domain.EventWalkerStart])
	assert.Equal(t, 3, counts[domain.EventTargetHit])
	assert.Equal(t, 2, counts[domain.EventCycleDetected])
}
