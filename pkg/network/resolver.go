package network

import (
	"context"
	"fmt"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/maths"
	"golang.org/x/sync/errgroup"
)

// WalkerSummary describes one walker's run up to its first repeated state.
type WalkerSummary struct {
	Start NodeID `json:"start"`

	// Factors are the step counts at which a target node was visited,
	// including the step that closed the cycle.
	Factors []uint64 `json:"factors"`

	// CycleStart is the step at which the repeated state was first seen.
	CycleStart uint64 `json:"cycle_start"`

	// CycleLength is the period of the walker once it is inside its cycle.
	CycleLength uint64 `json:"cycle_length"`

	// Steps is the step count at which the repetition was detected.
	Steps uint64 `json:"steps"`
}

// Periodic reports whether the walker visits a target exactly on the multiples
// of its first factor, forever. Only then is the first factor a valid LCM input.
func (s WalkerSummary) Periodic() bool {
	if len(s.Factors) == 0 || s.CycleLength == 0 {
		return false
	}
	f := s.Factors[0]
	if f < s.CycleStart || s.CycleLength%f != 0 {
		return false
	}
	if uint64(len(s.Factors)) != s.Steps/f {
		return false
	}
	for i, v := range s.Factors {
		if v != f*uint64(i+1) {
			return false
		}
	}
	return true
}

type state struct {
	node  NodeID
	phase int
}

// ResolveWalkers runs one walker per node matching isStart until its
// (node, phase) state repeats. Walkers are independent and run concurrently;
// the first failure cancels the others. Summaries are sorted by start node.
func (n *Network) ResolveWalkers(ctx context.Context, isStart, isTarget func(NodeID) bool, opts ...Option) ([]WalkerSummary, error) {
	o := buildOptions(opts)

	starts := n.Nodes.Select(isStart)
	if len(starts) == 0 {
		return nil, domain.ErrNoWalkers
	}

	summaries := make([]WalkerSummary, len(starts))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.Parallelism)
	for i, start := range starts {
		g.Go(func() error {
			s, err := n.walk(gCtx, start, isTarget, o)
			if err != nil {
				return err
			}
			summaries[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (n *Network) walk(ctx context.Context, start NodeID, isTarget func(NodeID) bool, o Options) (WalkerSummary, error) {
	limit := o.limit(n)

	w, err := n.Start(start)
	if err != nil {
		return WalkerSummary{}, fmt.Errorf("start %s: %w", start, err)
	}
	emit(ctx, o.Hooks.OnWalkerStart, domain.NewWalkerEvent(domain.EventWalkerStart, string(start), string(w.Current), w.Phase, w.Steps))

	summary := WalkerSummary{Start: start}
	seen := map[state]uint64{{node: w.Current, phase: w.Phase}: 0}

	for {
		if w.Steps >= limit {
			return WalkerSummary{}, fmt.Errorf("%w: walker %s took %d steps without repeating", domain.ErrCycleNotFound, start, limit)
		}
		if w.Steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return WalkerSummary{}, err
			}
		}
		if w, err = n.Follow(w); err != nil {
			return WalkerSummary{}, fmt.Errorf("walker %s: %w", start, err)
		}

		if isTarget(w.Current) {
			summary.Factors = append(summary.Factors, w.Steps)
			emit(ctx, o.Hooks.OnTargetHit, domain.NewWalkerEvent(domain.EventTargetHit, string(start), string(w.Current), w.Phase, w.Steps))
		}

		here := state{node: w.Current, phase: w.Phase}
		if first, ok := seen[here]; ok {
			summary.CycleStart = first
			summary.CycleLength = w.Steps - first
			summary.Steps = w.Steps

			ev := domain.NewWalkerEvent(domain.EventCycleDetected, string(start), string(w.Current), w.Phase, w.Steps)
			ev.CycleLength = summary.CycleLength
			ev.Factors = summary.Factors
			emit(ctx, o.Hooks.OnCycleDetected, ev)
			o.Logger.Debug("cycle detected", "start", start, "node", w.Current, "phase", w.Phase,
				"cycle_start", first, "cycle_length", summary.CycleLength, "factors", len(summary.Factors))
			return summary, nil
		}
		seen[here] = w.Steps
	}
}

// GhostPathLength resolves every walker starting on an A-suffix node and
// returns the step count at which all of them stand on Z-suffix nodes.
//
// Only the first factor of each walker is combined. Walkers for which that
// shortcut does not hold are reported through OnAssumptionViolated and logged,
// the first-factor answer is still returned.
func (n *Network) GhostPathLength(ctx context.Context, opts ...Option) (uint64, error) {
	o := buildOptions(opts)

	summaries, err := n.ResolveWalkers(ctx, HasSuffix(GhostStartSuffix), HasSuffix(GhostTargetSuffix), opts...)
	if err != nil {
		return 0, err
	}

	factors := make([]uint64, 0, len(summaries))
	for _, s := range summaries {
		if len(s.Factors) == 0 {
			return 0, fmt.Errorf("%w: %s (cycle of %d steps)", domain.ErrNoTargetHit, s.Start, s.CycleLength)
		}
		if !s.Periodic() {
			ev := domain.NewWalkerEvent(domain.EventAssumptionViolated, string(s.Start), "", 0, s.Steps)
			ev.CycleLength = s.CycleLength
			ev.Factors = s.Factors
			emit(ctx, o.Hooks.OnAssumptionViolated, ev)
			o.Logger.Warn("walker is not periodic on its first factor, combined answer may be wrong",
				"start", s.Start, "factors", s.Factors, "cycle_start", s.CycleStart, "cycle_length", s.CycleLength)
		}
		factors = append(factors, s.Factors[0])
	}

	total, err := maths.LCMOf(factors)
	if err != nil {
		return 0, fmt.Errorf("combine walker factors: %w", err)
	}
	return total, nil
}
