package network

import (
	"context"
	"fmt"

	"github.com/aretw0/advent/pkg/domain"
)

// PathLength counts the steps a walker needs from start until isTarget holds.
// A start that already satisfies isTarget yields 0.
func (n *Network) PathLength(ctx context.Context, start NodeID, isTarget func(NodeID) bool, opts ...Option) (uint64, error) {
	o := buildOptions(opts)
	limit := o.limit(n)

	w, err := n.Start(start)
	if err != nil {
		return 0, fmt.Errorf("start %s: %w", start, err)
	}
	emit(ctx, o.Hooks.OnWalkerStart, domain.NewWalkerEvent(domain.EventWalkerStart, string(start), string(w.Current), w.Phase, w.Steps))

	for !isTarget(w.Current) {
		if w.Steps >= limit {
			return 0, fmt.Errorf("%w: no target reached from %s within %d steps", domain.ErrUnreachableTarget, start, limit)
		}
		if w.Steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if w, err = n.Follow(w); err != nil {
			return 0, fmt.Errorf("walk from %s: %w", start, err)
		}
	}

	emit(ctx, o.Hooks.OnTargetHit, domain.NewWalkerEvent(domain.EventTargetHit, string(start), string(w.Current), w.Phase, w.Steps))
	o.Logger.Debug("target reached", "start", start, "target", w.Current, "steps", w.Steps)
	return w.Steps, nil
}

// PartOne walks from AAA to ZZZ.
func (n *Network) PartOne(ctx context.Context, opts ...Option) (uint64, error) {
	return n.PathLength(ctx, StartNode, Is(EndNode), opts...)
}
