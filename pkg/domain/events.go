package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventWalkerStart        EventType = "walker_start"
	EventTargetHit          EventType = "target_hit"
	EventCycleDetected      EventType = "cycle_detected"
	EventAssumptionViolated EventType = "assumption_violated"
	EventPuzzleSolved       EventType = "puzzle_solved"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// WalkerEvent describes a noteworthy moment in the life of a walker.
// CycleLength and Factors are only set for cycle and assumption events.
type WalkerEvent struct {
	EventBase
	Start       string   `json:"start"`
	NodeID      string   `json:"node_id"`
	Phase       int      `json:"phase"`
	Steps       uint64   `json:"steps"`
	CycleLength uint64   `json:"cycle_length,omitempty"`
	Factors     []uint64 `json:"factors,omitempty"`
}

// SolveEvent is emitted once a day has been solved.
type SolveEvent struct {
	EventBase
	Day      int           `json:"day"`
	Cached   bool          `json:"cached"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for traversal observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnWalkerStart        func(context.Context, *WalkerEvent)
	OnTargetHit          func(context.Context, *WalkerEvent)
	OnCycleDetected      func(context.Context, *WalkerEvent)
	OnAssumptionViolated func(context.Context, *WalkerEvent)
	OnPuzzleSolved       func(context.Context, *SolveEvent)
}

// NewWalkerEvent stamps a walker event with the current time.
func NewWalkerEvent(t EventType, start, nodeID string, phase int, steps uint64) *WalkerEvent {
	return &WalkerEvent{
		EventBase: EventBase{Timestamp: time.Now(), Type: t},
		Start:     start,
		NodeID:    nodeID,
		Phase:     phase,
		Steps:     steps,
	}
}

// Merge returns hooks that invoke h first and then other for every event.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnWalkerStart:        chain(h.OnWalkerStart, other.OnWalkerStart),
		OnTargetHit:          chain(h.OnTargetHit, other.OnTargetHit),
		OnCycleDetected:      chain(h.OnCycleDetected, other.OnCycleDetected),
		OnAssumptionViolated: chain(h.OnAssumptionViolated, other.OnAssumptionViolated),
		OnPuzzleSolved:       chain(h.OnPuzzleSolved, other.OnPuzzleSolved),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
