// Package registry keeps the set of puzzles the engine can solve, keyed by day.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/advent/pkg/domain"
)

// SolveFunc computes both parts of a puzzle from its input lines.
type SolveFunc func(ctx context.Context, lines []string) (domain.Answer, error)

// Puzzle describes one registered day.
type Puzzle struct {
	Day   int       `json:"day"`
	Title string    `json:"title"`
	Solve SolveFunc `json:"-"`
}

// Registry manages the available puzzles.
type Registry struct {
	mu      sync.RWMutex
	puzzles map[int]Puzzle
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		puzzles: make(map[int]Puzzle),
	}
}

// Register adds a puzzle to the registry.
// If a puzzle for the same day exists, it is overwritten.
func (r *Registry) Register(p Puzzle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.puzzles[p.Day] = p
}

// Lookup returns the puzzle registered for day.
func (r *Registry) Lookup(day int) (Puzzle, error) {
	r.mu.RLock()
	p, ok := r.puzzles[day]
	r.mu.RUnlock()

	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %d", domain.ErrDayNotFound, day)
	}
	return p, nil
}

// Execute looks up a puzzle by day and solves it.
func (r *Registry) Execute(ctx context.Context, day int, lines []string) (domain.Answer, error) {
	p, err := r.Lookup(day)
	if err != nil {
		return domain.Answer{}, err
	}
	return p.Solve(ctx, lines)
}

// Puzzles returns every registered puzzle ordered by day.
func (r *Registry) Puzzles() []Puzzle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	puzzles := r.Puzzles()
	days := make([]int, len(puzzles))
	for i, p := range puzzles {
		days[i] = p.Day
	}
	return days
}
