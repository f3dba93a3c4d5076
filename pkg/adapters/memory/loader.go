package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/advent/pkg/adapters/file"
	"github.com/aretw0/advent/pkg/domain"
)

// Loader implements ports.InputLoader using an in-memory map of raw inputs.
type Loader struct {
	inputs map[int][]string
}

// NewLoader creates a loader from raw puzzle texts keyed by day.
func NewLoader(data map[int]string) *Loader {
	inputs := make(map[int][]string, len(data))
	for day, text := range data {
		inputs[day] = file.SplitLines(text)
	}
	return &Loader{inputs: inputs}
}

// Load returns a copy of the lines registered for day.
func (l *Loader) Load(ctx context.Context, day int) ([]string, error) {
	lines, ok := l.inputs[day]
	if !ok {
		return nil, fmt.Errorf("%w: no input for day %d", domain.ErrDayNotFound, day)
	}
	return append([]string(nil), lines...), nil
}

// Days returns the days that have an input, in ascending order.
func (l *Loader) Days() []int {
	days := make([]int, 0, len(l.inputs))
	for d := range l.inputs {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
