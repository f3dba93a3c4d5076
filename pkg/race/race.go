// Package race counts the button charge times that beat the boat race records.
package race

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/advent/pkg/domain"
)

// Day is the puzzle day this package solves.
const Day = 6

// Race is one race: its duration and the record distance to beat.
type Race struct {
	Time     uint64
	Distance uint64
}

// Wins reports whether holding the button for charge beats the record.
// Speed grows by one unit per unit of charge time.
func (r Race) Wins(charge uint64) bool {
	if charge > r.Time {
		return false
	}
	return charge*(r.Time-charge) > r.Distance
}

// LowestWinningCharge binary-searches [0, Time/2] for the first winning charge.
// The distance curve is symmetric around Time/2 and increasing before it.
func (r Race) LowestWinningCharge() (uint64, bool) {
	half := r.Time / 2
	if !r.Wins(half) {
		return 0, false
	}
	i := sort.Search(int(half)+1, func(i int) bool { return r.Wins(uint64(i)) })
	return uint64(i), true
}

// WinningCharges counts the charge times that beat the record.
func (r Race) WinningCharges() uint64 {
	low, ok := r.LowestWinningCharge()
	if !ok {
		return 0
	}
	return r.Time - 2*low + 1
}

// ParseRaces reads the two-line sheet as several races, one per column.
func ParseRaces(lines []string) ([]Race, error) {
	times, distances, err := split(lines)
	if err != nil {
		return nil, err
	}
	ts, err := numbers(times, 0)
	if err != nil {
		return nil, err
	}
	ds, err := numbers(distances, 1)
	if err != nil {
		return nil, err
	}
	if len(ts) != len(ds) {
		return nil, &domain.ParseError{Reason: fmt.Sprintf("%d times but %d distances", len(ts), len(ds))}
	}
	races := make([]Race, len(ts))
	for i := range ts {
		races[i] = Race{Time: ts[i], Distance: ds[i]}
	}
	return races, nil
}

// ParseKerned reads the sheet as a single race, ignoring the spaces between digits.
func ParseKerned(lines []string) (Race, error) {
	times, distances, err := split(lines)
	if err != nil {
		return Race{}, err
	}
	t, err := strconv.ParseUint(strings.Join(strings.Fields(times), ""), 10, 64)
	if err != nil {
		return Race{}, domain.NewParseError(0, lines[0], "time is not a number")
	}
	d, err := strconv.ParseUint(strings.Join(strings.Fields(distances), ""), 10, 64)
	if err != nil {
		return Race{}, domain.NewParseError(1, lines[1], "distance is not a number")
	}
	return Race{Time: t, Distance: d}, nil
}

// split returns the values part of the "Time:" and "Distance:" lines.
func split(lines []string) (string, string, error) {
	var rows []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			rows = append(rows, l)
		}
	}
	if len(rows) == 0 {
		return "", "", fmt.Errorf("race: %w", domain.ErrEmptyInput)
	}
	if len(rows) != 2 {
		return "", "", &domain.ParseError{Reason: fmt.Sprintf("expected 2 lines, got %d", len(rows))}
	}

	values := make([]string, 2)
	for i, label := range []string{"Time", "Distance"} {
		head, rest, ok := strings.Cut(rows[i], ":")
		if !ok || strings.TrimSpace(head) != label {
			return "", "", domain.NewParseError(i, rows[i], fmt.Sprintf("expected %q label", label+":"))
		}
		values[i] = rest
	}
	return values[0], values[1], nil
}

func numbers(s string, index int) ([]uint64, error) {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, domain.NewParseError(index, s, fmt.Sprintf("%q is not a number", f))
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, domain.NewParseError(index, s, "no values")
	}
	return out, nil
}

// Solve multiplies the winning counts of every race, then counts the kerned race.
func Solve(ctx context.Context, lines []string) (domain.Answer, error) {
	races, err := ParseRaces(lines)
	if err != nil {
		return domain.Answer{}, err
	}
	product := uint64(1)
	for _, r := range races {
		product *= r.WinningCharges()
	}

	kerned, err := ParseKerned(lines)
	if err != nil {
		return domain.Answer{}, err
	}

	return domain.Answer{Day: Day, PartOne: product, PartTwo: kerned.WinningCharges()}, ctx.Err()
}
