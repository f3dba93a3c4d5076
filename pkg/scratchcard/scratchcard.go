// Package scratchcard scores the elf's scratchcards and counts the copies won
// by cascading wins.
package scratchcard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/advent/pkg/domain"
)

// Day is the puzzle day this package solves.
const Day = 4

// Card is a single scratchcard.
type Card struct {
	ID      int
	Winning []int
	Actual  []int
}

// Wins counts the actual numbers that appear among the winning numbers.
func (c Card) Wins() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}
	wins := 0
	for _, n := range c.Actual {
		if _, ok := winning[n]; ok {
			wins++
		}
	}
	return wins
}

// Score is 1 for the first win, doubled for every further win.
func (c Card) Score() uint64 {
	w := c.Wins()
	if w == 0 {
		return 0
	}
	return 1 << (w - 1)
}

// Parse reads cards such as "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func Parse(lines []string) ([]Card, error) {
	var cards []Card
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := parseCard(line)
		if err != nil {
			return nil, domain.NewParseError(i, line, err.Error())
		}
		cards = append(cards, c)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("scratchcard: %w", domain.ErrEmptyInput)
	}
	return cards, nil
}

func parseCard(line string) (Card, error) {
	head, numbers, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, errors.New(`missing ":" separator`)
	}
	label, id, ok := strings.Cut(strings.TrimSpace(head), " ")
	if !ok || label != "Card" {
		return Card{}, fmt.Errorf("expected \"Card <id>\", got %q", head)
	}
	cardID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return Card{}, fmt.Errorf("card id %q is not a number", id)
	}

	lhs, rhs, ok := strings.Cut(numbers, "|")
	if !ok {
		return Card{}, errors.New(`missing "|" between winning and actual numbers`)
	}
	winning, err := parseNumbers(lhs)
	if err != nil {
		return Card{}, err
	}
	actual, err := parseNumbers(rhs)
	if err != nil {
		return Card{}, err
	}
	return Card{ID: cardID, Winning: winning, Actual: actual}, nil
}

func parseNumbers(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", f)
		}
		out = append(out, n)
	}
	return out, nil
}

// Copies returns how many instances of each card end up being held once
// every win has been cashed. Wins reaching past the last card are dropped.
func Copies(cards []Card) []uint64 {
	held := make([]uint64, len(cards))
	for i := range held {
		held[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.Wins() && j < len(cards); j++ {
			held[j] += held[i]
		}
	}
	return held
}

// Solve returns the total score and the total number of cards held.
func Solve(ctx context.Context, lines []string) (domain.Answer, error) {
	cards, err := Parse(lines)
	if err != nil {
		return domain.Answer{}, err
	}

	ans := domain.Answer{Day: Day}
	for _, c := range cards {
		ans.PartOne += c.Score()
	}
	for _, n := range Copies(cards) {
		ans.PartTwo += n
	}
	return ans, ctx.Err()
}
