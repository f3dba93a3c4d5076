// Package cubes solves the cube conundrum: which games could have been played
// with a bag of 12 red, 13 green and 14 blue cubes.
package cubes

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/advent/pkg/domain"
)

// Day is the puzzle day this package solves.
const Day = 2

// Bag is the cube count the elf claims to hold.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Cubes is one handful of cubes, or a bag content.
type Cubes struct {
	Red   uint64
	Green uint64
	Blue  uint64
}

// Fits reports whether c can be drawn from bag.
func (c Cubes) Fits(bag Cubes) bool {
	return c.Red <= bag.Red && c.Green <= bag.Green && c.Blue <= bag.Blue
}

// Power multiplies the three colour counts.
func (c Cubes) Power() uint64 {
	return c.Red * c.Green * c.Blue
}

// Game is one line of the record: an id and the handfuls revealed.
type Game struct {
	ID    uint64
	Draws []Cubes
}

// Possible reports whether every draw of g fits in bag.
func (g Game) Possible(bag Cubes) bool {
	for _, d := range g.Draws {
		if !d.Fits(bag) {
			return false
		}
	}
	return true
}

// MinimumBag is the smallest bag that makes g possible.
func (g Game) MinimumBag() Cubes {
	var m Cubes
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// Parse reads one game per non-empty line, e.g.
// "Game 1: 7 red, 8 blue; 6 blue, 6 red, 2 green".
func Parse(lines []string) ([]Game, error) {
	var games []Game
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, err := parseGame(line)
		if err != nil {
			return nil, domain.NewParseError(i, line, err.Error())
		}
		games = append(games, g)
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("cubes: %w", domain.ErrEmptyInput)
	}
	return games, nil
}

func parseGame(line string) (Game, error) {
	head, plays, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, errors.New(`missing ": " separator`)
	}
	label, id, ok := strings.Cut(strings.TrimSpace(head), " ")
	if !ok || label != "Game" {
		return Game{}, fmt.Errorf("expected \"Game <id>\", got %q", head)
	}
	gameID, err := strconv.ParseUint(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return Game{}, fmt.Errorf("game id %q is not a number", id)
	}

	g := Game{ID: gameID}
	for _, play := range strings.Split(plays, "; ") {
		d, err := parseDraw(play)
		if err != nil {
			return Game{}, err
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

// parseDraw reads "7 red, 8 blue, 9 green" in any order, each colour optional.
// Unknown colours are ignored.
func parseDraw(s string) (Cubes, error) {
	var c Cubes
	for _, info := range strings.Split(s, ", ") {
		count, colour, ok := strings.Cut(strings.TrimSpace(info), " ")
		if !ok {
			return Cubes{}, fmt.Errorf("expected \"<count> <colour>\", got %q", info)
		}
		n, err := strconv.ParseUint(count, 10, 64)
		if err != nil {
			return Cubes{}, fmt.Errorf("cube count %q is not a number", count)
		}
		switch colour {
		case "red":
			c.Red = n
		case "green":
			c.Green = n
		case "blue":
			c.Blue = n
		}
	}
	return c, nil
}

// Solve returns the sum of possible game ids and the total power of the minimum bags.
func Solve(ctx context.Context, lines []string) (domain.Answer, error) {
	games, err := Parse(lines)
	if err != nil {
		return domain.Answer{}, err
	}

	ans := domain.Answer{Day: Day}
	for _, g := range games {
		if g.Possible(Bag) {
			ans.PartOne += g.ID
		}
		ans.PartTwo += g.MinimumBag().Power()
	}
	return ans, ctx.Err()
}
