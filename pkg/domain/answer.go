package domain

import "fmt"

// Answer holds the two results of a daily puzzle.
type Answer struct {
	Day     int    `json:"day" yaml:"day"`
	PartOne uint64 `json:"part_one" yaml:"part_one"`
	PartTwo uint64 `json:"part_two" yaml:"part_two"`
}

// Lines renders the answer the way the solvers have always printed it.
func (a Answer) Lines() []string {
	return []string{
		fmt.Sprintf("result (part one): %d", a.PartOne),
		fmt.Sprintf("result (part two): %d", a.PartTwo),
	}
}
