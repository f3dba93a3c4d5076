package network

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is a single turn of the instruction string.
type Direction byte

const (
	Left  Direction = 'L'
	Right Direction = 'R'
)

func (d Direction) String() string {
	return string(d)
}

// ErrEmptyInstructions is returned when the instruction line has no turns.
var ErrEmptyInstructions = errors.New("instructions must not be empty")

// Instructions is the finite turn sequence that walkers repeat forever.
type Instructions []Direction

// ParseInstructions converts an L/R string into Instructions.
func ParseInstructions(s string) (Instructions, error) {
	if s == "" {
		return nil, ErrEmptyInstructions
	}
	out := make(Instructions, len(s))
	for i := 0; i < len(s); i++ {
		switch d := Direction(s[i]); d {
		case Left, Right:
			out[i] = d
		default:
			return nil, fmt.Errorf("invalid direction %q at position %d", s[i], i)
		}
	}
	return out, nil
}

// Len is the cycle period used for phase tracking.
func (in Instructions) Len() int {
	return len(in)
}

// DirectionAt returns the turn for phase, taken modulo the instruction length.
func (in Instructions) DirectionAt(phase int) Direction {
	return in[phase%len(in)]
}

// NextPhase advances phase by one, wrapping at the instruction length.
func (in Instructions) NextPhase(phase int) int {
	return (phase + 1) % len(in)
}

func (in Instructions) String() string {
	var sb strings.Builder
	sb.Grow(len(in))
	for _, d := range in {
		sb.WriteByte(byte(d))
	}
	return sb.String()
}
