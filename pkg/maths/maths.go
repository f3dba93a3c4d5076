// Package maths provides the integer helpers used to combine walker periods.
package maths

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrEmpty is returned when LCMOf receives no values.
	ErrEmpty = errors.New("maths: empty input")

	// ErrZero is returned when a least common multiple is requested for zero.
	ErrZero = errors.New("maths: zero has no least common multiple")

	// ErrOverflow is returned when a least common multiple does not fit in 64 bits.
	ErrOverflow = errors.New("maths: uint64 overflow")
)

// GCD returns the greatest common divisor of a and b using Euclid's remainder loop.
// GCD(a, 0) == a.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of two positive integers.
func LCM(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, ErrZero
	}
	hi, lo := bits.Mul64(a/GCD(a, b), b)
	if hi != 0 {
		return 0, fmt.Errorf("%w: lcm(%d, %d)", ErrOverflow, a, b)
	}
	return lo, nil
}

// LCMOf folds LCM over values from left to right.
// A single value is returned unchanged.
func LCMOf(values []uint64) (uint64, error) {
	if len(values) == 0 {
		return 0, ErrEmpty
	}
	acc := values[0]
	if acc == 0 {
		return 0, ErrZero
	}
	for _, v := range values[1:] {
		next, err := LCM(acc, v)
		if err != nil {
			return 0, err
		}
		acc = next
	}
	return acc, nil
}
