package domain

import (
	"errors"
	"fmt"
)

// ErrParse is returned (wrapped in a ParseError) when an input line is malformed.
var ErrParse = errors.New("parse error")

// ErrLookup is returned (wrapped in a LookupError) when a node id is absent from the table.
var ErrLookup = errors.New("node not found")

// ErrUnreachableTarget is returned when a single walker exhausts its step budget
// without reaching the target node.
var ErrUnreachableTarget = errors.New("target unreachable")

// ErrCycleNotFound is returned when a walker exhausts its step budget without
// revisiting any (node, phase) state.
var ErrCycleNotFound = errors.New("cycle not found")

// ErrNoTargetHit is returned when a walker enters its cycle without ever visiting a target node.
var ErrNoTargetHit = errors.New("walker never reached a target")

// ErrNoWalkers is returned when no node matches the walker start condition.
var ErrNoWalkers = errors.New("no start nodes")

// ErrDayNotFound is returned when no puzzle is registered for a day.
var ErrDayNotFound = errors.New("day not registered")

// ErrResultNotFound is returned when an answer cannot be found in the result store.
var ErrResultNotFound = errors.New("result not found")

// ErrEmptyInput is returned when a puzzle receives no usable lines.
var ErrEmptyInput = errors.New("empty input")

// ParseError describes a malformed input line.
type ParseError struct {
	Line   int    // 1-based line number, 0 when unknown
	Text   string // The offending line
	Reason string // Human-readable reason for failure
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse error: %s", e.Reason)
	}
	return fmt.Sprintf("parse error on line %d: %s (%q)", e.Line, e.Reason, e.Text)
}

// Is reports ErrParse as the sentinel of every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError builds a ParseError for a 0-based line index.
func NewParseError(index int, text, reason string) *ParseError {
	return &ParseError{Line: index + 1, Text: text, Reason: reason}
}

// LookupError describes a reference to a node that is not part of the table.
type LookupError struct {
	NodeID string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("node %q not found in network", e.NodeID)
}

// Is reports ErrLookup as the sentinel of every LookupError.
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}
