package network

import (
	"fmt"
	"strings"

	"github.com/aretw0/advent/pkg/domain"
)

// Parse builds a network from puzzle lines: the instruction string, a blank
// line, then one "NAME = (LEFT, RIGHT)" definition per non-empty line.
// A node defined twice keeps its last definition.
func Parse(lines []string) (*Network, error) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("network: %w", domain.ErrEmptyInput)
	}

	instructions, err := ParseInstructions(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, domain.NewParseError(0, lines[0], err.Error())
	}

	if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
		return nil, domain.NewParseError(1, lines[1], "expected a blank line after the instructions")
	}

	nodes := make(Table)
	for i := 2; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		id, node, reason := parseNode(line)
		if reason != "" {
			return nil, domain.NewParseError(i, lines[i], reason)
		}
		nodes[id] = node
	}

	return New(instructions, nodes)
}

func parseNode(line string) (NodeID, Node, string) {
	name, rest, ok := strings.Cut(line, " = ")
	if !ok {
		return "", Node{}, `missing " = " separator`
	}
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return "", Node{}, "successors must be wrapped in parentheses"
	}

	targets := strings.Split(rest[1:len(rest)-1], ", ")
	if len(targets) != 2 {
		return "", Node{}, fmt.Sprintf("expected 2 successors, got %d", len(targets))
	}

	for _, tok := range []string{name, targets[0], targets[1]} {
		if !validID(tok) {
			return "", Node{}, fmt.Sprintf("invalid node id %q", tok)
		}
	}
	return NodeID(name), Node{Left: NodeID(targets[0]), Right: NodeID(targets[1])}, ""
}

// validID accepts exactly three ASCII letters or digits.
func validID(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
