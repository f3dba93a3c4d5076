package network

import (
	"fmt"
	"strings"
)

// Fixed endpoints of the puzzle.
const (
	StartNode NodeID = "AAA"
	EndNode   NodeID = "ZZZ"

	GhostStartSuffix  = "A"
	GhostTargetSuffix = "Z"
)

// Network couples the node table with the instruction cycle.
// Both are immutable after construction and safe to share between goroutines.
type Network struct {
	Instructions Instructions
	Nodes        Table
}

// New builds a network from already parsed parts.
func New(instructions Instructions, nodes Table) (*Network, error) {
	if len(instructions) == 0 {
		return nil, ErrEmptyInstructions
	}
	if nodes == nil {
		nodes = Table{}
	}
	return &Network{Instructions: instructions, Nodes: nodes}, nil
}

// Walker tracks where a traversal is: current node, phase within the
// instruction cycle and the number of steps taken so far.
type Walker struct {
	Current NodeID `json:"current"`
	Phase   int    `json:"phase"`
	Steps   uint64 `json:"steps"`
}

func (w Walker) String() string {
	return fmt.Sprintf("%s@%d (%d steps)", w.Current, w.Phase, w.Steps)
}

// Start returns a fresh walker on id.
func (n *Network) Start(id NodeID) (Walker, error) {
	if _, err := n.Nodes.Lookup(id); err != nil {
		return Walker{}, err
	}
	return Walker{Current: id}, nil
}

// Follow moves w one step along the instruction cycle and returns the new walker.
// A successor missing from the table is a LookupError.
func (n *Network) Follow(w Walker) (Walker, error) {
	node, err := n.Nodes.Lookup(w.Current)
	if err != nil {
		return Walker{}, err
	}
	next := node.Go(n.Instructions.DirectionAt(w.Phase))
	if _, err := n.Nodes.Lookup(next); err != nil {
		return Walker{}, err
	}
	return Walker{
		Current: next,
		Phase:   n.Instructions.NextPhase(w.Phase),
		Steps:   w.Steps + 1,
	}, nil
}

// StateSpace is the number of distinct (node, phase) states.
func (n *Network) StateSpace() uint64 {
	return uint64(len(n.Nodes)) * uint64(n.Instructions.Len())
}

// Is matches exactly one node id.
func Is(id NodeID) func(NodeID) bool {
	return func(n NodeID) bool { return n == id }
}

// HasSuffix matches node ids ending in suffix.
func HasSuffix(suffix string) func(NodeID) bool {
	return func(n NodeID) bool { return strings.HasSuffix(string(n), suffix) }
}
