package network

import (
	"sort"

	"github.com/aretw0/advent/pkg/domain"
)

// NodeID is an opaque three-character node name.
type NodeID string

// Node holds the two successors of a node.
type Node struct {
	Left  NodeID `json:"left" yaml:"left"`
	Right NodeID `json:"right" yaml:"right"`
}

// Go returns the successor in the given direction.
func (n Node) Go(d Direction) NodeID {
	if d == Left {
		return n.Left
	}
	return n.Right
}

// Table maps node ids to their successors. It is read-only once parsed.
type Table map[NodeID]Node

// Lookup returns the node stored under id or a *domain.LookupError.
func (t Table) Lookup(id NodeID) (Node, error) {
	node, ok := t[id]
	if !ok {
		return Node{}, &domain.LookupError{NodeID: string(id)}
	}
	return node, nil
}

// IDs returns every node id in lexical order.
func (t Table) IDs() []NodeID {
	ids := make([]NodeID, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Select returns the sorted ids matching pred.
func (t Table) Select(pred func(NodeID) bool) []NodeID {
	var ids []NodeID
	for _, id := range t.IDs() {
		if pred(id) {
			ids = append(ids, id)
		}
	}
	return ids
}
