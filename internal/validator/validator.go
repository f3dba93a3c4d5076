// Package validator checks a day 8 network for broken references and nodes
// that can never be visited from the start node.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/advent/pkg/network"
)

// Report lists the problems found in a network.
type Report struct {
	// Dangling maps a node to the successors it names that are not defined.
	Dangling map[network.NodeID][]network.NodeID
	// Unreachable holds defined nodes not visited by a crawl from the start, sorted.
	Unreachable []network.NodeID
	// MissingStart is set when the start node itself is not defined.
	MissingStart bool
}

// OK reports whether no walker can fail on a lookup.
// Unreachable nodes are informational only.
func (r Report) OK() bool {
	return len(r.Dangling) == 0 && !r.MissingStart
}

// Err summarizes the blocking problems, or returns nil.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	var problems []string
	if r.MissingStart {
		problems = append(problems, "start node is not defined")
	}
	from := make([]network.NodeID, 0, len(r.Dangling))
	for id := range r.Dangling {
		from = append(from, id)
	}
	sort.Slice(from, func(i, j int) bool { return from[i] < from[j] })
	for _, id := range from {
		for _, to := range r.Dangling[id] {
			problems = append(problems, fmt.Sprintf("Dead link: '%s' -> '%s'", id, to))
		}
	}
	return fmt.Errorf("found %d errors:\n- %s", len(problems), strings.Join(problems, "\n- "))
}

// ValidateNetwork crawls n breadth first from start and checks every definition.
func ValidateNetwork(n *network.Network, start network.NodeID) Report {
	report := Report{Dangling: map[network.NodeID][]network.NodeID{}}

	for _, id := range n.Nodes.IDs() {
		node := n.Nodes[id]
		for _, to := range []network.NodeID{node.Left, node.Right} {
			if _, ok := n.Nodes[to]; !ok && !contains(report.Dangling[id], to) {
				report.Dangling[id] = append(report.Dangling[id], to)
			}
		}
	}

	visited := make(map[network.NodeID]bool)
	if _, ok := n.Nodes[start]; !ok {
		report.MissingStart = true
	} else {
		queue := []network.NodeID{start}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			if visited[current] {
				continue
			}
			visited[current] = true

			node, ok := n.Nodes[current]
			if !ok {
				continue
			}
			for _, to := range []network.NodeID{node.Left, node.Right} {
				if !visited[to] {
					queue = append(queue, to)
				}
			}
		}
	}

	for _, id := range n.Nodes.IDs() {
		if !visited[id] {
			report.Unreachable = append(report.Unreachable, id)
		}
	}
	return report
}

func contains(ids []network.NodeID, id network.NodeID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
