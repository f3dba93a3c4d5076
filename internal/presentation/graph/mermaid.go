package graph

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/advent/pkg/network"
)

// GraphOverlay contains walker data to highlight on the graph.
type GraphOverlay struct {
	Starts  []network.NodeID
	Targets []network.NodeID
	Visited []network.NodeID
}

// NewWalkerOverlay marks the ghost starts and targets of n.
func NewWalkerOverlay(n *network.Network) *GraphOverlay {
	return &GraphOverlay{
		Starts:  n.Nodes.Select(network.HasSuffix(network.GhostStartSuffix)),
		Targets: n.Nodes.Select(network.HasSuffix(network.GhostTargetSuffix)),
	}
}

// GenerateMermaid produces a Mermaid flowchart of n, one line per node and one
// labelled edge per distinct successor. Nodes are emitted in sorted order.
// It applies semantic styling:
// - AAA: ((Circle))
// - ZZZ: (((Double circle)))
// - Default: [Rectangle]
// It also applies overlay styles (Start/Target/Visited) if provided.
func GenerateMermaid(n *network.Network, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString(fmt.Sprintf("    %%%% instructions: %s\n", n.Instructions))

	for _, id := range n.Nodes.IDs() {
		node := n.Nodes[id]
		safeID := sanitizeMermaidID(string(id))

		opener, closer := "[", "]"
		switch id {
		case network.StartNode:
			opener, closer = "((", "))"
		case network.EndNode:
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, id, closer))

		if node.Left == node.Right {
			sb.WriteString(fmt.Sprintf("    %s -- \"L,R\" --> %s\n", safeID, sanitizeMermaidID(string(node.Left))))
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"L\" --> %s\n", safeID, sanitizeMermaidID(string(node.Left))))
		sb.WriteString(fmt.Sprintf("    %s -- \"R\" --> %s\n", safeID, sanitizeMermaidID(string(node.Right))))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps labels readable on both light and dark themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef start fill:#c8e6c9,stroke:#2e7d32,stroke-width:3px,color:#000;\n")
		sb.WriteString("    classDef target fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		writeClass(&sb, "visited", overlay.Visited)
		writeClass(&sb, "start", overlay.Starts)
		writeClass(&sb, "target", overlay.Targets)
	}

	return sb.String()
}

func writeClass(sb *strings.Builder, class string, ids []network.NodeID) {
	seen := make(map[string]bool)
	for _, id := range ids {
		safeID := sanitizeMermaidID(string(id))
		if safeID == "" || seen[safeID] {
			continue
		}
		seen[safeID] = true
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", safeID, class))
	}
}

// sanitizeMermaidID keeps letters, digits and underscores. Ids starting with a
// digit get an "n" prefix.
func sanitizeMermaidID(id string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return '_'
	}, id)
	if s != "" && unicode.IsDigit(rune(s[0])) {
		s = "n" + s
	}
	return s
}
