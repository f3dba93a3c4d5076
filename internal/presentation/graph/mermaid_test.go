package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/advent/internal/presentation/graph"
	"github.com/aretw0/advent/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, lines ...string) *network.Network {
	t.Helper()
	n, err := network.Parse(lines)
	require.NoError(t, err)
	return n
}

func TestGenerateMermaid(t *testing.T) {
	n := mustParse(t,
		"RL",
		"",
		"AAA = (BBB, CCC)",
		"BBB = (DDD, DDD)",
		"CCC = (ZZZ, GGG)",
		"ZZZ = (ZZZ, ZZZ)",
	)

	out := graph.GenerateMermaid(n, nil)

	tests := []struct {
		name     string
		contains string
	}{
		{"Header", "graph LR\n"},
		{"Instructions comment", "%% instructions: RL"},
		{"Start Node Shape", `AAA(("AAA"))`},
		{"End Node Shape", `ZZZ((("ZZZ")))`},
		{"Default Shape", `BBB["BBB"]`},
		{"Left Edge", `AAA -- "L" --> BBB`},
		{"Right Edge", `AAA -- "R" --> CCC`},
		{"Merged Edge", `BBB -- "L,R" --> DDD`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, out, tt.contains)
		})
	}

	assert.NotContains(t, out, "classDef", "no overlay means no styles")
	assert.Less(t, strings.Index(out, `AAA(("AAA"))`), strings.Index(out, `BBB["BBB"]`), "nodes are sorted")
}

func TestGenerateMermaid_WalkerOverlay(t *testing.T) {
	n := mustParse(t,
		"LR",
		"",
		"11A = (11B, XXX)",
		"11B = (XXX, 11Z)",
		"11Z = (11B, XXX)",
		"XXX = (XXX, XXX)",
	)

	overlay := graph.NewWalkerOverlay(n)
	overlay.Visited = []network.NodeID{"11A", "11B", "11A"}
	out := graph.GenerateMermaid(n, overlay)

	assert.Contains(t, out, `n11A["11A"]`, "ids starting with a digit are prefixed")
	assert.Contains(t, out, "class n11A start;")
	assert.Contains(t, out, "class n11Z target;")
	assert.Equal(t, 1, strings.Count(out, "class n11A visited;"), "visited nodes are deduplicated")
}
