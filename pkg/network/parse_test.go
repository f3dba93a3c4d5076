package network_test

import (
	"testing"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	n, err := network.Parse([]string{
		"LR",
		"",
		"AAA = (BBB, ZZZ)",
		"",
		"BBB = (ZZZ, AAA)",
		"ZZZ = (ZZZ, ZZZ)",
		"",
	})
	require.NoError(t, err)

	assert.Equal(t, "LR", n.Instructions.String())
	assert.Len(t, n.Nodes, 3)
	assert.Equal(t, network.Node{Left: "BBB", Right: "ZZZ"}, n.Nodes["AAA"])
	assert.Equal(t, []network.NodeID{"AAA", "BBB", "ZZZ"}, n.Nodes.IDs())
	assert.Equal(t, uint64(6), n.StateSpace())
}

func TestParse_DuplicateKeepsLast(t *testing.T) {
	n, err := network.Parse([]string{
		"L",
		"",
		"AAA = (BBB, BBB)",
		"AAA = (ZZZ, ZZZ)",
	})
	require.NoError(t, err)
	assert.Equal(t, network.NodeID("ZZZ"), n.Nodes["AAA"].Left)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		line  int
	}{
		{name: "Bad Direction", lines: []string{"LRX", "", "AAA = (AAA, AAA)"}, line: 1},
		{name: "Missing Blank", lines: []string{"LR", "AAA = (AAA, AAA)"}, line: 2},
		{name: "Missing Separator", lines: []string{"LR", "", "AAA (AAA, AAA)"}, line: 3},
		{name: "Missing Parens", lines: []string{"LR", "", "AAA = AAA, AAA"}, line: 3},
		{name: "Wrong Token Count", lines: []string{"LR", "", "AAA = (AAA, BBB)", "BBB = (AAA)"}, line: 4},
		{name: "Bad Node Id", lines: []string{"LR", "", "AAAA = (AAA, AAA)"}, line: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := network.Parse(tt.lines)
			require.ErrorIs(t, err, domain.ErrParse)

			var pe *domain.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
		})
	}

	_, err := network.Parse(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}
