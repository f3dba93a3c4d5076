package network_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/advent/pkg/network"
)

func ExampleNetwork_GhostPathLength() {
	n, err := network.Parse([]string{
		"LR",
		"",
		"11A = (11B, XXX)",
		"11B = (XXX, 11Z)",
		"11Z = (11B, XXX)",
		"22A = (22B, XXX)",
		"22B = (22C, 22C)",
		"22C = (22Z, 22Z)",
		"22Z = (22B, 22B)",
		"XXX = (XXX, XXX)",
	})
	if err != nil {
		log.Fatal(err)
	}

	steps, err := n.GhostPathLength(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(steps)
	// Output: 6
}
