/*
Package advent solves Advent of Code 2023 puzzles behind a small, embeddable engine.

The centerpiece is day 8, "Haunted Wasteland": a network of nodes with a left and
a right successor, walked by following a cyclic list of L/R instructions. Part one
counts the steps from AAA to ZZZ. Part two releases one walker on every node ending
in A, detects the cycle each walker falls into and combines their first arrivals
on Z-suffixed nodes with a least common multiple. Days 2, 4 and 6 are also
registered.

# Usage

	eng := advent.New(
		advent.WithLoader(file.NewLoader("data")),
		advent.WithStore(memory.NewStore()),
	)

	answer, err := eng.SolveDay(ctx, 8)
	if err != nil {
		log.Fatal(err)
	}
	for _, line := range answer.Lines() {
		fmt.Println(line)
	}

# Observability

Lifecycle hooks (see domain.LifecycleHooks) fire for every walker start, target
hit, detected cycle and solved puzzle. The observability package turns them
into Prometheus collectors.

# Architecture

  - pkg/network: the day 8 node table, instruction cursor and walkers.
  - pkg/ports: InputLoader and ResultStore interfaces.
  - pkg/adapters: file, memory and Redis implementations of the ports.
  - cmd/advent: the CLI, exposing solve, graph, validate, serve and mcp.
*/
package advent
