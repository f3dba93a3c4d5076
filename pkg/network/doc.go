/*
Package network simulates walkers moving through the haunted wasteland network.

A network is a table of three-character nodes, each with a left and a right
successor, plus a cyclic instruction string of L/R turns. Nodes refer to each
other by id only, so the table can hold cycles without any pointer graph.

# Traversal

A Walker is an immutable cursor: {Current, Phase, Steps}. Network.Follow never
mutates its input, it returns the next Walker. Both traversals below are plain
loops over Follow that differ only in their stopping condition.

  - PathLength drives one walker from a start node until a target predicate holds.
  - ResolveWalkers drives one walker per start node until its (node, phase) state
    repeats, recording the steps at which target nodes were visited.

GhostPathLength combines the first recorded factor of every walker with a least
common multiple. This is only correct when each walker hits a target exactly on
the multiples of its first factor; WalkerSummary.Periodic reports whether that
holds and violations are surfaced through LifecycleHooks.OnAssumptionViolated.

# Termination

The (node, phase) state space is bounded by len(nodes) × len(instructions), so
every loop is capped at that bound plus one step. Exceeding it fails with
domain.ErrUnreachableTarget or domain.ErrCycleNotFound instead of spinning.
*/
package network
