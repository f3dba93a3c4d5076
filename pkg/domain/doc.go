/*
Package domain contains the shared models of the puzzle solvers.

It defines the values that cross package boundaries: the two-part Answer every
puzzle produces, the error taxonomy used by parsers and traversals, and the
lifecycle events emitted while walkers move through a network. This package is
kept free of I/O and persistence.

# Key Entities

  - Answer: The part one / part two result of a single day.
  - ParseError, LookupError: Typed failures carrying the offending line or node.
  - WalkerEvent: A snapshot emitted when a walker starts, hits a target or enters a cycle.
  - LifecycleHooks: Optional callbacks used for logging and metrics.
*/
package domain
