/*
Package ports defines the driven ports (interfaces) of the solver engine.

These interfaces decouple puzzle logic from where inputs come from and where
answers are kept, so the same engine runs from the CLI, the HTTP API or tests.

# Key Interfaces

  - InputLoader: Responsible for producing the lines of a day's input (file, memory).
  - ResultStore: Responsible for caching answers keyed by day and input digest.
*/
package ports
