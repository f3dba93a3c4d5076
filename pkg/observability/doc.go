/*
Package observability exposes solver activity as Prometheus metrics.

Metrics plugs into the engine through domain.LifecycleHooks, so every walker
start, target hit, detected cycle and solved puzzle is counted without the
solvers knowing about Prometheus.
*/
package observability
