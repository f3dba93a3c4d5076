package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/advent/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "advent"

// Metrics holds the collectors fed by lifecycle hooks.
type Metrics struct {
	Registry *prometheus.Registry

	WalkerStarts       prometheus.Counter
	TargetHits         prometheus.Counter
	CyclesDetected     prometheus.Counter
	AssumptionViolated prometheus.Counter
	CycleLength        prometheus.Histogram
	PuzzlesSolved      *prometheus.CounterVec
	SolveDuration      *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		WalkerStarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "walker_starts_total",
			Help:      "Total number of walkers started",
		}),
		TargetHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "target_hits_total",
			Help:      "Total number of times a walker stood on a target node",
		}),
		CyclesDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_detected_total",
			Help:      "Total number of walker cycles detected",
		}),
		AssumptionViolated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assumption_violations_total",
			Help:      "Walkers whose target hits are not multiples of their first hit",
		}),
		CycleLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_length_steps",
			Help:      "Length of detected walker cycles in steps",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
		PuzzlesSolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "puzzles_solved_total",
			Help:      "Total number of solved puzzles",
		}, []string{"day", "cached"}),
		SolveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Duration of puzzle solves",
		}, []string{"day"}),
	}

	m.Registry.MustRegister(
		m.WalkerStarts,
		m.TargetHits,
		m.CyclesDetected,
		m.AssumptionViolated,
		m.CycleLength,
		m.PuzzlesSolved,
		m.SolveDuration,
	)
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnWalkerStart: func(ctx context.Context, e *domain.WalkerEvent) {
			m.WalkerStarts.Inc()
		},
		OnTargetHit: func(ctx context.Context, e *domain.WalkerEvent) {
			m.TargetHits.Inc()
		},
		OnCycleDetected: func(ctx context.Context, e *domain.WalkerEvent) {
			m.CyclesDetected.Inc()
			m.CycleLength.Observe(float64(e.CycleLength))
		},
		OnAssumptionViolated: func(ctx context.Context, e *domain.WalkerEvent) {
			m.AssumptionViolated.Inc()
		},
		OnPuzzleSolved: func(ctx context.Context, e *domain.SolveEvent) {
			day := strconv.Itoa(e.Day)
			m.PuzzlesSolved.WithLabelValues(day, strconv.FormatBool(e.Cached)).Inc()
			if !e.Cached {
				m.SolveDuration.WithLabelValues(day).Observe(e.Duration.Seconds())
			}
		},
	}
}
