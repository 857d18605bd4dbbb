package sweep

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector bundles Prometheus metrics for a sweep run. Sweeps over large
// grids can run for a while; exposing the collector's registry lets the CLI
// serve progress over promhttp.
type Collector struct {
	Evaluations prometheus.Counter
	Invalid     prometheus.Counter
	Duration    prometheus.Histogram
	PointsTotal prometheus.Gauge
}

// NewCollector registers sweep metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	evaluations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sweep_evaluations_total",
		Help: "Cumulative number of grid points evaluated.",
	})
	if err := reg.Register(evaluations); err != nil {
		return nil, err
	}

	invalid := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sweep_invalid_points_total",
		Help: "Grid points whose parameter set failed range validation.",
	})
	if err := reg.Register(invalid); err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sweep_point_duration_seconds",
		Help:    "Wall time of a single grid-point evaluation.",
		Buckets: []float64{1e-6, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 1},
	})
	if err := reg.Register(duration); err != nil {
		return nil, err
	}

	pointsTotal := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sweep_grid_points",
		Help: "Total number of points in the current grid.",
	})
	if err := reg.Register(pointsTotal); err != nil {
		return nil, err
	}

	return &Collector{
		Evaluations: evaluations,
		Invalid:     invalid,
		Duration:    duration,
		PointsTotal: pointsTotal,
	}, nil
}
