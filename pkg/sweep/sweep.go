// Package sweep evaluates the orbital and terrestrial models over a
// parameter grid. Every evaluation is a pure function of an immutable
// parameter set, so points run concurrently on a bounded worker pool with no
// coordination beyond result collection; output order matches grid order
// regardless of scheduling.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/powersat/orbitalcost/pkg/constants"
	"github.com/powersat/orbitalcost/pkg/orbital"
	"github.com/powersat/orbitalcost/pkg/params"
	"github.com/powersat/orbitalcost/pkg/terrestrial"
)

// Axis is one swept parameter: Steps values spaced evenly from From to To
// inclusive. Steps == 1 evaluates From only.
type Axis struct {
	Param string  `yaml:"param" json:"param"`
	From  float64 `yaml:"from" json:"from"`
	To    float64 `yaml:"to" json:"to"`
	Steps int     `yaml:"steps" json:"steps"`
}

func (a Axis) values() []float64 {
	vals := make([]float64, a.Steps)
	if a.Steps == 1 {
		vals[0] = a.From
		return vals
	}
	step := (a.To - a.From) / float64(a.Steps-1)
	for i := range vals {
		vals[i] = a.From + float64(i)*step
	}
	return vals
}

// Grid is the cross product of its axes.
type Grid struct {
	Axes []Axis `yaml:"axes" json:"axes"`
}

// Size returns the number of points in the grid.
func (g Grid) Size() int {
	n := 1
	for _, a := range g.Axes {
		n *= a.Steps
	}
	return n
}

// validate rejects empty grids, non-positive step counts and unknown
// parameter names before any work is scheduled.
func (g Grid) validate() error {
	if len(g.Axes) == 0 {
		return fmt.Errorf("sweep grid has no axes")
	}
	probe := params.Default()
	for _, a := range g.Axes {
		if a.Steps < 1 {
			return fmt.Errorf("axis %s: steps must be >= 1, got %d", a.Param, a.Steps)
		}
		if _, err := params.Apply(probe, a.Param, a.From); err != nil {
			return fmt.Errorf("axis %s: %w", a.Param, err)
		}
	}
	return nil
}

// Point is one evaluated grid point. Values holds the swept parameter values
// keyed by parameter name; Invalid marks points whose parameter set failed
// range validation (their model results are still computed, since the models
// tolerate out-of-range inputs by producing out-of-range outputs).
type Point struct {
	Values      map[string]float64 `json:"values"`
	Invalid     bool               `json:"invalid,omitempty"`
	Orbital     orbital.Result     `json:"orbital"`
	Terrestrial terrestrial.Result `json:"terrestrial"`
}

// Runner executes sweeps. Zero value is usable: GOMAXPROCS workers, no
// metrics.
type Runner struct {
	Workers int
	Metrics *Collector
}

// Run evaluates the grid against the base parameter set and returns points
// in grid order (last axis fastest). It stops early on context cancellation.
func (r *Runner) Run(ctx context.Context, base params.ParameterSet, c constants.ConstantSet, grid Grid) ([]Point, error) {
	if err := grid.validate(); err != nil {
		return nil, err
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	axisValues := make([][]float64, len(grid.Axes))
	for i, a := range grid.Axes {
		axisValues[i] = a.values()
	}
	total := grid.Size()
	if r.Metrics != nil {
		r.Metrics.PointsTotal.Set(float64(total))
	}

	type job struct {
		index int
		combo []int
	}

	jobs := make(chan job)
	points := make([]Point, total)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				start := time.Now()
				points[j.index] = r.evaluate(base, c, grid, axisValues, j.combo)
				if r.Metrics != nil {
					r.Metrics.Evaluations.Inc()
					r.Metrics.Duration.Observe(time.Since(start).Seconds())
					if points[j.index].Invalid {
						r.Metrics.Invalid.Inc()
					}
				}
			}
		}()
	}

	// Odometer enumeration of the cross product, last axis fastest.
	combo := make([]int, len(grid.Axes))
	var err error
feed:
	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- job{index: i, combo: append([]int(nil), combo...)}:
		}
		for k := len(combo) - 1; k >= 0; k-- {
			combo[k]++
			if combo[k] < len(axisValues[k]) {
				break
			}
			combo[k] = 0
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return points, nil
}

func (r *Runner) evaluate(base params.ParameterSet, c constants.ConstantSet, grid Grid, axisValues [][]float64, combo []int) Point {
	p := base
	values := make(map[string]float64, len(grid.Axes))
	for k, a := range grid.Axes {
		v := axisValues[k][combo[k]]
		p, _ = params.Apply(p, a.Param, v) // names pre-validated by grid.validate
		values[a.Param] = v
	}

	return Point{
		Values:      values,
		Invalid:     p.Validate() != nil,
		Orbital:     orbital.Calculate(p, c),
		Terrestrial: terrestrial.Calculate(p, c),
	}
}
