// Package breakeven finds the launch cost per kilogram at which the orbital
// architecture's total cost equals the terrestrial one, holding every other
// parameter fixed.
package breakeven

import (
	"github.com/powersat/orbitalcost/pkg/constants"
	"github.com/powersat/orbitalcost/pkg/orbital"
	"github.com/powersat/orbitalcost/pkg/params"
	"github.com/powersat/orbitalcost/pkg/terrestrial"
)

// Default search interval and convergence tolerance, all in $/kg.
const (
	DefaultLo        = 0.0
	DefaultHi        = 10000.0
	DefaultTolerance = 1.0
)

// Result describes the outcome of a breakeven search.
//
// Inconclusive is set when the search interval does not bracket a crossing:
// either orbital fixed costs alone exceed the terrestrial total (breakeven
// would be negative) or breakeven lies above the upper bound. In that case
// LaunchCostPerKg holds the boundary value and must not be trusted as a
// converged solution.
type Result struct {
	LaunchCostPerKg float64 `json:"launchCostPerKg"`
	Iterations      int     `json:"iterations"`
	Converged       bool    `json:"converged"`
	Inconclusive    bool    `json:"inconclusive"`

	OrbitalCostPerW     float64 `json:"orbitalCostPerW"`
	TerrestrialCostPerW float64 `json:"terrestrialCostPerW"`
}

// Solve bisects over [lo, hi] until the interval is narrower than tol.
// Orbital total cost is strictly increasing in launch cost (mass is fixed by
// the sizing step), so the iteration count is O(log((hi−lo)/tol)) with no
// non-convergence risk once the interval brackets a crossing.
func Solve(p params.ParameterSet, c constants.ConstantSet, lo, hi, tol float64) Result {
	terr := terrestrial.Calculate(p, c)

	orbitalTotal := func(launchCost float64) float64 {
		q, _ := params.Apply(p, "launchCostPerKg", launchCost)
		return orbital.Calculate(q, c).TotalCost
	}

	diff := func(x float64) float64 { return orbitalTotal(x) - terr.TotalCost }

	finish := func(x float64, iters int, converged, inconclusive bool) Result {
		q, _ := params.Apply(p, "launchCostPerKg", x)
		orb := orbital.Calculate(q, c)
		return Result{
			LaunchCostPerKg:     x,
			Iterations:          iters,
			Converged:           converged,
			Inconclusive:        inconclusive,
			OrbitalCostPerW:     orb.CostPerW,
			TerrestrialCostPerW: terr.CostPerW,
		}
	}

	// Non-bracketing interval: report the nearest boundary, flagged.
	if diff(lo) > 0 {
		return finish(lo, 0, false, true)
	}
	if diff(hi) < 0 {
		return finish(hi, 0, false, true)
	}

	iters := 0
	for hi-lo > tol {
		mid := (lo + hi) / 2
		if diff(mid) > 0 {
			hi = mid
		} else {
			lo = mid
		}
		iters++
	}

	return finish((lo+hi)/2, iters, true, false)
}

// SolveDefault runs Solve over the default interval and tolerance.
func SolveDefault(p params.ParameterSet, c constants.ConstantSet) Result {
	return Solve(p, c, DefaultLo, DefaultHi, DefaultTolerance)
}
