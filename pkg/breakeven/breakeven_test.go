package breakeven

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powersat/orbitalcost/pkg/constants"
	"github.com/powersat/orbitalcost/pkg/orbital"
	"github.com/powersat/orbitalcost/pkg/params"
	"github.com/powersat/orbitalcost/pkg/terrestrial"
)

// cheapOrbital builds a parameter set whose orbital fixed costs sit below
// the terrestrial total, so a breakeven launch cost exists inside the
// default search interval.
func cheapOrbital() params.ParameterSet {
	p := params.Default()
	p.SatelliteCostPerW = 5
	p.CellDegradation = 0
	p.GPUFailureRate = 0
	p.NRECostM = 0
	return p
}

func TestSolve_Converges(t *testing.T) {
	p := cheapOrbital()
	c := constants.Default()

	res := SolveDefault(p, c)

	require.True(t, res.Converged)
	require.False(t, res.Inconclusive)

	// Analytic crossing: (terrestrial − orbital fixed) / fleet mass.
	terr := terrestrial.Calculate(p, c)
	atZero, err := params.Apply(p, "launchCostPerKg", 0)
	require.NoError(t, err)
	orbFixed := orbital.Calculate(atZero, c)
	want := (terr.TotalCost - orbFixed.TotalCost) / orbFixed.TotalMassKg

	assert.InDelta(t, want, res.LaunchCostPerKg, DefaultTolerance)

	// Bisection over 10000/1 takes about log2(10000) steps.
	assert.InDelta(t, 14, res.Iterations, 1)
}

func TestSolve_ResultFeedsBack(t *testing.T) {
	p := cheapOrbital()
	c := constants.Default()

	res := SolveDefault(p, c)
	require.True(t, res.Converged)

	// Plugging the solution back in must land orbital cost-per-watt within
	// the tolerance-scaled band of the terrestrial figure.
	fed, err := params.Apply(p, "launchCostPerKg", res.LaunchCostPerKg)
	require.NoError(t, err)
	orb := orbital.Calculate(fed, c)
	terr := terrestrial.Calculate(p, c)

	band := DefaultTolerance * orb.TotalMassKg / 1e9 // $/kg tolerance → $/W
	assert.InDelta(t, terr.CostPerW, orb.CostPerW, band)
	assert.InDelta(t, orb.CostPerW, res.OrbitalCostPerW, 1e-9)
	assert.InDelta(t, terr.CostPerW, res.TerrestrialCostPerW, 1e-9)
}

func TestSolve_InconclusiveBelowInterval(t *testing.T) {
	// Default parameters: orbital fixed costs alone (~$41B) already exceed
	// the terrestrial total (~$15B), so even free launch never breaks even.
	res := SolveDefault(params.Default(), constants.Default())

	require.True(t, res.Inconclusive)
	assert.False(t, res.Converged)
	assert.Equal(t, DefaultLo, res.LaunchCostPerKg)
	assert.Equal(t, 0, res.Iterations)
	assert.Greater(t, res.OrbitalCostPerW, res.TerrestrialCostPerW)
}

func TestSolve_InconclusiveAboveInterval(t *testing.T) {
	// Shrink the interval so the crossing lies above it.
	p := cheapOrbital()
	c := constants.Default()

	full := SolveDefault(p, c)
	require.True(t, full.Converged)

	res := Solve(p, c, 0, full.LaunchCostPerKg/2, DefaultTolerance)
	require.True(t, res.Inconclusive)
	assert.Equal(t, full.LaunchCostPerKg/2, res.LaunchCostPerKg)
}

func TestSolve_MonotonicityPrecondition(t *testing.T) {
	// Bisection is only sound because orbital total cost rises strictly
	// with launch cost; pin that here next to the solver that relies on it.
	p := cheapOrbital()
	c := constants.Default()

	prev := orbital.Calculate(p, c).TotalCost
	for lc := p.LaunchCostPerKg + 100; lc <= 2000; lc += 100 {
		q, err := params.Apply(p, "launchCostPerKg", lc)
		require.NoError(t, err)
		next := orbital.Calculate(q, c).TotalCost
		require.Greater(t, next, prev)
		prev = next
	}
}
