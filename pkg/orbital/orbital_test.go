package orbital

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powersat/orbitalcost/pkg/constants"
	"github.com/powersat/orbitalcost/pkg/params"
)

func TestCalculate_DefaultScenario(t *testing.T) {
	res := Calculate(params.Default(), constants.Default())

	// Fleet sizing pinned against the default parameter set: the
	// accelerator failure rate (9%/yr) is the binding constraint, not cell
	// degradation (2.5%/yr).
	assert.Equal(t, 45235, res.SatelliteCount)
	assert.Equal(t, 335, res.LaunchVehicleCount)
	assert.InDelta(t, 33461506.85, res.TotalMassKg, 1)
	assert.InDelta(t, 739.726, res.MassPerSatKg, 1e-3)

	assert.InDelta(t, 0.951234, res.AvgSolarFactor, 1e-6)
	assert.InDelta(t, 0.835484, res.AvgGPUFactor, 1e-6)
	assert.Equal(t, res.AvgGPUFactor, res.AvgCapacityFactor)

	// Cost stack.
	assert.InDelta(t, 26_869_590_000, res.HardwareCost, 1)
	assert.InDelta(t, 16_730_753_425, res.LaunchCost, 1)
	assert.InDelta(t, 1_343_479_500, res.OpsCost, 1)
	assert.InDelta(t, 12_091_315_500, res.ReplacementCost, 1)
	assert.InDelta(t, 1e9, res.NRECost, 1)
	assert.InDelta(t, 58_035_138_425, res.TotalCost, 10)
	assert.InDelta(t, 58.035, res.CostPerW, 1e-3)

	// Energy basis: full target power over the horizon, no capacity factor
	// discount (the fleet is sized to guarantee the target).
	assert.InDelta(t, 43_800_000, res.EnergyMWh, 1e-6)
	assert.InDelta(t, res.TotalCost/res.EnergyMWh, res.LCOE, 1e-9)

	// Launch campaign.
	assert.InDelta(t, 335*787000.0, res.LOXGallons, 1e-6)
	assert.InDelta(t, 335*755000.0, res.MethaneGallons, 1e-6)
}

func TestCalculate_TotalIsSumOfFiveBuckets(t *testing.T) {
	res := Calculate(params.Default(), constants.Default())
	sum := res.HardwareCost + res.LaunchCost + res.OpsCost + res.ReplacementCost + res.NRECost
	assert.InEpsilon(t, sum, res.TotalCost, 1e-12)
}

func TestCalculate_CeilingProperties(t *testing.T) {
	p := params.Default()
	c := constants.Default()

	for _, target := range []float64{0.1, 0.5, 1, 2.7, 10} {
		p.TargetGW = target
		res := Calculate(p, c)

		require.Positive(t, res.SatelliteCount, "target %v GW", target)
		require.Positive(t, res.LaunchVehicleCount, "target %v GW", target)

		// Ceiling means actual power always covers the requirement.
		assert.GreaterOrEqual(t, res.ActualInitialPowerW, res.RequiredInitialPowerW, "target %v GW", target)
		assert.Less(t, res.ActualInitialPowerW-res.RequiredInitialPowerW, p.SatellitePowerKW*1000, "target %v GW", target)
	}
}

func TestCalculate_NoDegradationMinimizesFleet(t *testing.T) {
	p := params.Default()
	p.CellDegradation = 0
	p.GPUFailureRate = 0
	res := Calculate(p, constants.Default())

	// With no degrading effects the only margin left is the eclipse
	// fraction: ceil(1e9 / 0.98 / 27kW).
	assert.Equal(t, 37793, res.SatelliteCount)
	assert.Equal(t, 1.0, res.AvgCapacityFactor)

	degraded := Calculate(params.Default(), constants.Default())
	assert.Less(t, res.SatelliteCount, degraded.SatelliteCount)
}

func TestCalculate_MonotonicInLaunchCost(t *testing.T) {
	p := params.Default()
	c := constants.Default()

	prev := math.Inf(-1)
	for _, lc := range []float64{20, 100, 500, 1000, 2940} {
		p.LaunchCostPerKg = lc
		total := Calculate(p, c).TotalCost
		require.Greater(t, total, prev, "launch cost %v", lc)
		prev = total
	}
}

func TestCalculate_BindingConstraintSwitches(t *testing.T) {
	// When cell degradation outpaces accelerator failures, the solar factor
	// must become the binding constraint.
	p := params.Default()
	p.CellDegradation = 5
	p.GPUFailureRate = 1

	res := Calculate(p, constants.Default())
	assert.Equal(t, res.AvgSolarFactor, res.AvgCapacityFactor)
	assert.Less(t, res.AvgSolarFactor, res.AvgGPUFactor)
}

func TestCalculate_ArrayAreaScalesWithUnitPower(t *testing.T) {
	p := params.Default()
	c := constants.Default()
	res := Calculate(p, c)

	// 27 kW satellite matches the reference array exactly.
	assert.InDelta(t, c.RefSatArrayM2, res.SingleSatArrayM2, 1e-9)
	assert.InDelta(t, float64(res.SatelliteCount)*c.RefSatArrayM2/1e6, res.ArrayAreaKm2, 1e-9)

	p.SatellitePowerKW = 54
	res2 := Calculate(p, c)
	assert.InDelta(t, 2*c.RefSatArrayM2, res2.SingleSatArrayM2, 1e-9)
}

func TestAverageRetention(t *testing.T) {
	// 0% loss keeps full capacity.
	assert.Equal(t, 1.0, averageRetention(0, 5))

	// Hand-computed 2.5%/yr over 5 years.
	want := (1 + 0.975 + 0.975*0.975 + math.Pow(0.975, 3) + math.Pow(0.975, 4)) / 5
	assert.InDelta(t, want, averageRetention(2.5, 5), 1e-12)

	// Single-year horizon has no degradation exposure at all.
	assert.Equal(t, 1.0, averageRetention(9, 1))
}
