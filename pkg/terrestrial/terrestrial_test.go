package terrestrial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powersat/orbitalcost/pkg/constants"
	"github.com/powersat/orbitalcost/pkg/params"
)

func TestCalculate_DefaultScenario(t *testing.T) {
	res := Calculate(params.Default(), constants.Default())

	// Capex: 1450 $/kW × 1.2 PUE / 1000 = 1.74 $/W generation, plus the
	// four facility buckets.
	assert.InDelta(t, 1.74, res.PowerGenCostPerW, 1e-12)
	assert.InDelta(t, 14.24, res.FacilityCapexPerW, 1e-12)
	assert.InDelta(t, 14_240_000_000, res.InfraCapex, 1)

	// Energy: IT energy discounted by the 0.85 capacity factor, generation
	// inflated by PUE.
	assert.InDelta(t, 37_230_000, res.EnergyMWh, 1e-6)
	assert.InDelta(t, 44_676_000, res.GenerationMWh, 1e-6)

	// Fuel: 6200 BTU/kWh × 4.30 $/MMBtu / 1000 = 26.66 $/MWh.
	assert.InDelta(t, 26.66, res.FuelCostPerMWh, 1e-12)
	assert.InDelta(t, 1_191_062_160, res.FuelCostTotal, 1)

	assert.InDelta(t, 15_431_062_160, res.TotalCost, 1)
	assert.InDelta(t, 15.431, res.CostPerW, 1e-3)
	assert.InDelta(t, 414.48, res.LCOE, 0.01)

	// Engineering outputs.
	assert.InDelta(t, 276.99, res.GasConsumptionBCF, 0.01)
	assert.Equal(t, 3, res.TurbineCount)
	assert.InDelta(t, 1200, res.TotalGenerationMW, 1e-9)
	assert.InDelta(t, 90, res.LandAcres, 1e-9)
}

func TestCalculate_TotalIsCapexPlusFuel(t *testing.T) {
	res := Calculate(params.Default(), constants.Default())
	assert.InEpsilon(t, res.InfraCapex+res.FuelCostTotal, res.TotalCost, 1e-12)

	sum := res.PowerGenCost + res.ElectricalCost + res.MechanicalCost + res.CivilCost + res.NetworkCost
	assert.InEpsilon(t, sum, res.InfraCapex, 1e-12)
}

func TestCalculate_TurbineCountCeiling(t *testing.T) {
	p := params.Default()
	c := constants.Default()

	// 430 MW per turbine; generation demand = target × PUE.
	for _, tc := range []struct {
		targetGW float64
		want     int
	}{
		{0.1, 1},   // 120 MW
		{0.358, 1}, // 429.6 MW, just under one turbine
		{0.359, 2}, // 430.8 MW, tips over
		{1, 3},     // 1200 MW
		{10, 28},   // 12000 MW
	} {
		p.TargetGW = tc.targetGW
		res := Calculate(p, c)
		require.Equal(t, tc.want, res.TurbineCount, "target %v GW", tc.targetGW)
	}
}

func TestCalculate_EnergyBasisAsymmetry(t *testing.T) {
	// The LCOE denominator is capacity-factor-discounted IT energy. This is
	// deliberately a different basis than the orbital model's full-target
	// energy: terrestrial plants take maintenance outages, the fleet is
	// oversized to never miss target.
	p := params.Default()
	res := Calculate(p, constants.Default())

	fullBasis := res.TotalCost / (1000 * float64(p.Years) * 8760)
	assert.Greater(t, res.LCOE, fullBasis)
	assert.InEpsilon(t, res.LCOE*p.CapacityFactor, fullBasis, 1e-12)
}

func TestCalculate_FuelScalesWithGasPrice(t *testing.T) {
	p := params.Default()
	c := constants.Default()

	cheap := Calculate(p, c)
	p.GasPricePerMMBtu = 2 * p.GasPricePerMMBtu
	dear := Calculate(p, c)

	assert.InEpsilon(t, 2*cheap.FuelCostTotal, dear.FuelCostTotal, 1e-12)
	assert.Equal(t, cheap.InfraCapex, dear.InfraCapex)
}
