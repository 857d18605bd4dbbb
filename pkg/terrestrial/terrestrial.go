// Package terrestrial costs a gas-turbine-powered datacenter delivering the
// same IT power target as the orbital fleet, using a five-bucket capital
// structure plus fuel operating cost.
package terrestrial

import (
	"math"

	"github.com/powersat/orbitalcost/pkg/constants"
	"github.com/powersat/orbitalcost/pkg/params"
	"github.com/powersat/orbitalcost/pkg/units"
)

// Result is the flat output of one terrestrial model evaluation. Dollar
// figures are absolute USD; energies are MWh.
type Result struct {
	// Capex breakdown
	PowerGenCost      float64 `json:"powerGenCost"`
	PowerGenCostPerW  float64 `json:"powerGenCostPerW"`
	ElectricalCost    float64 `json:"electricalCost"`
	MechanicalCost    float64 `json:"mechanicalCost"`
	CivilCost         float64 `json:"civilCost"`
	NetworkCost       float64 `json:"networkCost"`
	InfraCapex        float64 `json:"infraCapex"`
	FacilityCapexPerW float64 `json:"facilityCapexPerW"`

	// Fuel opex
	FuelCostPerMWh   float64 `json:"fuelCostPerMWh"`
	FuelCostTotal    float64 `json:"fuelCostTotal"`
	FuelCostPerWYear float64 `json:"fuelCostPerWYear"`

	// Totals
	TotalCost float64 `json:"totalCost"`
	CostPerW  float64 `json:"costPerW"`
	LCOE      float64 `json:"lcoe"`

	// Energy
	EnergyMWh     float64 `json:"energyMWh"`
	GenerationMWh float64 `json:"generationMWh"`

	// Engineering
	GasConsumptionBCF float64 `json:"gasConsumptionBCF"`
	TurbineCount      int     `json:"turbineCount"`
	TotalGenerationMW float64 `json:"totalGenerationMW"`
	LandAcres         float64 `json:"landAcres"`
}

// Calculate runs the terrestrial model as a pure function of its inputs.
//
// Note the energy basis: IT energy is discounted by the capacity factor
// (maintenance and outages), unlike the orbital model which is sized to
// guarantee full availability. The asymmetry is a deliberate modeling
// assumption, not a bug.
func Calculate(p params.ParameterSet, c constants.ConstantSet) Result {
	derived := units.Derive(p.TargetGW)
	totalHours := float64(p.Years) * c.HoursPerYear

	// Capex: generation scaled by PUE plus four facility buckets.
	powerGenCostPerW := p.GasTurbineCapexPerKW * p.PUE / 1000
	powerGenCost := powerGenCostPerW * derived.TargetPowerW
	electricalCost := p.ElectricalCostPerW * derived.TargetPowerW
	mechanicalCost := p.MechanicalCostPerW * derived.TargetPowerW
	civilCost := p.CivilCostPerW * derived.TargetPowerW
	networkCost := p.NetworkCostPerW * derived.TargetPowerW
	infraCapex := powerGenCost + electricalCost + mechanicalCost + civilCost + networkCost
	facilityCapexPerW := powerGenCostPerW + p.ElectricalCostPerW + p.MechanicalCostPerW +
		p.CivilCostPerW + p.NetworkCostPerW

	// Opex: fuel burned for generation energy, which exceeds IT energy by
	// the PUE overhead (cooling and conversion).
	energyMWh := derived.TargetPowerMW * totalHours * p.CapacityFactor
	generationMWh := energyMWh * p.PUE
	fuelCostPerMWh := p.HeatRateBtuKWh * p.GasPricePerMMBtu / 1000
	fuelCostTotal := fuelCostPerMWh * generationMWh

	totalCost := infraCapex + fuelCostTotal

	// Gas volume and plant sizing.
	generationKWh := generationMWh * 1000
	totalBTU := generationKWh * p.HeatRateBtuKWh
	gasBCF := totalBTU / c.BTUPerCubicFoot / c.CubicFeetPerBCF

	totalGenerationMW := derived.TargetPowerMW * p.PUE
	turbineCount := int(math.Ceil(totalGenerationMW / c.RefTurbinePowerMW))

	return Result{
		PowerGenCost:      powerGenCost,
		PowerGenCostPerW:  powerGenCostPerW,
		ElectricalCost:    electricalCost,
		MechanicalCost:    mechanicalCost,
		CivilCost:         civilCost,
		NetworkCost:       networkCost,
		InfraCapex:        infraCapex,
		FacilityCapexPerW: facilityCapexPerW,

		FuelCostPerMWh:   fuelCostPerMWh,
		FuelCostTotal:    fuelCostTotal,
		FuelCostPerWYear: fuelCostPerMWh * p.PUE * c.HoursPerYear / 1e6,

		TotalCost: totalCost,
		CostPerW:  totalCost / derived.TargetPowerW,
		LCOE:      totalCost / energyMWh,

		EnergyMWh:     energyMWh,
		GenerationMWh: generationMWh,

		GasConsumptionBCF: gasBCF,
		TurbineCount:      turbineCount,
		TotalGenerationMW: totalGenerationMW,
		LandAcres:         float64(turbineCount) * c.RefPlantAcres,
	}
}
