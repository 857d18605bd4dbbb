// Package orbital sizes and costs a fleet of sun-synchronous solar-powered
// compute satellites delivering a target average power over a multi-year
// horizon.
package orbital

import (
	"math"

	"github.com/powersat/orbitalcost/pkg/constants"
	"github.com/powersat/orbitalcost/pkg/params"
	"github.com/powersat/orbitalcost/pkg/units"
)

// Result is the flat output of one orbital model evaluation. All dollar
// figures are absolute USD; energies are MWh.
type Result struct {
	// Fleet & mass
	SatelliteCount   int     `json:"satelliteCount"`
	TotalMassKg      float64 `json:"totalMassKg"`
	MassPerSatKg     float64 `json:"massPerSatKg"`
	SingleSatArrayM2 float64 `json:"singleSatArrayM2"`
	ArrayAreaM2      float64 `json:"arrayAreaM2"`
	ArrayAreaKm2     float64 `json:"arrayAreaKm2"`

	// Costs
	HardwareCost    float64 `json:"hardwareCost"`
	LaunchCost      float64 `json:"launchCost"`
	OpsCost         float64 `json:"opsCost"`
	ReplacementCost float64 `json:"replacementCost"`
	NRECost         float64 `json:"nreCost"`
	TotalCost       float64 `json:"totalCost"`
	CostPerW        float64 `json:"costPerW"`

	// Energy
	EnergyMWh float64 `json:"energyMWh"`
	LCOE      float64 `json:"lcoe"`

	// Launch campaign
	LaunchVehicleCount int     `json:"launchVehicleCount"`
	LOXGallons         float64 `json:"loxGallons"`
	MethaneGallons     float64 `json:"methaneGallons"`

	// Capacity factors & margins
	AvgSolarFactor    float64 `json:"avgSolarFactor"`
	AvgGPUFactor      float64 `json:"avgGpuFactor"`
	AvgCapacityFactor float64 `json:"avgCapacityFactor"`
	SunlightAdjusted  float64 `json:"sunlightAdjustedFactor"`
	SolarMarginPct    float64 `json:"solarMarginPct"`
	GPUMarginPct      float64 `json:"gpuMarginPct"`
	DegradationMargin float64 `json:"degradationMargin"`

	// Power
	RequiredInitialPowerW float64 `json:"requiredInitialPowerW"`
	ActualInitialPowerW   float64 `json:"actualInitialPowerW"`
}

// averageRetention accumulates retention^year over the horizon and averages.
// Years is small (≤10) so the explicit loop is kept over the closed-form
// geometric series.
func averageRetention(annualLossPct float64, years int) float64 {
	retention := 1 - annualLossPct/100
	sum := 0.0
	for year := 0; year < years; year++ {
		sum += math.Pow(retention, float64(year))
	}
	return sum / float64(years)
}

// Calculate runs the orbital model. It is a pure function of its inputs;
// a zero sun fraction or zero combined availability divides by zero and
// propagates as a non-finite result rather than an error (callers validate
// with params.Validate).
func Calculate(p params.ParameterSet, c constants.ConstantSet) Result {
	derived := units.Derive(p.TargetGW)
	totalHours := float64(p.Years) * c.HoursPerYear

	// Two independent degrading-capacity effects; the fleet is sized for
	// whichever degrades average output more.
	avgSolar := averageRetention(p.CellDegradation, p.Years)
	avgGPU := averageRetention(p.GPUFailureRate, p.Years)
	avgCapacity := math.Min(avgSolar, avgGPU)
	sunlightAdjusted := avgCapacity * p.SunFraction

	requiredPowerW := derived.TargetPowerW / sunlightAdjusted

	// Fleet sizing. Counts are exact ceilings, never fractional hardware.
	satPowerW := p.SatellitePowerKW * 1000
	massPerSatKg := satPowerW / p.SpecificPowerWPerKg
	satCount := int(math.Ceil(requiredPowerW / satPowerW))
	totalMassKg := float64(satCount) * massPerSatKg
	actualPowerW := float64(satCount) * satPowerW

	// Five-bucket cost stack.
	hardwareCost := p.SatelliteCostPerW * actualPowerW
	launchCost := p.LaunchCostPerKg * totalMassKg
	opsCost := hardwareCost * c.OrbitalOpsFraction * float64(p.Years)
	replacementCost := hardwareCost * (p.GPUFailureRate / 100) * float64(p.Years)
	nreCost := p.NRECostM * 1e6
	totalCost := hardwareCost + launchCost + opsCost + replacementCost + nreCost

	// Delivered energy uses the full target power: the fleet is sized to
	// guarantee the target through degradation, so availability is 100% by
	// construction. This is deliberately a different energy basis than the
	// terrestrial model's capacity-factor-discounted one.
	energyMWh := derived.TargetPowerMW * totalHours

	// Array area scales the reference satellite's array by unit power.
	arrayPerSatM2 := c.RefSatArrayM2 * (p.SatellitePowerKW / c.RefSatPowerKW)
	arrayAreaM2 := float64(satCount) * arrayPerSatM2

	launches := int(math.Ceil(totalMassKg / c.RefPayloadKg))

	return Result{
		SatelliteCount:   satCount,
		TotalMassKg:      totalMassKg,
		MassPerSatKg:     massPerSatKg,
		SingleSatArrayM2: arrayPerSatM2,
		ArrayAreaM2:      arrayAreaM2,
		ArrayAreaKm2:     arrayAreaM2 / 1e6,

		HardwareCost:    hardwareCost,
		LaunchCost:      launchCost,
		OpsCost:         opsCost,
		ReplacementCost: replacementCost,
		NRECost:         nreCost,
		TotalCost:       totalCost,
		CostPerW:        totalCost / derived.TargetPowerW,

		EnergyMWh: energyMWh,
		LCOE:      totalCost / energyMWh,

		LaunchVehicleCount: launches,
		LOXGallons:         float64(launches) * c.RefLOXGalPerLaunch,
		MethaneGallons:     float64(launches) * c.RefMethaneGalPerLaunch,

		AvgSolarFactor:    avgSolar,
		AvgGPUFactor:      avgGPU,
		AvgCapacityFactor: avgCapacity,
		SunlightAdjusted:  sunlightAdjusted,
		SolarMarginPct:    (1/avgSolar - 1) * 100,
		GPUMarginPct:      (1/avgGPU - 1) * 100,
		DegradationMargin: (actualPowerW/derived.TargetPowerW - 1) * 100,

		RequiredInitialPowerW: requiredPowerW,
		ActualInitialPowerW:   actualPowerW,
	}
}
