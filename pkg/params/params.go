package params

import (
	"errors"
	"fmt"
)

// ParameterSet is the full set of scalar inputs for one comparison run.
// A value is immutable once constructed; every model call is a pure function
// of a ParameterSet plus a constants.ConstantSet.
//
// JSON keys match the persisted parameter document produced by the site.
//
// Units:
//   - powers: GW (target), kW (per satellite), W/kg (specific power)
//   - costs: $/kg, $/W, $/kW, $/MMBtu, $M (NRE)
//   - rates: percent per year (CellDegradation, GPUFailureRate)
//   - thermal: fractions except BetaAngleDeg (degrees), AltitudeKm (km)
//     and the two Celsius temperatures
type ParameterSet struct {
	// System
	Years    int     `json:"years"`
	TargetGW float64 `json:"targetGW"`

	// Orbital
	LaunchCostPerKg     float64 `json:"launchCostPerKg"`
	SatelliteCostPerW   float64 `json:"satelliteCostPerW"`
	SpecificPowerWPerKg float64 `json:"specificPowerWPerKg"`
	SatellitePowerKW    float64 `json:"satellitePowerKW"`
	SunFraction         float64 `json:"sunFraction"`
	CellDegradation     float64 `json:"cellDegradation"`
	GPUFailureRate      float64 `json:"gpuFailureRate"`
	NRECostM            float64 `json:"nreCost"`

	// Terrestrial
	GasTurbineCapexPerKW float64 `json:"gasTurbineCapexPerKW"`
	ElectricalCostPerW   float64 `json:"electricalCostPerW"`
	MechanicalCostPerW   float64 `json:"mechanicalCostPerW"`
	CivilCostPerW        float64 `json:"civilCostPerW"`
	NetworkCostPerW      float64 `json:"networkCostPerW"`
	PUE                  float64 `json:"pue"`
	GasPricePerMMBtu     float64 `json:"gasPricePerMMBtu"`
	HeatRateBtuKWh       float64 `json:"heatRateBtuKwh"`
	CapacityFactor       float64 `json:"capacityFactor"`

	// Thermal
	SolarAbsorptivity float64 `json:"solarAbsorptivity"`
	EmissivityPV      float64 `json:"emissivityPV"`
	EmissivityRad     float64 `json:"emissivityRad"`
	PVEfficiency      float64 `json:"pvEfficiency"`
	BetaAngleDeg      float64 `json:"betaAngle"`
	AltitudeKm        float64 `json:"altitudeKm"`
	MaxDieTempC       float64 `json:"maxDieTempC"`
	TempDropC         float64 `json:"tempDropC"`
}

// Default returns the canonical parameter set. Orbital and terrestrial
// defaults follow the published reference figures; thermal defaults describe
// a glass-front PV face and a high-emissivity radiator face on a terminator
// orbit at Starlink altitude.
func Default() ParameterSet {
	return ParameterSet{
		Years:    5,
		TargetGW: 1,

		LaunchCostPerKg:     500,
		SatelliteCostPerW:   22,
		SpecificPowerWPerKg: 36.5,
		SatellitePowerKW:    27,
		SunFraction:         0.98,
		CellDegradation:     2.5,
		GPUFailureRate:      9,
		NRECostM:            1000,

		GasTurbineCapexPerKW: 1450,
		ElectricalCostPerW:   5.25,
		MechanicalCostPerW:   3.0,
		CivilCostPerW:        2.5,
		NetworkCostPerW:      1.75,
		PUE:                  1.2,
		GasPricePerMMBtu:     4.30,
		HeatRateBtuKWh:       6200,
		CapacityFactor:       0.85,

		SolarAbsorptivity: 0.92,
		EmissivityPV:      0.85,
		EmissivityRad:     0.90,
		PVEfficiency:      0.22,
		BetaAngleDeg:      90,
		AltitudeKm:        550,
		MaxDieTempC:       85,
		TempDropC:         10,
	}
}

// Validate checks every field against its documented range and returns all
// violations joined into one error. The models themselves never validate;
// out-of-range inputs propagate as non-finite or out-of-physical-range
// outputs by design, so sweep callers must gate on Validate first.
func (p ParameterSet) Validate() error {
	var errs []error

	check := func(key string, v, lo, hi float64) {
		if v < lo || v > hi {
			errs = append(errs, fmt.Errorf("%s = %v outside valid range [%v, %v]", key, v, lo, hi))
		}
	}

	check("years", float64(p.Years), 1, 10)
	check("targetGW", p.TargetGW, 0.1, 10)

	check("launchCostPerKg", p.LaunchCostPerKg, 20, 2940)
	check("satelliteCostPerW", p.SatelliteCostPerW, 5, 40)
	check("specificPowerWPerKg", p.SpecificPowerWPerKg, 3, 75)
	check("satellitePowerKW", p.SatellitePowerKW, 1, 200)
	check("sunFraction", p.SunFraction, 0.6, 1)
	check("cellDegradation", p.CellDegradation, 0, 5)
	check("gpuFailureRate", p.GPUFailureRate, 0, 30)
	check("nreCost", p.NRECostM, 0, 10000)

	check("gasTurbineCapexPerKW", p.GasTurbineCapexPerKW, 500, 2500)
	check("electricalCostPerW", p.ElectricalCostPerW, 1, 10)
	check("mechanicalCostPerW", p.MechanicalCostPerW, 1, 10)
	check("civilCostPerW", p.CivilCostPerW, 0.5, 8)
	check("networkCostPerW", p.NetworkCostPerW, 0.5, 5)
	check("pue", p.PUE, 1.1, 1.5)
	check("gasPricePerMMBtu", p.GasPricePerMMBtu, 2, 15)
	check("heatRateBtuKwh", p.HeatRateBtuKWh, 5500, 12000)
	check("capacityFactor", p.CapacityFactor, 0.5, 1)

	check("solarAbsorptivity", p.SolarAbsorptivity, 0.7, 1)
	check("emissivityPV", p.EmissivityPV, 0.5, 0.98)
	check("emissivityRad", p.EmissivityRad, 0.5, 0.98)
	check("pvEfficiency", p.PVEfficiency, 0.1, 0.4)
	check("betaAngle", p.BetaAngleDeg, 60, 90)
	check("altitudeKm", p.AltitudeKm, 300, 1200)
	check("maxDieTempC", p.MaxDieTempC, 60, 110)
	check("tempDropC", p.TempDropC, 0, 30)

	return errors.Join(errs...)
}

// Apply returns a copy of p with the named parameter replaced. Keys match the
// JSON document keys. Unknown keys are an error; this is the only dynamic
// entry point into an otherwise statically typed set (used by the config
// loader and the sweep engine).
func Apply(p ParameterSet, key string, value float64) (ParameterSet, error) {
	switch key {
	case "years":
		p.Years = int(value)
	case "targetGW":
		p.TargetGW = value
	case "launchCostPerKg":
		p.LaunchCostPerKg = value
	case "satelliteCostPerW":
		p.SatelliteCostPerW = value
	case "specificPowerWPerKg":
		p.SpecificPowerWPerKg = value
	case "satellitePowerKW":
		p.SatellitePowerKW = value
	case "sunFraction":
		p.SunFraction = value
	case "cellDegradation":
		p.CellDegradation = value
	case "gpuFailureRate":
		p.GPUFailureRate = value
	case "nreCost":
		p.NRECostM = value
	case "gasTurbineCapexPerKW":
		p.GasTurbineCapexPerKW = value
	case "electricalCostPerW":
		p.ElectricalCostPerW = value
	case "mechanicalCostPerW":
		p.MechanicalCostPerW = value
	case "civilCostPerW":
		p.CivilCostPerW = value
	case "networkCostPerW":
		p.NetworkCostPerW = value
	case "pue":
		p.PUE = value
	case "gasPricePerMMBtu":
		p.GasPricePerMMBtu = value
	case "heatRateBtuKwh":
		p.HeatRateBtuKWh = value
	case "capacityFactor":
		p.CapacityFactor = value
	case "solarAbsorptivity":
		p.SolarAbsorptivity = value
	case "emissivityPV":
		p.EmissivityPV = value
	case "emissivityRad":
		p.EmissivityRad = value
	case "pvEfficiency":
		p.PVEfficiency = value
	case "betaAngle":
		p.BetaAngleDeg = value
	case "altitudeKm":
		p.AltitudeKm = value
	case "maxDieTempC":
		p.MaxDieTempC = value
	case "tempDropC":
		p.TempDropC = value
	default:
		return p, fmt.Errorf("unknown parameter %q", key)
	}
	return p, nil
}
