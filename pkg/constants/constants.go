package constants

// ConstantSet groups the physical and reference-hardware constants every
// model call depends on. Callers construct one (usually Default) and pass it
// explicitly; there is no package-level mutable state, so tests can substitute
// alternate sets for sensitivity runs without interference.
//
// Units:
//   - fluxes: W/m²
//   - temperatures: Kelvin
//   - StefanBoltzmann: W·m⁻²·K⁻⁴
//   - masses: kg, areas: m², distances: km
type ConstantSet struct {
	HoursPerYear float64

	// Reference satellite (Starlink V2 Mini class)
	RefSatMassKg  float64
	RefSatPowerKW float64
	RefSatArrayM2 float64

	// Reference launch vehicle (Starship class)
	RefPayloadKg           float64
	RefLOXGalPerLaunch     float64
	RefMethaneGalPerLaunch float64

	// Reference gas plant (GE 7HA class combined cycle)
	RefTurbinePowerMW float64
	RefPlantAcres     float64
	BTUPerCubicFoot   float64
	CubicFeetPerBCF   float64

	// Annual orbital operations cost as a fraction of hardware cost.
	OrbitalOpsFraction float64

	// Space environment
	SolarIrradianceWM2 float64 // solar constant at 1 AU, AM0 spectrum
	EarthIRFluxWM2     float64 // Earth's average infrared emission
	EarthAlbedo        float64 // average reflectivity, unitless
	DeepSpaceTempK     float64
	StefanBoltzmann    float64
	EarthRadiusKm      float64
}

// Default returns the reference constant set the shipped model is calibrated
// against.
func Default() ConstantSet {
	return ConstantSet{
		HoursPerYear: 8760,

		RefSatMassKg:  740,
		RefSatPowerKW: 27,
		RefSatArrayM2: 116,

		RefPayloadKg:           100000,
		RefLOXGalPerLaunch:     787000,
		RefMethaneGalPerLaunch: 755000,

		RefTurbinePowerMW: 430,
		RefPlantAcres:     30,
		BTUPerCubicFoot:   1000,
		CubicFeetPerBCF:   1e9,

		OrbitalOpsFraction: 0.01,

		SolarIrradianceWM2: 1361,
		EarthIRFluxWM2:     237,
		EarthAlbedo:        0.30,
		DeepSpaceTempK:     3,
		StefanBoltzmann:    5.67e-8,
		EarthRadiusKm:      6371.0,
	}
}
