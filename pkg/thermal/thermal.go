// Package thermal computes the steady-state radiative balance of a bifacial
// orbital panel: photovoltaic cells on the sun-facing side, a radiator on the
// anti-sun side, with the compute load's waste heat routed back through the
// panel's cooling loop.
package thermal

import (
	"math"

	"github.com/powersat/orbitalcost/pkg/constants"
	"github.com/powersat/orbitalcost/pkg/params"
	"github.com/powersat/orbitalcost/pkg/viewfactor"
)

// VFModel selects which view-factor formulation feeds the heat balance.
type VFModel int

const (
	// VFGeometric is the orbit-averaged sun-tracking bifacial model. It is
	// the production choice: physically grounded, altitude-dependent.
	VFGeometric VFModel = iota
	// VFLegacy is the linear heuristic the site historically displayed.
	// It applies the same view factor to both faces and ignores altitude.
	VFLegacy
)

// Result is the flat output of one thermal evaluation. Heat terms are Watts,
// temperatures Kelvin/Celsius as named, areas m².
type Result struct {
	VFSideA float64 `json:"vfSideA"`
	VFSideB float64 `json:"vfSideB"`
	AreaM2  float64 `json:"areaM2"`

	// Heat loads
	PowerGeneratedW float64 `json:"powerGeneratedW"`
	QSolarWasteW    float64 `json:"qSolarWasteW"`
	QEarthIRW       float64 `json:"qEarthIRW"`
	QAlbedoW        float64 `json:"qAlbedoW"`
	QHeatLoopW      float64 `json:"qHeatLoopW"`
	TotalHeatInW    float64 `json:"totalHeatInW"`

	// Rejection at equilibrium
	QRadAW             float64 `json:"qRadAW"`
	QRadBW             float64 `json:"qRadBW"`
	RadiativeCapacityW float64 `json:"radiativeCapacityW"`

	// Temperatures & margin
	EqTempK         float64 `json:"eqTempK"`
	EqTempC         float64 `json:"eqTempC"`
	RadiatorTargetC float64 `json:"radiatorTargetC"`
	TempMarginC     float64 `json:"tempMarginC"`
	AreaSufficient  bool    `json:"areaSufficient"`
	AreaRequiredM2  float64 `json:"areaRequiredM2"`

	EffectiveEmissivity float64 `json:"effectiveEmissivity"`
}

// viewFactors resolves the per-face view factors for the configured model.
func viewFactors(p params.ParameterSet, c constants.ConstantSet, model VFModel) (vfA, vfB float64) {
	switch model {
	case VFLegacy:
		vf := viewfactor.Legacy(p.BetaAngleDeg)
		return vf, vf
	default:
		bf := viewfactor.OrbitAverage(c.EarthRadiusKm, p.AltitudeKm, p.BetaAngleDeg, viewfactor.DefaultOrbitSamples)
		return bf.SideA, bf.SideB
	}
}

// Calculate balances absorbed solar, Earth infrared, albedo and returned
// compute waste heat against radiative loss from both faces, for a panel of
// the given area (normally the orbital model's array area output).
//
// A zero emissivity sum divides by zero; physically inconsistent
// absorptivity/efficiency combinations can push the equilibrium below the
// deep-space temperature. Both propagate as out-of-range results rather than
// errors so that sweep callers can map where the model breaks.
func Calculate(p params.ParameterSet, c constants.ConstantSet, areaM2 float64, model VFModel) Result {
	vfA, vfB := viewFactors(p, c, model)

	// Solar input on the PV face: everything absorbed that is not exported
	// as electricity is an immediate thermal load.
	generatedW := c.SolarIrradianceWM2 * p.PVEfficiency * areaM2
	absorbedW := c.SolarIrradianceWM2 * p.SolarAbsorptivity * areaM2
	solarWasteW := absorbedW - generatedW

	// Earth IR couples to each face through its own view factor and
	// emissivity.
	earthIRW := c.EarthIRFluxWM2 * (vfA*p.EmissivityPV + vfB*p.EmissivityRad) * areaM2

	// Albedo only loads the sun-facing PV face; the radiator face has low
	// solar absorptivity. cos(β) may be negative and is not clamped.
	cosBeta := math.Cos(p.BetaAngleDeg * math.Pi / 180)
	albedoW := c.SolarIrradianceWM2 * c.EarthAlbedo * vfA * cosBeta * p.SolarAbsorptivity * areaM2

	// The downstream compute load turns every generated watt back into
	// waste heat through the panel's cooling loop.
	heatLoopW := generatedW

	totalHeatInW := solarWasteW + earthIRW + albedoW + heatLoopW

	// Both faces radiate to deep space.
	totalEmissivity := p.EmissivityPV + p.EmissivityRad
	sigma := c.StefanBoltzmann
	tSpace4 := math.Pow(c.DeepSpaceTempK, 4)
	eqTempK := math.Pow(totalHeatInW/(sigma*areaM2*totalEmissivity)+tSpace4, 0.25)
	eqTempC := eqTempK - 273.15

	deltaT4 := math.Pow(eqTempK, 4) - tSpace4
	qRadA := sigma * areaM2 * p.EmissivityPV * deltaT4
	qRadB := sigma * areaM2 * p.EmissivityRad * deltaT4

	radiatorTargetC := p.MaxDieTempC - p.TempDropC

	return Result{
		VFSideA: vfA,
		VFSideB: vfB,
		AreaM2:  areaM2,

		PowerGeneratedW: generatedW,
		QSolarWasteW:    solarWasteW,
		QEarthIRW:       earthIRW,
		QAlbedoW:        albedoW,
		QHeatLoopW:      heatLoopW,
		TotalHeatInW:    totalHeatInW,

		QRadAW:             qRadA,
		QRadBW:             qRadB,
		RadiativeCapacityW: qRadA + qRadB,

		EqTempK:         eqTempK,
		EqTempC:         eqTempC,
		RadiatorTargetC: radiatorTargetC,
		TempMarginC:     radiatorTargetC - eqTempC,
		AreaSufficient:  eqTempC <= radiatorTargetC,
		AreaRequiredM2:  RequiredArea(totalHeatInW, totalEmissivity, radiatorTargetC, c),

		EffectiveEmissivity: totalEmissivity / 2,
	}
}

// RequiredArea inverts the equilibrium equation: the panel area needed to
// reject totalHeatInW at the given surface temperature target.
func RequiredArea(totalHeatInW, totalEmissivity, targetTempC float64, c constants.ConstantSet) float64 {
	targetK := targetTempC + 273.15
	deltaT4 := math.Pow(targetK, 4) - math.Pow(c.DeepSpaceTempK, 4)
	return totalHeatInW / (c.StefanBoltzmann * totalEmissivity * deltaT4)
}
