// Package viewfactor computes the fraction of a flat plate's radiative
// hemisphere occupied by the Earth disc, as a function of orbital altitude
// and plate orientation.
//
// Two formulations are exported: the geometric model (Nadir, TiltedFromCos,
// OrbitAverage), which is the production formulation, and Legacy, the linear
// heuristic the site historically displayed, kept for reproducing old
// figures. Legacy has no altitude dependence and underpredicts Earth loading
// at high beta angles.
package viewfactor

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// edgeOnFloor is the fraction of the nadir view factor retained by a plate
// that is edge-on to or facing away from the Earth. The Earth subtends about
// a 67° half-angle at typical LEO altitudes, so no orientation is fully
// blind to it.
const edgeOnFloor = 0.05

// EarthAngularRadius returns the Earth's angular half-angle in radians as
// seen from the given altitude: arcsin(Re / (Re + h)).
func EarthAngularRadius(earthRadiusKm, altitudeKm float64) float64 {
	return math.Asin(earthRadiusKm / (earthRadiusKm + altitudeKm))
}

// Nadir returns the view factor of a plate facing directly toward the Earth,
// sin²(θ) with θ the Earth's angular half-angle. This is the maximum view
// factor any orientation can reach; it tends to 1 as altitude tends to 0.
func Nadir(earthRadiusKm, altitudeKm float64) float64 {
	s := earthRadiusKm / (earthRadiusKm + altitudeKm)
	return s * s
}

// TiltedFromCos returns the view factor of a plate whose normal makes angle
// γ with the nadir direction, given cos(γ) directly. Working with the cosine
// avoids the arccos/cos round trip, which loses precision near γ = 90°.
//
// First-order model: VF = VF_nadir · cos(γ) for cos(γ) > 0, floored at 5% of
// the nadir value for edge-on and away-facing orientations.
func TiltedFromCos(earthRadiusKm, altitudeKm, cosGamma float64) float64 {
	nadir := Nadir(earthRadiusKm, altitudeKm)
	if cosGamma <= 0 {
		return nadir * edgeOnFloor
	}
	return nadir * cosGamma
}

// Bifacial holds orbit-averaged view factors for the two faces of a
// sun-tracking bifacial panel. SideA is the sun-facing (PV) face, SideB the
// anti-sun (radiator) face.
type Bifacial struct {
	SideA float64
	SideB float64
}

// Total returns the combined view factor of both faces.
func (b Bifacial) Total() float64 { return b.SideA + b.SideB }

// DefaultOrbitSamples is the angular resolution used when averaging over one
// revolution unless the caller chooses otherwise.
const DefaultOrbitSamples = 360

// OrbitAverage computes per-face view factors for a sun-tracking bifacial
// panel averaged over one orbital revolution, sampled at n equally spaced
// true-anomaly angles (DefaultOrbitSamples if n <= 0).
//
// The panel normal tracks the sun. At true anomaly ν on an orbit with beta
// angle β, the cosine of the angle between the sun-facing normal and nadir
// is cos(γ) = cos(β)·cos(ν); the anti-sun face sees −cos(γ).
func OrbitAverage(earthRadiusKm, altitudeKm, betaDeg float64, n int) Bifacial {
	if n <= 0 {
		n = DefaultOrbitSamples
	}
	cosBeta := math.Cos(betaDeg * math.Pi / 180)

	sideA := make([]float64, n)
	sideB := make([]float64, n)
	for i := 0; i < n; i++ {
		nu := 2 * math.Pi * float64(i) / float64(n)
		cosGamma := cosBeta * math.Cos(nu)
		sideA[i] = TiltedFromCos(earthRadiusKm, altitudeKm, cosGamma)
		sideB[i] = TiltedFromCos(earthRadiusKm, altitudeKm, -cosGamma)
	}

	return Bifacial{
		SideA: stat.Mean(sideA, nil),
		SideB: stat.Mean(sideB, nil),
	}
}

// Legacy is the linear heuristic historically driving the displayed outputs:
// VF = 0.08 + (90 − β)·0.002. It ignores altitude entirely.
func Legacy(betaDeg float64) float64 {
	return 0.08 + (90-betaDeg)*0.002
}
