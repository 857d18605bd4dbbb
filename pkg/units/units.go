package units

// Derived expands a single gigawatt power target into the watt-scale
// quantities used throughout the cost and thermal models.
//
// Derivation is pure arithmetic; a non-positive target propagates into
// non-finite downstream results and is the caller's responsibility to
// validate (see params.Validate).
type Derived struct {
	TargetPowerGW float64
	TargetPowerMW float64
	TargetPowerKW float64
	TargetPowerW  float64
}

// Derive expands targetGW into MW, kW and W.
func Derive(targetGW float64) Derived {
	mw := targetGW * 1000
	return Derived{
		TargetPowerGW: targetGW,
		TargetPowerMW: mw,
		TargetPowerKW: mw * 1000,
		TargetPowerW:  mw * 1e6,
	}
}
