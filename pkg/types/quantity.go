package types

import "fmt"

// Dollars is a float64 wrapper representing an absolute USD amount.
type Dollars float64

// Humanized returns a human-readable string with automatic unit ($, $K, $M, $B, $T).
func (d Dollars) Humanized() string {
	v := float64(d)
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%s$%.2fT", neg, v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%s$%.2fB", neg, v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%s$%.2fM", neg, v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%s$%.2fK", neg, v/1e3)
	default:
		return fmt.Sprintf("%s$%.2f", neg, v)
	}
}

// Watts is a float64 wrapper representing power in watts.
type Watts float64

// Humanized returns a human-readable string with automatic unit (W, kW, MW, GW).
func (w Watts) Humanized() string {
	v := float64(w)
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2f GW", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2f MW", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f kW", v/1e3)
	default:
		return fmt.Sprintf("%.2f W", v)
	}
}

// Kilograms is a float64 wrapper representing mass in kilograms.
type Kilograms float64

// Humanized returns a human-readable string with automatic unit (kg, t, kt).
func (k Kilograms) Humanized() string {
	v := float64(k)
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.2f kt", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f t", v/1e3)
	default:
		return fmt.Sprintf("%.1f kg", v)
	}
}
