package scoring

import (
	"math"

	"github.com/esgbuddy/esgbuddy/pkg/esg"
)

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// clamp bounds v to the 0-100 score range.
func clamp(v float64) float64 {
	return Clamp(v, 0, 100)
}

// NumericOr returns the metric's value if it is a number, else def.
// Text, booleans and unreported metrics all fall back to def.
func NumericOr(v esg.MetricValue, def float64) float64 {
	if f, ok := v.Float(); ok {
		return f
	}
	return def
}

// BoolToUnit returns 1 if the metric is exactly the boolean true, else 0.
func BoolToUnit(v esg.MetricValue) float64 {
	if v.IsTrue() {
		return 1
	}
	return 0
}

// roundHalfUp rounds to the nearest integer with ties going toward positive
// infinity, so 2.5 becomes 3 and -2.5 becomes -2.
func roundHalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

// RoundTo rounds v to the given number of decimal places using half-up
// rounding.
func RoundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return roundHalfUp(v*p) / p
}
