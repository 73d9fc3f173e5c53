// Package mathutil provides the special functions and Kaiser design
// formulas used by the FIR filter designs.
package mathutil

// BesselI0 computes the modified Bessel function of the first kind, order zero: I₀(x).
// This function is used in Kaiser window calculation for filter design.
//
// The value is the power series
//
//	I₀(x) = Σ ((x/2)^k / k!)²
//
// summed until a term no longer changes the result. All terms are positive,
// so the sum is accurate to a few ulps over the β range used by Kaiser
// windows.
func BesselI0(x float64) float64 {
	// (x/2)² makes the series even in x
	q := x * x / besselSeriesDivisor

	sum, term := 1.0, 1.0
	for k := 1; k <= besselMaxTerms; k++ {
		term *= q / float64(k*k)
		sum += term
		if term < besselEpsilon*sum {
			break
		}
	}

	return sum
}
