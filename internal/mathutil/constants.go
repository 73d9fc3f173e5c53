package mathutil

// Bessel power series constants
const (
	besselSeriesDivisor = 4.0   // (x/2)² = x²/4
	besselMaxTerms      = 500   // enough for |x| well beyond any Kaiser β
	besselEpsilon       = 1e-17 // stop once a term is below this fraction of the sum
)

// Kaiser window formula constants
// From Kaiser & Schafer's empirical formulas
const (
	// Attenuation thresholds for β calculation
	kaiserAttHigh   = 50.0 // High attenuation threshold (dB)
	kaiserAttMedium = 21.0 // Medium attenuation threshold (dB)

	// Kaiser β formula coefficients
	kaiserBetaHighCoeff1 = 0.1102 // Coefficient for high attenuation
	kaiserBetaHighOffset = 8.7    // Offset for high attenuation

	kaiserBetaMediumCoeff1 = 0.5842  // Primary coefficient for medium attenuation
	kaiserBetaMediumPower  = 0.4     // Power for medium attenuation formula
	kaiserBetaMediumCoeff2 = 0.07886 // Secondary coefficient for medium attenuation
)

// Kaiser order estimation constants
const (
	// numtaps = (A - 7.95) / (2.285 * π * width) + 1
	kaiserOrderOffset     = 7.95
	kaiserOrderMultiplier = 2.285

	// Below this ripple the Kaiser formulas are not valid
	kaiserMinRippleDB = 8.0
)
