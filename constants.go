package filters

// Filter design parameters
const (
	// FIRNumTaps is the length of the windowed-sinc highpass and bandpass filters.
	FIRNumTaps = 199

	// WienerSize is the neighbourhood used for the Wiener local statistics (2^5 - 1).
	WienerSize = 31

	// ClickThresholdFactor multiplies the standard deviation of the window
	// energies to give the click detection threshold.
	ClickThresholdFactor = 5.0

	// KaiserRippleDB is the stopband attenuation of the Kaiser bandpass design.
	KaiserRippleDB = 60.0

	// KaiserTransitionHz is the transition width of the Kaiser bandpass design.
	KaiserTransitionHz = 5.0

	// DefaultButterOrder is the usual Butterworth prototype order.
	DefaultButterOrder = 5

	// DefaultWindow is the window used by BandpassFilter when none is chosen.
	DefaultWindow = WindowHann
)

const (
	nyquistDivisor = 2.0

	// Normalized transition width must stay inside (0, 1)
	maxNormalizedWidth = 1.0

	// Integer sample range for common PCM bit depths
	bitsPerSample8  = 8
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt8  = 127.0
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	monoChannels = 1
)
