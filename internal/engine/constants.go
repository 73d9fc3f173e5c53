package engine

// FFT convolution constants.
const (
	// Minimum kernel length to use FFT convolution (below this, direct is faster).
	// Benchmarking shows crossover around 400-500 taps with gonum FFT.
	minKernelForFFT = 400

	// Default FFT block size (power of 2 for efficiency)
	defaultFFTBlockSize = 512

	// The FFT size is grown until it holds this many kernel lengths
	fftSizeKernelMultiple = 2

	// A real FFT of size N has N/2 + 1 unique complex coefficients.
	fftHermitianDivisor = 2
)

// Convolution layout constants.
const (
	// "same" mode centres the output at offset (kernelLen-1)/2 of the full convolution
	sameModeDivisor = 2
)
