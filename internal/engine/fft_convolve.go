package engine

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTConvolver performs overlap-save FFT convolution for long kernels.
// This is O(N log N) vs O(N×M) for direct convolution.
//
// It computes the same "valid" correlation as f64.ConvolveValid:
//
//	dst[i] = Σ_k signal[i+k] * kernel[k],  i = 0 .. len(signal)-len(kernel)
//
// Overlap-save method:
//  1. Read the signal in blocks of fftSize samples, advancing by blockSize
//  2. Each block yields blockSize = fftSize - kernelLen + 1 valid outputs
//  3. The first kernelLen-1 outputs of each block are circular wrap and discarded
type FFTConvolver struct {
	fft       *fourier.FFT
	fftSize   int
	blockSize int

	// Kernel spectrum, computed once
	kernelFFT []complex128
	kernelLen int
	scale     float64 // 1/fftSize, gonum's inverse transform is unnormalized

	// Working buffers
	block      []float64
	blockFFT   []complex128
	productFFT []complex128
	inverse    []float64
}

// NewFFTConvolver creates a new FFT convolver for the given kernel.
// It returns nil for an empty kernel.
func NewFFTConvolver(kernel []float64) *FFTConvolver {
	kernelLen := len(kernel)
	if kernelLen == 0 {
		return nil
	}

	fftSize := defaultFFTBlockSize
	for fftSize < fftSizeKernelMultiple*kernelLen {
		fftSize *= 2
	}

	fft := fourier.NewFFT(fftSize)

	// Circular convolution gives Σ h[j]·x[n-j]; reversing the kernel turns it
	// into the correlation form above.
	padded := make([]float64, fftSize)
	for i := range kernelLen {
		padded[i] = kernel[kernelLen-1-i]
	}

	spectrumLen := fftSize/fftHermitianDivisor + 1

	return &FFTConvolver{
		fft:        fft,
		fftSize:    fftSize,
		blockSize:  fftSize - kernelLen + 1,
		kernelFFT:  fft.Coefficients(nil, padded),
		kernelLen:  kernelLen,
		scale:      1.0 / float64(fftSize),
		block:      make([]float64, fftSize),
		blockFFT:   make([]complex128, spectrumLen),
		productFFT: make([]complex128, spectrumLen),
		inverse:    make([]float64, fftSize),
	}
}

// Convolve writes the valid correlation of signal with the kernel into dst.
// dst must have length >= len(signal) - kernelLen + 1.
func (c *FFTConvolver) Convolve(dst, signal []float64) {
	signalLen := len(signal)
	outputLen := signalLen - c.kernelLen + 1
	if outputLen <= 0 || len(dst) < outputLen {
		return
	}

	overlap := c.kernelLen - 1

	for outIdx := 0; outIdx < outputLen; {
		clear(c.block)
		copyLen := min(c.fftSize, signalLen-outIdx)
		copy(c.block, signal[outIdx:outIdx+copyLen])

		c.blockFFT = c.fft.Coefficients(c.blockFFT, c.block)
		c128.Mul(c.productFFT, c.blockFFT, c.kernelFFT)
		c.inverse = c.fft.Sequence(c.inverse, c.productFFT)
		f64.Scale(c.inverse, c.inverse, c.scale)

		valid := min(c.blockSize, outputLen-outIdx)
		copy(dst[outIdx:outIdx+valid], c.inverse[overlap:overlap+valid])

		outIdx += valid
	}
}

// UsesFFT reports whether ConvolveValid takes the FFT path for a kernel of
// the given length.
func UsesFFT(kernelLen int) bool {
	return kernelLen >= minKernelForFFT
}

// ConvolveValid computes the valid correlation of signal and kernel into
// dst, using direct SIMD convolution for short kernels and overlap-save FFT
// convolution for long ones.
func ConvolveValid(dst, signal, kernel []float64) {
	if !UsesFFT(len(kernel)) {
		f64.ConvolveValid(dst, signal, kernel)
		return
	}

	if conv := NewFFTConvolver(kernel); conv != nil {
		conv.Convolve(dst, signal)
	}
}
