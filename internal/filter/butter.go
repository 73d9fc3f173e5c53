package filter

import (
	"fmt"
	"math"
	"math/cmplx"
)

const (
	// Bilinear transform sample rate used for normalized frequencies
	// (Nyquist = 1, so fs = 2).
	bilinearFs = 2.0

	minButterOrder = 1
)

// ButterParams describes a digital Butterworth band-pass design.
type ButterParams struct {
	// Order of the analog lowpass prototype. The band-pass result has
	// 2*Order poles.
	Order int

	// Low and High are the -3 dB band edges normalized to Nyquist, 0 < Low < High < 1.
	Low  float64
	High float64
}

// Validate checks if the design parameters are valid.
func (p *ButterParams) Validate() error {
	if p.Order < minButterOrder {
		return fmt.Errorf("%w: order %d (minimum %d)", ErrInvalidParams, p.Order, minButterOrder)
	}
	if p.Low <= bandEdgeDC || p.Low >= bandEdgeNyquist {
		return fmt.Errorf("%w: low edge %f (must be in (0, 1))", ErrInvalidParams, p.Low)
	}
	if p.High <= bandEdgeDC || p.High >= bandEdgeNyquist {
		return fmt.Errorf("%w: high edge %f (must be in (0, 1))", ErrInvalidParams, p.High)
	}
	if p.Low >= p.High {
		return fmt.Errorf("%w: low edge %f must be below high edge %f", ErrInvalidParams, p.Low, p.High)
	}
	return nil
}

// ButterBandpass designs a digital Butterworth band-pass filter and returns
// its transfer function coefficients. b is the numerator (feedforward) and a
// the denominator (feedback), both of length 2*Order+1 with a[0] = 1.
//
// Design steps:
//  1. Analog Butterworth prototype poles on the unit circle, no zeros.
//  2. Pre-warp the band edges for the bilinear transform.
//  3. Lowpass to band-pass frequency transformation.
//  4. Bilinear transform to the z-plane.
//  5. Expand zeros and poles into polynomials.
func ButterBandpass(params ButterParams) (b, a []float64, err error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}

	z, p, k := butterPrototype(params.Order)

	w1 := prewarp(params.Low)
	w2 := prewarp(params.High)
	z, p, k = lowpassToBandpass(z, p, k, math.Sqrt(w1*w2), w2-w1)
	z, p, k = bilinear(z, p, k, bilinearFs)

	return zpkToTF(z, p, k)
}

// butterPrototype returns the zeros, poles and gain of an analog Butterworth
// lowpass with cutoff 1 rad/s.
func butterPrototype(order int) (z, p []complex128, k float64) {
	p = make([]complex128, order)
	for i := range order {
		m := float64(2*i - order + 1)
		p[i] = -cmplx.Exp(complex(0, math.Pi*m/float64(2*order)))
	}
	return []complex128{}, p, 1
}

// prewarp maps a normalized digital frequency to the analog frequency that
// the bilinear transform sends back onto it.
func prewarp(wn float64) float64 {
	return 2 * bilinearFs * math.Tan(math.Pi*wn/bilinearFs)
}

// lowpassToBandpass applies s → (s² + wo²) / (s·bw) to an analog lowpass.
func lowpassToBandpass(z, p []complex128, k, wo, bw float64) (zbp, pbp []complex128, kbp float64) {
	degree := len(p) - len(z)
	half := complex(bw/2, 0)
	wo2 := complex(wo*wo, 0)

	split := func(roots []complex128) []complex128 {
		out := make([]complex128, 0, 2*len(roots))
		lp := make([]complex128, len(roots))
		for i, r := range roots {
			lp[i] = r * half
		}
		for _, r := range lp {
			out = append(out, r+cmplx.Sqrt(r*r-wo2))
		}
		for _, r := range lp {
			out = append(out, r-cmplx.Sqrt(r*r-wo2))
		}
		return out
	}

	zbp = split(z)
	pbp = split(p)

	// Zeros at the origin for the excess poles
	zbp = append(zbp, make([]complex128, degree)...)

	kbp = k * math.Pow(bw, float64(degree))
	return zbp, pbp, kbp
}

// bilinear maps analog zeros, poles and gain to the z-plane with
// s = 2·fs·(z-1)/(z+1).
func bilinear(z, p []complex128, k, fs float64) (zz, pz []complex128, kz float64) {
	degree := len(p) - len(z)
	fs2 := complex(2*fs, 0)

	zz = make([]complex128, 0, len(z)+degree)
	numGain := complex(1, 0)
	for _, r := range z {
		zz = append(zz, (fs2+r)/(fs2-r))
		numGain *= fs2 - r
	}
	// Zeros at infinity move to Nyquist
	for range degree {
		zz = append(zz, -1)
	}

	pz = make([]complex128, len(p))
	denGain := complex(1, 0)
	for i, r := range p {
		pz[i] = (fs2 + r) / (fs2 - r)
		denGain *= fs2 - r
	}

	kz = k * real(numGain/denGain)
	return zz, pz, kz
}

// zpkToTF expands zeros and poles into polynomial coefficients in
// descending powers of z (ascending powers of z⁻¹).
func zpkToTF(z, p []complex128, k float64) (b, a []float64, err error) {
	bc := poly(z)
	ac := poly(p)

	b = make([]float64, len(bc))
	for i, c := range bc {
		b[i] = k * real(c)
	}
	a = make([]float64, len(ac))
	for i, c := range ac {
		a[i] = real(c)
	}

	if a[0] == 0 {
		return nil, nil, fmt.Errorf("%w: degenerate denominator", ErrInvalidParams)
	}
	return b, a, nil
}

// poly returns the coefficients of Π (x - r) for the given roots.
func poly(roots []complex128) []complex128 {
	c := make([]complex128, 1, len(roots)+1)
	c[0] = 1
	for _, r := range roots {
		c = append(c, 0)
		for i := len(c) - 1; i > 0; i-- {
			c[i] -= r * c[i-1]
		}
	}
	return c
}
