package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/window"
)

const (
	// Filter design limits
	minFilterTaps = 1

	// Normalized band edges (fraction of Nyquist)
	bandEdgeDC      = 0.0
	bandEdgeNyquist = 1.0

	// Sinc function constants
	sincZeroThreshold = 1e-10

	// Band midpoint divisor used for the scaling frequency
	bandMidpointDivisor = 2.0
)

// ErrInvalidParams is returned when filter design parameters are invalid.
var ErrInvalidParams = errors.New("invalid filter parameters")

// FirwinParams holds the parameters of a windowed-sinc FIR design.
type FirwinParams struct {
	// NumTaps is the filter length (number of coefficients)
	NumTaps int

	// Cutoffs are the band edges normalized to the Nyquist frequency,
	// strictly increasing, each in (0, 1).
	Cutoffs []float64

	// Window holds NumTaps window weights applied to the ideal response.
	Window []float64

	// PassZero selects whether the first band (starting at DC) is a passband.
	PassZero bool

	// Scale normalizes the response to unity gain at the centre of the
	// first passband (DC, Nyquist, or the band midpoint).
	Scale bool
}

// Validate checks if filter parameters are valid.
func (p *FirwinParams) Validate() error {
	if p.NumTaps < minFilterTaps {
		return fmt.Errorf("%w: filter too short: %d taps (minimum %d)", ErrInvalidParams, p.NumTaps, minFilterTaps)
	}

	if len(p.Cutoffs) == 0 {
		return fmt.Errorf("%w: at least one cutoff frequency is required", ErrInvalidParams)
	}

	prev := bandEdgeDC
	for i, c := range p.Cutoffs {
		if c <= bandEdgeDC || c >= bandEdgeNyquist {
			return fmt.Errorf("%w: cutoff[%d] = %f (must be in (0, 1))", ErrInvalidParams, i, c)
		}
		if i > 0 && c <= prev {
			return fmt.Errorf("%w: cutoffs must be strictly increasing", ErrInvalidParams)
		}
		prev = c
	}

	if len(p.Window) != p.NumTaps {
		return fmt.Errorf("%w: window length %d does not match %d taps", ErrInvalidParams, len(p.Window), p.NumTaps)
	}

	if p.passNyquist() && p.NumTaps%2 == 0 {
		return fmt.Errorf("%w: a filter with an even number of taps must have zero response at Nyquist", ErrInvalidParams)
	}

	return nil
}

// passNyquist reports whether the last band extends to the Nyquist frequency.
func (p *FirwinParams) passNyquist() bool {
	return (len(p.Cutoffs)%2 == 1) != p.PassZero
}

// bands expands the cutoffs into (left, right) passband edge pairs.
func (p *FirwinParams) bands() [][2]float64 {
	edges := make([]float64, 0, len(p.Cutoffs)+2)
	if p.PassZero {
		edges = append(edges, bandEdgeDC)
	}
	edges = append(edges, p.Cutoffs...)
	if p.passNyquist() {
		edges = append(edges, bandEdgeNyquist)
	}

	bands := make([][2]float64, 0, len(edges)/2)
	for i := 0; i+1 < len(edges); i += 2 {
		bands = append(bands, [2]float64{edges[i], edges[i+1]})
	}
	return bands
}

// Firwin designs a linear-phase FIR filter with the window method.
//
// The ideal response is a sum of sinc terms, one pair per passband:
//
//	h[n] = Σ right·sinc(right·m) - left·sinc(left·m),  m = n - (N-1)/2
//
// which is multiplied by the window. With Scale set, the taps are divided by
// the response at the centre of the first passband.
func Firwin(params FirwinParams) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	n := params.NumTaps
	alpha := float64(n-1) / windowNormalizationFactor
	bands := params.bands()

	h := make([]float64, n)
	for i := range n {
		m := float64(i) - alpha
		for _, band := range bands {
			left, right := band[0], band[1]
			h[i] += right * sinc(right*m)
			h[i] -= left * sinc(left*m)
		}
	}

	window.Values(params.Window).Transform(h)

	if params.Scale {
		left, right := bands[0][0], bands[0][1]
		var scaleFreq float64
		switch {
		case left == bandEdgeDC:
			scaleFreq = bandEdgeDC
		case right == bandEdgeNyquist:
			scaleFreq = bandEdgeNyquist
		default:
			scaleFreq = (left + right) / bandMidpointDivisor
		}

		var s float64
		for i, v := range h {
			m := float64(i) - alpha
			s += v * math.Cos(math.Pi*m*scaleFreq)
		}
		if math.Abs(s) > sincZeroThreshold {
			f64.Scale(h, h, 1/s)
		}
	}

	return h, nil
}

// sinc is the normalized sinc function sin(πx)/(πx).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	y := math.Pi * x
	return math.Sin(y) / y
}

// SpectralInvert negates every tap and adds one at center, turning a
// lowpass response into its complementary highpass (and vice versa). The
// operation is applied in place and h is returned.
func SpectralInvert(h []float64, center int) []float64 {
	for i := range h {
		h[i] = -h[i]
	}
	h[center]++
	return h
}
