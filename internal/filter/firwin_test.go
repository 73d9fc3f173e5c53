package filter

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-filters/internal/testutil"
)

const (
	testTaps199    = 199
	testCenter199  = 99
	testCutoff0_25 = 0.25
	testCutoff0_4  = 0.4
)

func TestFirwinParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  FirwinParams
		wantErr bool
	}{
		{
			name:   "valid_highpass",
			params: FirwinParams{NumTaps: 11, Cutoffs: []float64{0.3}, Window: Hann(11)},
		},
		{
			name:   "even_lowpass",
			params: FirwinParams{NumTaps: 10, Cutoffs: []float64{0.3}, Window: Hann(10), PassZero: true},
		},
		{
			name:    "even_highpass",
			params:  FirwinParams{NumTaps: 10, Cutoffs: []float64{0.3}, Window: Hann(10)},
			wantErr: true,
		},
		{
			name:    "no_taps",
			params:  FirwinParams{NumTaps: 0, Cutoffs: []float64{0.3}},
			wantErr: true,
		},
		{
			name:    "no_cutoffs",
			params:  FirwinParams{NumTaps: 11, Window: Hann(11)},
			wantErr: true,
		},
		{
			name:    "cutoff_at_nyquist",
			params:  FirwinParams{NumTaps: 11, Cutoffs: []float64{1}, Window: Hann(11)},
			wantErr: true,
		},
		{
			name:    "cutoff_at_dc",
			params:  FirwinParams{NumTaps: 11, Cutoffs: []float64{0}, Window: Hann(11)},
			wantErr: true,
		},
		{
			name:    "decreasing_cutoffs",
			params:  FirwinParams{NumTaps: 11, Cutoffs: []float64{0.4, 0.2}, Window: Hann(11)},
			wantErr: true,
		},
		{
			name:    "window_length_mismatch",
			params:  FirwinParams{NumTaps: 11, Cutoffs: []float64{0.3}, Window: Hann(9)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidParams)
				return
			}
			require.NoError(t, err)
		})
	}
}

// TestFirwin_HannHighpass pins the unscaled 199-tap highpass at a quarter
// of Nyquist.
func TestFirwin_HannHighpass(t *testing.T) {
	h, err := Firwin(FirwinParams{
		NumTaps: testTaps199,
		Cutoffs: []float64{testCutoff0_25},
		Window:  Hann(testTaps199),
	})
	require.NoError(t, err)
	require.Len(t, h, testTaps199)

	testutil.AssertSymmetric(t, h, defaultTolerance)
	testutil.AssertNoNaNOrInf(t, h)

	// δ minus the lowpass centre value f·sinc(0) = 0.25
	assert.InDelta(t, 0.75, h[testCenter199], defaultTolerance)
	assert.InDelta(t, -0.2250224201509125, h[testCenter199-1], 1e-12)
	assert.InDelta(t, 0.0, h[0], defaultTolerance, "Hann endpoints are zero")

	// Highpass: almost no DC, full gain at Nyquist
	testutil.AssertDCGain(t, h, 0, 1e-4)
	assert.InDelta(t, 1.0, cmplx.Abs(Response(h, nil, math.Pi)), magnitudeTolerance)
}

func TestFirwin_ScaledLowpassDCGain(t *testing.T) {
	for _, numTaps := range []int{101, 100, 727} {
		h, err := Firwin(FirwinParams{
			NumTaps:  numTaps,
			Cutoffs:  []float64{testCutoff0_25},
			Window:   KaiserWindow(numTaps, 5.65326),
			PassZero: true,
			Scale:    true,
		})
		require.NoError(t, err)
		testutil.AssertDCGain(t, h, 1.0, defaultTolerance)
		testutil.AssertSymmetric(t, h, defaultTolerance)
	}
}

func TestFirwin_ScaledBandpassMidpointGain(t *testing.T) {
	h, err := Firwin(FirwinParams{
		NumTaps: testTaps199,
		Cutoffs: []float64{testCutoff0_25, testCutoff0_4},
		Window:  Hamming(testTaps199),
		Scale:   true,
	})
	require.NoError(t, err)

	mid := math.Pi * (testCutoff0_25 + testCutoff0_4) / 2
	assert.InDelta(t, 1.0, cmplx.Abs(Response(h, nil, mid)), 1e-9)
	assert.Less(t, cmplx.Abs(Response(h, nil, 0)), 1e-2)
	assert.Less(t, cmplx.Abs(Response(h, nil, math.Pi)), 1e-2)
}

func TestFirwin_LowpassFrequencyResponse(t *testing.T) {
	h, err := Firwin(FirwinParams{
		NumTaps:  testTaps199,
		Cutoffs:  []float64{testCutoff0_25},
		Window:   Blackman(testTaps199),
		PassZero: true,
		Scale:    true,
	})
	require.NoError(t, err)

	resp := ComputeFrequencyResponse(h, 1024)
	for i, f := range resp.Frequencies {
		// f is normalized to the sample rate, cutoff 0.25 of Nyquist is 0.125
		switch {
		case f < 0.1:
			assert.InDelta(t, 1.0, resp.Magnitude[i], magnitudeTolerance, "passband at %f", f)
		case f > 0.15:
			assert.Less(t, MagnitudeDB(resp.Magnitude[i]), -60.0, "stopband at %f", f)
		}
	}
}

func TestSpectralInvert(t *testing.T) {
	h := []float64{0.1, 0.2, 0.4, 0.2, 0.1}
	got := SpectralInvert(h, 2)

	assert.Equal(t, []float64{-0.1, -0.2, 0.6, -0.2, -0.1}, got)
	assert.Equal(t, got, h, "inversion is in place")
}

func TestSinc(t *testing.T) {
	assert.InDelta(t, 1.0, sinc(0), defaultTolerance)
	assert.InDelta(t, 0.0, sinc(1), defaultTolerance)
	assert.InDelta(t, 2/math.Pi, sinc(0.5), defaultTolerance)
}
