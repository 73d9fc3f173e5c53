package filters

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/stat"
)

// CalculateEnergy returns the energy (sum of squares) of consecutive,
// non-overlapping windows of period samples. A trailing partial window is
// dropped, so the result has len(signal)/period entries.
//
// The third argument, overlap, is accepted for call compatibility and has
// no effect.
func CalculateEnergy(signal []float64, period, _ int) ([]float64, error) {
	if period <= 0 {
		return nil, logInvalid("CalculateEnergy",
			fmt.Errorf("%w: period must be positive, got %d", ErrInvalidLength, period))
	}

	windows := len(signal) / period
	energy := make([]float64, windows)
	for i := range windows {
		w := signal[i*period : (i+1)*period]
		energy[i] = f64.DotProduct(w, w)
	}

	return energy, nil
}

// RemoveClicks silences short impulsive events. The signal is cut into
// windows of periodicity samples; every window whose energy exceeds
// ClickThresholdFactor times the standard deviation of all window energies
// is zeroed together with one window on each side.
//
// The input is not modified; a new slice is returned. The sample rate
// argument is accepted for call compatibility and has no effect.
func RemoveClicks(signal []float64, _ float64, periodicity int) ([]float64, error) {
	energy, err := CalculateEnergy(signal, periodicity, 0)
	if err != nil {
		return nil, err
	}

	out := slices.Clone(signal)
	if out == nil {
		out = []float64{}
	}
	if len(energy) == 0 {
		return out, nil
	}

	threshold := ClickThresholdFactor * stat.PopStdDev(energy, nil)

	clicks := 0
	for idx, e := range energy {
		if e <= threshold {
			continue
		}
		clicks++

		start := max(idx*periodicity-periodicity, 0)
		end := min(idx*periodicity+2*periodicity, len(out))
		clear(out[start:end])
	}

	log("RemoveClicks").WithFields(logrus.Fields{
		"clicks":      clicks,
		"threshold":   threshold,
		"periodicity": periodicity,
	}).Debug("Click detection finished")

	return out, nil
}
