package filters

import (
	"fmt"

	"github.com/tphakala/go-audio-filters/internal/engine"
)

// MovingAverage smooths signal with a length-sample boxcar of weight
// 1/length. The average is centred ("same" mode) and the signal is treated
// as zero outside its bounds, so the ends are pulled towards zero. The result
// always has len(signal) samples; length 1 returns a copy.
func MovingAverage(signal []float64, length int) ([]float64, error) {
	if length <= 0 {
		return nil, logInvalid("MovingAverage",
			fmt.Errorf("%w: length must be positive, got %d", ErrInvalidLength, length))
	}

	kernel := make([]float64, length)
	w := 1.0 / float64(length)
	for i := range kernel {
		kernel[i] = w
	}

	return engine.ConvolveSame(signal, kernel), nil
}
