package filters

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Stage is one filtering step over a mono signal sampled at rate Hz.
type Stage func(signal []float64, rate float64) ([]float64, error)

// WienerStage returns a Stage running WienerFilter.
func WienerStage() Stage {
	return func(signal []float64, _ float64) ([]float64, error) {
		return WienerFilter(signal)
	}
}

// ClickRemovalStage returns a Stage running RemoveClicks with the given
// window length in samples.
func ClickRemovalStage(periodicity int) Stage {
	return func(signal []float64, rate float64) ([]float64, error) {
		return RemoveClicks(signal, rate, periodicity)
	}
}

// HighpassStage returns a Stage running HighpassFilter at cut Hz.
func HighpassStage(cut float64) Stage {
	return func(signal []float64, rate float64) ([]float64, error) {
		return HighpassFilter(signal, rate, cut)
	}
}

// BandpassStage returns a Stage running BandpassFilter.
func BandpassStage(lowcut, highcut float64, window Window) Stage {
	return func(signal []float64, rate float64) ([]float64, error) {
		return BandpassFilter(signal, rate, lowcut, highcut, window)
	}
}

// KaiserBandpassStage returns a Stage running KaiserBandpassFilter.
func KaiserBandpassStage(lowcut, highcut float64) Stage {
	return func(signal []float64, rate float64) ([]float64, error) {
		return KaiserBandpassFilter(signal, rate, lowcut, highcut)
	}
}

// ButterBandpassStage returns a Stage running ButterBandpassFilter.
func ButterBandpassStage(lowcut, highcut float64, order int) Stage {
	return func(signal []float64, rate float64) ([]float64, error) {
		return ButterBandpassFilter(signal, lowcut, highcut, rate, order)
	}
}

// MovingAverageStage returns a Stage running MovingAverage.
func MovingAverageStage(length int) Stage {
	return func(signal []float64, _ float64) ([]float64, error) {
		return MovingAverage(signal, length)
	}
}

// FilterBuffer runs stages in order over a mono float buffer and returns a
// new buffer with the same format. The input buffer is not modified.
func FilterBuffer(buf *audio.FloatBuffer, stages ...Stage) (*audio.FloatBuffer, error) {
	if err := checkMono(buf); err != nil {
		return nil, logInvalid("FilterBuffer", err)
	}

	out, err := runStages(buf.Data, float64(buf.Format.SampleRate), stages)
	if err != nil {
		return nil, err
	}

	return &audio.FloatBuffer{
		Format: &audio.Format{
			NumChannels: buf.Format.NumChannels,
			SampleRate:  buf.Format.SampleRate,
		},
		Data: out,
	}, nil
}

// FilterIntBuffer runs stages over a mono PCM buffer. Samples are scaled to
// [-1, 1] using SourceBitDepth (16-bit when unset), filtered, then clamped
// and scaled back. The input buffer is not modified.
func FilterIntBuffer(buf *audio.IntBuffer, stages ...Stage) (*audio.IntBuffer, error) {
	if buf == nil {
		return nil, logInvalid("FilterIntBuffer", fmt.Errorf("%w: nil buffer", ErrShapeMismatch))
	}
	if buf.Format == nil {
		return nil, logInvalid("FilterIntBuffer", fmt.Errorf("%w: buffer has no format", ErrShapeMismatch))
	}

	fbuf := buf.AsFloatBuffer()
	maxVal := getMaxValue(buf.SourceBitDepth)
	floats.Scale(1/maxVal, fbuf.Data)

	filtered, err := FilterBuffer(fbuf, stages...)
	if err != nil {
		return nil, err
	}

	data := make([]int, len(filtered.Data))
	for i, v := range filtered.Data {
		v = math.Max(-1, math.Min(1, v))
		data[i] = int(math.Round(v * maxVal))
	}

	return &audio.IntBuffer{
		Format:         filtered.Format,
		Data:           data,
		SourceBitDepth: buf.SourceBitDepth,
	}, nil
}

// checkMono verifies the buffer carries one channel with a known format.
func checkMono(buf *audio.FloatBuffer) error {
	if buf == nil {
		return fmt.Errorf("%w: nil buffer", ErrShapeMismatch)
	}
	if buf.Format == nil {
		return fmt.Errorf("%w: buffer has no format", ErrShapeMismatch)
	}
	if buf.Format.NumChannels != monoChannels {
		return fmt.Errorf("%w: %d channels, only mono is supported", ErrShapeMismatch, buf.Format.NumChannels)
	}
	return nil
}

// runStages feeds the output of each stage into the next. The input slice is
// copied first so stages never alias caller memory.
func runStages(signal []float64, rate float64, stages []Stage) ([]float64, error) {
	out := make([]float64, len(signal))
	copy(out, signal)

	for i, stage := range stages {
		next, err := stage(out, rate)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		out = next
	}

	log("FilterBuffer").WithFields(logrus.Fields{
		"stages":  len(stages),
		"samples": len(signal),
		"rate":    rate,
	}).Debug("Buffer filtered")

	return out, nil
}

// getMaxValue returns the full-scale integer value for a PCM bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample8:
		return maxInt8
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}
