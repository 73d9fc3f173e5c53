package filters

import (
	"errors"
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-filters/internal/testutil"
)

func monoBuffer(data []float64, rate int) *audio.FloatBuffer {
	return &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:   data,
	}
}

func TestFilterBuffer_NoStagesCopies(t *testing.T) {
	buf := monoBuffer([]float64{1, 2, 3}, 8000)

	out, err := FilterBuffer(buf)
	require.NoError(t, err)
	assert.Equal(t, buf.Data, out.Data)
	assert.Equal(t, 8000, out.Format.SampleRate)
	assert.Equal(t, 1, out.Format.NumChannels)

	out.Data[0] = 42
	assert.InDelta(t, 1.0, buf.Data[0], 0, "input buffer must not be shared")
}

func TestFilterBuffer_MatchesDirectCalls(t *testing.T) {
	signal := testutil.Noise(2000, 0.5, 21)
	buf := monoBuffer(signal, 8000)

	out, err := FilterBuffer(buf,
		HighpassStage(200),
		MovingAverageStage(5),
		ButterBandpassStage(300, 3000, DefaultButterOrder),
	)
	require.NoError(t, err)

	want, err := HighpassFilter(signal, 8000, 200)
	require.NoError(t, err)
	want, err = MovingAverage(want, 5)
	require.NoError(t, err)
	want, err = ButterBandpassFilter(want, 300, 3000, 8000, DefaultButterOrder)
	require.NoError(t, err)

	assert.InDeltaSlice(t, want, out.Data, 1e-12)
}

func TestFilterBuffer_AllStages(t *testing.T) {
	signal := testutil.Noise(4000, 0.5, 22)
	buf := monoBuffer(signal, 1000)

	out, err := FilterBuffer(buf,
		ClickRemovalStage(10),
		WienerStage(),
		BandpassStage(100, 300, WindowHamming),
		KaiserBandpassStage(100, 300),
	)
	require.NoError(t, err)
	require.Len(t, out.Data, len(signal))
	testutil.AssertNoNaNOrInf(t, out.Data)
}

func TestFilterBuffer_StageErrorWrapped(t *testing.T) {
	buf := monoBuffer(testutil.Noise(100, 1, 1), 8000)

	// Cutoff above Nyquist for 8 kHz
	_, err := FilterBuffer(buf, MovingAverageStage(3), HighpassStage(5000))
	require.ErrorIs(t, err, ErrInvalidRange)
	assert.Contains(t, err.Error(), "stage 1")
}

func TestFilterBuffer_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		buf  *audio.FloatBuffer
	}{
		{"nil_buffer", nil},
		{"nil_format", &audio.FloatBuffer{Data: []float64{1}}},
		{"stereo", &audio.FloatBuffer{
			Format: &audio.Format{NumChannels: 2, SampleRate: 8000},
			Data:   []float64{1, 2, 3, 4},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FilterBuffer(tt.buf, WienerStage())
			require.ErrorIs(t, err, ErrShapeMismatch)
		})
	}
}

func TestFilterIntBuffer(t *testing.T) {
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           []int{0, 16384, -16384, 32767, -32767},
		SourceBitDepth: 16,
	}

	out, err := FilterIntBuffer(buf, MovingAverageStage(1))
	require.NoError(t, err)
	assert.Equal(t, buf.Data, out.Data)
	assert.Equal(t, 16, out.SourceBitDepth)
	assert.Equal(t, 8000, out.Format.SampleRate)
}

func TestFilterIntBuffer_ClampsToFullScale(t *testing.T) {
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           []int{30000, 30000, -30000},
		SourceBitDepth: 16,
	}

	double := func(signal []float64, _ float64) ([]float64, error) {
		out := make([]float64, len(signal))
		for i, v := range signal {
			out[i] = 2 * v
		}
		return out, nil
	}

	out, err := FilterIntBuffer(buf, double)
	require.NoError(t, err)
	assert.Equal(t, []int{32767, 32767, -32767}, out.Data)
}

func TestFilterIntBuffer_ShapeMismatch(t *testing.T) {
	_, err := FilterIntBuffer(nil)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FilterIntBuffer(&audio.IntBuffer{Data: []int{1}})
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FilterIntBuffer(&audio.IntBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: 8000},
		Data:   []int{1, 2},
	})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestStage_CustomError(t *testing.T) {
	boom := errors.New("boom")
	failing := func([]float64, float64) ([]float64, error) { return nil, boom }

	_, err := FilterBuffer(monoBuffer([]float64{1}, 8000), failing)
	require.ErrorIs(t, err, boom)
}

func TestGetMaxValue(t *testing.T) {
	assert.InDelta(t, maxInt8, getMaxValue(8), 0)
	assert.InDelta(t, maxInt16, getMaxValue(16), 0)
	assert.InDelta(t, maxInt24, getMaxValue(24), 0)
	assert.InDelta(t, maxInt32, getMaxValue(32), 0)
	assert.InDelta(t, maxInt16, getMaxValue(0), 0)
}
