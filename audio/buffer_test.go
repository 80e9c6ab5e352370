// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audloop/internal/audiotest"
)

func TestNewSampleBuffer(t *testing.T) {
	t.Parallel()

	buf, err := NewSampleBuffer(44100, audiotest.Silence(2, 44100))
	require.NoError(t, err)

	assert.Equal(t, 44100, buf.SampleRate())
	assert.Equal(t, 2, buf.ChannelCount())
	assert.Equal(t, 44100, buf.Len())
	assert.Equal(t, 1.0, buf.Seconds())
	assert.Equal(t, time.Second, buf.Duration())
}

func TestNewSampleBuffer_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   [][]float32
		problems   int
	}{
		{"zero rate", 0, audiotest.Silence(1, 10), 1},
		{"negative rate", -8000, audiotest.Silence(1, 10), 1},
		{"no channels", 8000, nil, 1},
		{"ragged channels", 8000, [][]float32{make([]float32, 3), make([]float32, 4), make([]float32, 5)}, 2},
		{"everything wrong", 0, [][]float32{make([]float32, 3), make([]float32, 4)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf, err := NewSampleBuffer(tt.sampleRate, tt.channels)
			require.ErrorIs(t, err, ErrInvalidBuffer)
			assert.Nil(t, buf)

			var mErr *multierror.Error
			require.ErrorAs(t, err, &mErr)
			assert.Len(t, mErr.Errors, tt.problems)
		})
	}
}

func TestNewSampleBuffer_CopiesInput(t *testing.T) {
	t.Parallel()

	channels := [][]float32{{0.1, 0.2, 0.3}}
	buf, err := NewSampleBuffer(8000, channels)
	require.NoError(t, err)

	channels[0][0] = 0.9
	assert.Equal(t, float32(0.1), buf.Sample(0, 0))

	got, err := buf.Channel(0)
	require.NoError(t, err)
	got[1] = 0.9
	assert.Equal(t, float32(0.2), buf.Sample(0, 1))
}

func TestNewSampleBuffer_AllowsOutOfRangeSamples(t *testing.T) {
	t.Parallel()

	buf, err := NewSampleBuffer(8000, [][]float32{{1.5, -2}})
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), buf.Sample(0, 0))
}

func TestNewSilentBuffer(t *testing.T) {
	t.Parallel()

	buf, err := NewSilentBuffer(48000, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, buf.ChannelCount())
	assert.Equal(t, 10, buf.Len())

	_, err = NewSilentBuffer(48000, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidBuffer)

	_, err = NewSilentBuffer(48000, 1, -1)
	assert.ErrorIs(t, err, ErrInvalidBuffer)
}

func TestFromInterleaved(t *testing.T) {
	t.Parallel()

	buf, err := FromInterleaved(8000, 2, []float32{1, -1, 2, -2, 3, -3, 4})
	require.NoError(t, err)

	require.Equal(t, 3, buf.Len())
	left, _ := buf.Channel(0)
	right, _ := buf.Channel(1)
	assert.Equal(t, []float32{1, 2, 3}, left)
	assert.Equal(t, []float32{-1, -2, -3}, right)

	assert.Equal(t, []float32{1, -1, 2, -2, 3, -3}, buf.Interleaved())

	_, err = FromInterleaved(8000, 0, []float32{1})
	assert.ErrorIs(t, err, ErrInvalidBuffer)
}

func TestSampleBuffer_ChannelOutOfRange(t *testing.T) {
	t.Parallel()

	buf, err := NewSilentBuffer(8000, 2, 4)
	require.NoError(t, err)

	_, err = buf.Channel(2)
	assert.ErrorIs(t, err, ErrInvalidChannel)
	_, err = buf.Channel(-1)
	assert.ErrorIs(t, err, ErrInvalidChannel)
}

func TestSampleBuffer_Clone(t *testing.T) {
	t.Parallel()

	buf, err := NewSampleBuffer(8000, audiotest.Index(2, 5))
	require.NoError(t, err)

	clone := buf.Clone()
	assert.Equal(t, buf, clone)
	assert.NotSame(t, buf, clone)

	clone.channels[0][0] = 42
	assert.Equal(t, float32(0), buf.Sample(0, 0))
}

func TestSampleBuffer_String(t *testing.T) {
	t.Parallel()

	buf, err := NewSilentBuffer(22050, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, "SampleBuffer(channels=2 rate=22050 length=7)", buf.String())
}

func TestSampleBuffer_ZeroValue(t *testing.T) {
	t.Parallel()

	var buf SampleBuffer

	assert.Equal(t, 0, buf.ChannelCount())
	assert.Equal(t, 0, buf.Len())
	assert.Zero(t, buf.Seconds())
	assert.Zero(t, buf.Duration())
	assert.Empty(t, buf.Interleaved())
	assert.Equal(t, "SampleBuffer(channels=0 rate=0 length=0)", buf.String())

	_, err := buf.Channel(0)
	assert.ErrorIs(t, err, ErrInvalidChannel)
}
