// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audloop/audio"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	maxFrames  int
	offset     int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	frames := len(buf) / m.channels
	if m.maxFrames > 0 {
		frames = min(frames, m.maxFrames)
	}
	n := copy(buf[:frames*m.channels], m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	require.Error(t, err)
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	require.Error(t, err)
}

func TestCollect_Mono(t *testing.T) {
	t.Parallel()

	dec := &mockOggVorbisReader{
		sampleRate: 48000,
		channels:   1,
		samples:    []float32{0.1, 0.2, 0.3, 0.4, 0.5},
		maxFrames:  2,
	}

	buf, err := collect(dec)
	require.NoError(t, err)

	assert.Equal(t, 48000, buf.SampleRate())
	got, _ := buf.Channel(0)
	assert.Equal(t, []float32{0.1, 0.2, 0.3, 0.4, 0.5}, got)
}

func TestCollect_MultipleChannels(t *testing.T) {
	t.Parallel()

	dec := &mockOggVorbisReader{
		sampleRate: 44100,
		channels:   3,
		samples: []float32{
			0.1, 0.2, 0.3,
			0.4, 0.5, 0.6,
		},
		maxFrames: 1,
	}

	buf, err := collect(dec)
	require.NoError(t, err)
	require.Equal(t, 3, buf.ChannelCount())
	require.Equal(t, 2, buf.Len())

	for ch, want := range [][]float32{{0.1, 0.4}, {0.2, 0.5}, {0.3, 0.6}} {
		got, err := buf.Channel(ch)
		require.NoError(t, err)
		assert.Equal(t, want, got, "channel %d", ch)
	}
}

func TestCollect_LargeStream(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 2*10000)
	for i := range samples {
		samples[i] = float32(i%7) / 7
	}
	dec := &mockOggVorbisReader{sampleRate: 22050, channels: 2, samples: samples}

	buf, err := collect(dec)
	require.NoError(t, err)
	assert.Equal(t, 10000, buf.Len())
	assert.Equal(t, samples, buf.Interleaved())
}

func TestCollect_ReadError(t *testing.T) {
	t.Parallel()

	dec := &mockOggVorbisReader{sampleRate: 44100, channels: 2, err: io.ErrUnexpectedEOF}

	_, err := collect(dec)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestCollect_NoChannels(t *testing.T) {
	t.Parallel()

	_, err := collect(&mockOggVorbisReader{sampleRate: 44100})
	require.ErrorIs(t, err, audio.ErrInvalidBuffer)
}
