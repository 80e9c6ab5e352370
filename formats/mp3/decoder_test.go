// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audloop/audio"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate int
	pcm        []byte
	chunk      int
	offset     int
	err        error
}

func newMockMP3Reader(sampleRate int, samples ...int16) *mockMP3Reader {
	pcm := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[2*i:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: sampleRate, pcm: pcm, chunk: 3}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.pcm) {
		return 0, io.EOF
	}

	// Odd-sized reads exercise reassembly across Read calls.
	n := copy(buf[:min(len(buf), m.chunk)], m.pcm[m.offset:])
	m.offset += n
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not MP3 data")))
	require.Error(t, err)
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	require.Error(t, err)
}

func TestCollect_Deinterleaves(t *testing.T) {
	t.Parallel()

	dec := newMockMP3Reader(44100, 0, 16384, -16384, 32767, -32768, 8192)

	buf, err := collect(dec)
	require.NoError(t, err)

	assert.Equal(t, 44100, buf.SampleRate())
	assert.Equal(t, 2, buf.ChannelCount())
	require.Equal(t, 3, buf.Len())

	left, _ := buf.Channel(0)
	right, _ := buf.Channel(1)
	assert.Equal(t, []float32{0, -0.5, -1}, left)
	assert.Equal(t, []float32{0.5, 32767.0 / 32768.0, 0.25}, right)
}

func TestCollect_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	dec := newMockMP3Reader(22050, 100, 200, 300)
	buf, err := collect(dec)
	require.NoError(t, err)
	assert.Equal(t, 1, buf.Len())
}

func TestCollect_VariousSampleRates(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{8000, 22050, 32000, 44100, 48000} {
		buf, err := collect(newMockMP3Reader(rate, 1, 2))
		require.NoError(t, err)
		assert.Equal(t, rate, buf.SampleRate())
	}
}

func TestCollect_ReadError(t *testing.T) {
	t.Parallel()

	dec := newMockMP3Reader(44100, 1, 2)
	dec.err = io.ErrUnexpectedEOF

	_, err := collect(dec)
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestCollect_InvalidSampleRate(t *testing.T) {
	t.Parallel()

	_, err := collect(newMockMP3Reader(0, 1, 2))
	require.ErrorIs(t, err, audio.ErrInvalidBuffer)
}
