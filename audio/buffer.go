// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// SampleBuffer is an in-memory, planar, multichannel PCM buffer.
//
// Samples are float32 values nominally in [-1, 1]. Values outside that range
// are kept as-is and only clamped when the buffer is quantized for output.
//
// A SampleBuffer is immutable once built: constructors copy their input and
// accessors hand out copies, so transforms never alias each other's memory.
//
// Only constructor-built buffers are valid input to the transforms. The zero
// value reports no channels, no samples and a zero duration.
type SampleBuffer struct {
	sampleRate int
	channels   [][]float32
}

// NewSampleBuffer builds a buffer from planar channel data.
// The channel slices are copied.
func NewSampleBuffer(sampleRate int, channels [][]float32) (*SampleBuffer, error) {
	if err := validate(sampleRate, channels); err != nil {
		return nil, err
	}

	data := make([][]float32, len(channels))
	for ch := range channels {
		data[ch] = append([]float32(nil), channels[ch]...)
	}

	return &SampleBuffer{sampleRate: sampleRate, channels: data}, nil
}

// NewSilentBuffer allocates a zero-filled buffer with the given shape.
func NewSilentBuffer(sampleRate, channelCount, length int) (*SampleBuffer, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidBuffer, length)
	}
	if err := validate(sampleRate, make([][]float32, max(channelCount, 0))); err != nil {
		return nil, err
	}

	return newBuffer(sampleRate, channelCount, length), nil
}

// FromInterleaved builds a buffer from frame-interleaved samples
// ([ch0, ch1, ..., chN, ch0, ...]). A trailing partial frame is dropped.
func FromInterleaved(sampleRate, channelCount int, data []float32) (*SampleBuffer, error) {
	if channelCount < 1 {
		return nil, fmt.Errorf("%w: channel count %d", ErrInvalidBuffer, channelCount)
	}

	frames := len(data) / channelCount
	buf, err := NewSilentBuffer(sampleRate, channelCount, frames)
	if err != nil {
		return nil, err
	}

	for f := range frames {
		base := f * channelCount
		for ch := range channelCount {
			buf.channels[ch][f] = data[base+ch]
		}
	}

	return buf, nil
}

// newBuffer allocates without validation; callers guarantee the shape.
func newBuffer(sampleRate, channelCount, length int) *SampleBuffer {
	channels := make([][]float32, channelCount)
	for ch := range channels {
		channels[ch] = make([]float32, length)
	}
	return &SampleBuffer{sampleRate: sampleRate, channels: channels}
}

func validate(sampleRate int, channels [][]float32) error {
	var mErr *multierror.Error

	if sampleRate <= 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("sample rate must be positive, got %d", sampleRate))
	}
	if len(channels) < 1 {
		mErr = multierror.Append(mErr, fmt.Errorf("at least one channel is required, got %d", len(channels)))
	}
	for ch := 1; ch < len(channels); ch++ {
		if len(channels[ch]) != len(channels[0]) {
			mErr = multierror.Append(mErr, fmt.Errorf("channel %d has %d samples, channel 0 has %d", ch, len(channels[ch]), len(channels[0])))
		}
	}

	if err := mErr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBuffer, err)
	}
	return nil
}

func (b *SampleBuffer) SampleRate() int   { return b.sampleRate }
func (b *SampleBuffer) ChannelCount() int { return len(b.channels) }

// Len is the number of samples per channel.
func (b *SampleBuffer) Len() int {
	if len(b.channels) == 0 {
		return 0
	}
	return len(b.channels[0])
}

// Seconds is the buffer duration in seconds, Len / SampleRate.
func (b *SampleBuffer) Seconds() float64 {
	if b.sampleRate <= 0 {
		return 0
	}
	return float64(b.Len()) / float64(b.sampleRate)
}

func (b *SampleBuffer) Duration() time.Duration {
	return time.Duration(b.Seconds() * float64(time.Second))
}

// Sample returns a single sample. It panics when ch or i is out of range.
func (b *SampleBuffer) Sample(ch, i int) float32 {
	return b.channels[ch][i]
}

// Channel returns a copy of channel ch.
func (b *SampleBuffer) Channel(ch int) ([]float32, error) {
	if ch < 0 || ch >= len(b.channels) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, ch, len(b.channels))
	}
	return append([]float32(nil), b.channels[ch]...), nil
}

// Interleaved returns the samples in frame order [ch0_i, ch1_i, ..., chN_i].
func (b *SampleBuffer) Interleaved() []float32 {
	n := len(b.channels)
	out := make([]float32, b.Len()*n)
	for ch, data := range b.channels {
		for i, s := range data {
			out[i*n+ch] = s
		}
	}
	return out
}

func (b *SampleBuffer) Clone() *SampleBuffer {
	out := newBuffer(b.sampleRate, len(b.channels), b.Len())
	for ch := range b.channels {
		copy(out.channels[ch], b.channels[ch])
	}
	return out
}

func (b *SampleBuffer) String() string {
	return fmt.Sprintf("SampleBuffer(channels=%d rate=%d length=%d)", len(b.channels), b.sampleRate, b.Len())
}
