// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// DefaultMinRegionSeconds is the shortest region Crop accepts.
const DefaultMinRegionSeconds = 0.2

// Cropper extracts a time range from a SampleBuffer.
//
// MinRegionSeconds is the shortest accepted result; zero or a negative
// value disables the check.
type Cropper struct {
	MinRegionSeconds float64
}

// NewCropper returns a Cropper using DefaultMinRegionSeconds.
func NewCropper() Cropper {
	return Cropper{MinRegionSeconds: DefaultMinRegionSeconds}
}

// Crop extracts [startSeconds, endSeconds) from buf using DefaultMinRegionSeconds.
func Crop(buf *SampleBuffer, startSeconds, endSeconds float64) (*SampleBuffer, error) {
	return NewCropper().Crop(buf, startSeconds, endSeconds)
}

// Crop copies the samples in [floor(start*rate), floor(end*rate)) of every
// channel into a new buffer with the same rate and channel count.
//
// It fails with ErrInvalidSelection unless 0 <= start < end <= duration,
// and with ErrRegionTooShort when the result is below MinRegionSeconds.
// buf is never modified.
func (c Cropper) Crop(buf *SampleBuffer, startSeconds, endSeconds float64) (*SampleBuffer, error) {
	duration := buf.Seconds()

	// The negated form also rejects NaN.
	if !(startSeconds >= 0 && startSeconds < endSeconds && endSeconds <= duration) {
		return nil, fmt.Errorf("%w: start=%.3fs end=%.3fs duration=%.3fs",
			ErrInvalidSelection, startSeconds, endSeconds, duration)
	}

	rate := float64(buf.sampleRate)
	startSample := int(math.Floor(startSeconds * rate))
	endSample := min(int(math.Floor(endSeconds*rate)), buf.Len())
	length := endSample - startSample

	if c.MinRegionSeconds > 0 && float64(length)/rate < c.MinRegionSeconds {
		return nil, fmt.Errorf("%w: %.3fs selected, minimum is %.3fs",
			ErrRegionTooShort, float64(length)/rate, c.MinRegionSeconds)
	}

	out := newBuffer(buf.sampleRate, len(buf.channels), length)
	for ch, data := range buf.channels {
		copy(out.channels[ch], data[startSample:endSample])
	}

	return out, nil
}
