// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidBuffer indicates a SampleBuffer that breaks its shape invariants.
	ErrInvalidBuffer = errors.New("invalid sample buffer")

	// ErrInvalidSelection indicates a crop range with end <= start or outside the buffer.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrRegionTooShort indicates a crop shorter than the minimum region policy.
	ErrRegionTooShort = errors.New("region too short")

	// ErrCrossfadeTooLong indicates a crossfade longer than half the buffer.
	ErrCrossfadeTooLong = errors.New("crossfade too long")

	// ErrInvalidCrossfade indicates a negative or NaN crossfade duration.
	ErrInvalidCrossfade = errors.New("invalid crossfade duration")

	ErrUnknownCurve      = errors.New("unknown crossfade curve")
	ErrInvalidWidth      = errors.New("waveform width must be positive")
	ErrInvalidChannel    = errors.New("channel index out of range")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
