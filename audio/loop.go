// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"strings"
)

// Curve selects the gain shape of a crossfade.
type Curve int

const (
	// Linear fades with fadeIn = t, fadeOut = 1 - t.
	Linear Curve = iota
	// EqualPower fades with fadeIn = sqrt(t), fadeOut = sqrt(1 - t), so
	// fadeIn² + fadeOut² is always 1.
	EqualPower
)

var curveNames = map[Curve]string{
	Linear:     "linear",
	EqualPower: "equal-power",
}

// ParseCurve accepts the names returned by Curve.String, case-insensitively.
// "equalpower" and "equal_power" are accepted as well.
func ParseCurve(s string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return Linear, nil
	case "equal-power", "equalpower", "equal_power":
		return EqualPower, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCurve, s)
}

func (c Curve) String() string {
	if name, ok := curveNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Curve(%d)", int(c))
}

// Set implements pflag.Value.
func (c *Curve) Set(s string) error {
	parsed, err := ParseCurve(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c *Curve) Type() string { return "curve" }

func (c Curve) valid() bool {
	_, ok := curveNames[c]
	return ok
}

// Gains returns the fade-in and fade-out gains at position t in [0, 1).
func (c Curve) Gains(t float64) (fadeIn, fadeOut float64) {
	if c == EqualPower {
		return math.Sqrt(t), math.Sqrt(1 - t)
	}
	return t, 1 - t
}

// SynthesizeLoop folds the first crossfadeSeconds of buf into its tail so the
// jump at the loop point is softened.
//
// With n = floor(crossfadeSeconds * rate) and L = buf.Len(), the result has
// L - n samples per channel: out[i] = in[i+n], except for the last n samples
// which blend in[j] (fading in) with in[L-n+j] (fading out). Blended samples
// may leave [-1, 1]; they are not renormalized.
//
// It fails with ErrCrossfadeTooLong when the crossfade exceeds half of buf or
// n >= L, and with ErrInvalidCrossfade for negative or NaN durations.
// buf is never modified.
func SynthesizeLoop(buf *SampleBuffer, crossfadeSeconds float64, curve Curve) (*SampleBuffer, error) {
	if !curve.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCurve, curve)
	}
	if math.IsNaN(crossfadeSeconds) || crossfadeSeconds < 0 {
		return nil, fmt.Errorf("%w: %vs", ErrInvalidCrossfade, crossfadeSeconds)
	}

	duration := buf.Seconds()
	if crossfadeSeconds > duration/2 {
		return nil, fmt.Errorf("%w: %.3fs requested, at most %.3fs allowed for a %.3fs buffer",
			ErrCrossfadeTooLong, crossfadeSeconds, duration/2, duration)
	}

	inLen := buf.Len()
	fade := int(math.Floor(crossfadeSeconds * float64(buf.sampleRate)))
	if fade >= inLen {
		return nil, fmt.Errorf("%w: %d crossfade samples for a %d sample buffer",
			ErrCrossfadeTooLong, fade, inLen)
	}

	outLen := inLen - fade
	seam := outLen - fade
	out := newBuffer(buf.sampleRate, len(buf.channels), outLen)

	for ch, in := range buf.channels {
		dst := out.channels[ch]
		copy(dst, in[fade:])

		tail := in[inLen-fade:]
		for j := range fade {
			fadeIn, fadeOut := curve.Gains(float64(j) / float64(fade))
			dst[seam+j] = float32(float64(in[j])*fadeIn + float64(tail[j])*fadeOut)
		}
	}

	return out, nil
}
