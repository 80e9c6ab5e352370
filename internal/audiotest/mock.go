// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic planar test signals.
//
// The generators return [][]float32 (one slice per channel) rather than an
// audio.SampleBuffer so the audio package's own tests can use them without
// an import cycle.
package audiotest

import "math"

// Waveform returns the sample value at index sample of channel.
type Waveform func(sample int, channel int) float32

// Planar renders waveform into channels slices of length samples each.
func Planar(channels, length int, waveform Waveform) [][]float32 {
	out := make([][]float32, channels)
	for ch := range out {
		out[ch] = make([]float32, length)
		for i := range out[ch] {
			out[ch][i] = waveform(i, ch)
		}
	}
	return out
}

// Silence generates all-zero channels.
func Silence(channels, length int) [][]float32 {
	return Planar(channels, length, func(int, int) float32 { return 0 })
}

// Constant generates channels holding value everywhere.
func Constant(channels, length int, value float32) [][]float32 {
	return Planar(channels, length, func(int, int) float32 { return value })
}

// Sine generates a sine tone of frequency Hz at sampleRate on every channel.
func Sine(sampleRate, channels, length int, frequency float64) [][]float32 {
	return Planar(channels, length, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// Ramp generates a rising line from -1 towards 1 over length samples.
// Channel c is offset by c/length so channels can be told apart.
func Ramp(channels, length int) [][]float32 {
	return Planar(channels, length, func(sample int, channel int) float32 {
		return -1 + 2*float32(sample+channel)/float32(length)
	})
}

// Index generates channels where every sample equals its index plus
// 1000*channel, which makes copy offsets easy to assert.
func Index(channels, length int) [][]float32 {
	return Planar(channels, length, func(sample int, channel int) float32 {
		return float32(sample + 1000*channel)
	})
}
