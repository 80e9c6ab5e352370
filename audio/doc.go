// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory buffer and the transforms that turn
// a decoded recording into a seamless loop.
//
// # Sample Buffer
//
// SampleBuffer holds planar float32 samples nominally in [-1.0, 1.0] with a
// fixed sample rate. Every channel has the same length. Buffers are built
// through validating constructors and are never mutated afterwards; each
// transform returns a fresh buffer:
//
//	buf, err := audio.NewSampleBuffer(44100, [][]float32{left, right})
//	buf, err := audio.FromInterleaved(44100, 2, frames)
//
// # Cropping
//
// Crop extracts a time range, truncating both ends to whole samples:
//
//	region, err := audio.Crop(buf, 1.5, 4.0)
//
// Selections outside the buffer fail with ErrInvalidSelection, and results
// shorter than DefaultMinRegionSeconds fail with ErrRegionTooShort. Use a
// Cropper to change that minimum.
//
// # Loop Synthesis
//
// SynthesizeLoop overlaps the head of a region onto its tail:
//
//	loop, err := audio.SynthesizeLoop(region, 0.5, audio.EqualPower)
//
// The loop is shorter than the region by the crossfade length. Its tail is
// blended towards the samples that follow the crossfade in the region. For
// smooth material the jump from its last sample back to its first is no
// larger than the jump between the region's own last and first samples; the
// seam is softened, not guaranteed continuous.
//
// # Waveform Envelopes
//
// Downsample reduces one channel to a fixed number of min/max columns for
// drawing, and DownsampleChannels does the same for every channel in parallel.
//
// # Format Registry
//
// Registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("drums.WAV")
package audio
