// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into an audio.SampleBuffer.
//
// This package uses github.com/jfreymuth/oggvorbis. Samples arrive as
// interleaved float32 values and are split into planar channels:
//
//	file, _ := os.Open("audio.ogg")
//	buf, err := vorbis.Decoder{}.Decode(file)
package vorbis
