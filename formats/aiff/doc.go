// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files into an
// audio.SampleBuffer.
//
// This package uses github.com/go-audio/aiff. Integer PCM of 8, 16, 24 and
// 32 bits is supported; samples are normalized by the full scale of their
// bit depth:
//
//	file, _ := os.Open("audio.aif")
//	buf, err := aiff.Decoder{}.Decode(file)
//
// Readers that cannot seek are buffered in memory first, because
// go-audio/aiff needs io.ReadSeeker.
package aiff
