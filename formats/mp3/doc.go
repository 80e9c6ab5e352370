// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into an audio.SampleBuffer.
//
// This package uses github.com/hajimehoshi/go-mp3. The whole stream is
// decoded into memory. go-mp3 always yields 16-bit stereo, so the resulting
// buffer has two channels even for mono files, with samples normalized by
// 32768:
//
//	file, _ := os.Open("audio.mp3")
//	buf, err := mp3.Decoder{}.Decode(file)
package mp3
