// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE audio.
//
// # Encoding
//
// Encode serializes an audio.SampleBuffer to a canonical 44-byte-header,
// 16-bit, little-endian, interleaved PCM file:
//
//	data := wav.Encode(buf)
//
// Write produces the same bytes but streams the sample data in chunks:
//
//	file, _ := os.Create("clip_loop.wav")
//	err := wav.Write(file, buf)
//
// Each sample is clamped to [-1, 1], multiplied by 32767 and truncated toward
// zero. Full-scale negative input therefore encodes as -32767, not -32768.
//
// # Decoding
//
// Decoder parses integer PCM files of 16, 24 or 32 bits per sample using
// github.com/go-audio/wav, so extra chunks (LIST, JUNK, ...) are skipped:
//
//	buf, err := wav.Decoder{}.Decode(file)
//
// Decoded samples are normalized by the full scale of their bit depth
// (32768 for 16-bit).
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not RIFF/WAVE
//   - ErrOnlyPCMSupported: the format tag is not integer PCM
//   - ErrUnsupportedBitDepth: bit depth other than 16, 24 or 32
//   - ErrDataTooLarge: Write was asked for more than 4 GiB of PCM data
package wav
