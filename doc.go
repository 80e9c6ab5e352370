// SPDX-License-Identifier: EPL-2.0

// Package audloop turns a region of a recording into a seamless loop.
//
// The pipeline is decode, crop, crossfade and encode:
//
//	reg := audloop.DefaultRegistry()
//	src, err := audloop.DecodeFile(ctx, reg, "drums.mp3")
//
//	opts := audloop.DefaultOptions()
//	opts.StartSeconds, opts.EndSeconds = 1.0, 3.0
//	loop, err := audloop.MakeLoop(ctx, src, opts)
//
//	out, err := os.Create(audloop.LoopFilename("drums.mp3")) // drums_loop.wav
//	err = wav.Write(out, loop)
//
// # Supported Formats
//
// DefaultRegistry decodes:
//   - WAV (PCM 16, 24 and 32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff, for both .aif and .aiff
//
// Output is always 16-bit PCM WAV at the source sample rate and channel
// count, written by formats/wav.
//
// # Logging
//
// MakeLoop and DecodeFile log through the go-belt logger carried by ctx.
// The audio and formats packages never log.
//
// See the audio package for the individual transforms.
package audloop
