// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audloop/audio"
	"github.com/ik5/audloop/utils"
)

const (
	// HeaderSize is the size of the canonical RIFF/WAVE header written by Encode.
	HeaderSize    = 44
	bitsPerSample = 16
	bytesPerValue = bitsPerSample / 8
)

// EncodedSize is the number of bytes Encode produces for buf.
func EncodedSize(buf *audio.SampleBuffer) int {
	return HeaderSize + dataSize(buf)
}

func dataSize(buf *audio.SampleBuffer) int {
	return buf.Len() * buf.ChannelCount() * bytesPerValue
}

// MaxChannels is the largest channel count whose block alignment fits the
// 16-bit header field.
const MaxChannels = math.MaxUint16 / bytesPerValue

// CheckLimits reports whether buf fits the fixed-width fields of the header:
// at most MaxChannels channels, a byte rate below 4 GiB/s and at most
// math.MaxUint32-36 bytes of sample data.
func CheckLimits(buf *audio.SampleBuffer) error {
	if buf.ChannelCount() > MaxChannels {
		return fmt.Errorf("%w: %d channels, at most %d", ErrTooManyChannels, buf.ChannelCount(), MaxChannels)
	}
	if uint64(buf.SampleRate())*uint64(buf.ChannelCount()*bytesPerValue) > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate of %d Hz x %d channels overflows the header",
			ErrUnsupportedWavLayout, buf.SampleRate(), buf.ChannelCount())
	}
	if int64(dataSize(buf)) > math.MaxUint32-36 {
		return fmt.Errorf("%w: %d data bytes", ErrDataTooLarge, dataSize(buf))
	}
	return nil
}

// Encode serializes buf as a canonical 16-bit PCM WAV file.
//
// Samples are clamped to [-1, 1], scaled by 32767 and truncated toward zero.
// Frames are interleaved: ch0, ch1, ..., chN for each sample index.
//
// Encode does not check the header limits; the size fields of a buffer that
// fails CheckLimits wrap around. Write checks them before writing anything.
func Encode(buf *audio.SampleBuffer) []byte {
	out := make([]byte, EncodedSize(buf))
	putHeader(out[:HeaderSize], buf)
	putFrames(out[HeaderSize:], buf, 0, buf.Len())
	return out
}

// Write streams the bytes of Encode(buf) to w in chunks, without
// materializing the whole file. Buffers failing CheckLimits are rejected
// before anything is written.
func Write(w io.Writer, buf *audio.SampleBuffer) error {
	if err := CheckLimits(buf); err != nil {
		return err
	}

	header := make([]byte, HeaderSize)
	putHeader(header, buf)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	// Write 8K frames at a time
	const chunkFrames = 8192
	if buf.Len() == 0 {
		return nil
	}

	frameSize := buf.ChannelCount() * bytesPerValue
	chunk := make([]byte, min(buf.Len(), chunkFrames)*frameSize)

	for start := 0; start < buf.Len(); start += chunkFrames {
		end := min(start+chunkFrames, buf.Len())
		data := chunk[:(end-start)*frameSize]
		putFrames(data, buf, start, end)

		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing WAV frames %d-%d: %w", start, end, err)
		}
	}

	return nil
}

func putHeader(header []byte, buf *audio.SampleBuffer) {
	numChannels := uint16(buf.ChannelCount())
	sampleRate := uint32(buf.SampleRate())
	blockAlign := numChannels * bytesPerValue
	byteRate := sampleRate * uint32(blockAlign)
	size := uint32(dataSize(buf))

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+size)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], sampleRate)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], size)
}

// putFrames quantizes frames [start, end) of buf into dst.
func putFrames(dst []byte, buf *audio.SampleBuffer, start, end int) {
	channels := buf.ChannelCount()
	off := 0
	for i := start; i < end; i++ {
		for ch := range channels {
			binary.LittleEndian.PutUint16(dst[off:off+2], uint16(utils.Float32ToInt16(buf.Sample(ch, i))))
			off += bytesPerValue
		}
	}
}
