// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audloop/audio"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels    = 2
	frameLength = channels * 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.SampleBuffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return collect(dec)
}

func collect(dec mp3Reader) (*audio.SampleBuffer, error) {
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3 frames: %w", err)
	}

	frames := len(pcm) / frameLength
	left := make([]float32, frames)
	right := make([]float32, frames)
	for f := range frames {
		off := f * frameLength
		left[f] = float32(int16(binary.LittleEndian.Uint16(pcm[off:]))) / 32768.0
		right[f] = float32(int16(binary.LittleEndian.Uint16(pcm[off+2:]))) / 32768.0
	}

	buf, err := audio.NewSampleBuffer(dec.SampleRate(), [][]float32{left, right})
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}
	return buf, nil
}
