// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audloop/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read fills p with interleaved samples and returns the number of values
	// decoded, always a multiple of Channels.
	Read(p []float32) (int, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.SampleBuffer, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg vorbis stream: %w", err)
	}

	return collect(dec)
}

func collect(dec oggReader) (*audio.SampleBuffer, error) {
	channels := dec.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("vorbis: %w: %d channels", audio.ErrInvalidBuffer, channels)
	}

	var data []float32
	chunk := make([]float32, 4096*channels)
	for {
		n, err := dec.Read(chunk)
		data = append(data, chunk[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding vorbis packets: %w", err)
		}
	}

	buf, err := audio.FromInterleaved(dec.SampleRate(), channels, data)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}
	return buf, nil
}
