// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audloop/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.SampleBuffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	return collect(dec, int(dec.BitDepth))
}

func fullScale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 8:
		return 128.0, nil
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
}

func collect(dec aiffReader, bitDepth int) (*audio.SampleBuffer, error) {
	scale, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	var data []float32
	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, 4096*format.NumChannels),
		Format: format,
	}
	for {
		n, err := dec.PCMBuffer(intBuf)
		for _, v := range intBuf.Data[:n] {
			data = append(data, float32(v)/scale)
		}

		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding aiff pcm: %w", err)
		}
		if n == 0 || errors.Is(err, io.EOF) {
			break
		}
	}

	buf, err := audio.FromInterleaved(format.SampleRate, format.NumChannels, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}
	return buf, nil
}
