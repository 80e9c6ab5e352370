// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audloop/audio"
)

const wavFormatPCM = 1

// Decoder reads integer PCM WAV files (16, 24 or 32 bits per sample) into a
// SampleBuffer. Chunks other than "fmt " and "data" are skipped.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.SampleBuffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs to seek between chunks
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	scale, err := fullScale(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav pcm: %w", err)
	}

	return toSampleBuffer(pcm, scale)
}

func fullScale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
}

func toSampleBuffer(pcm *goaudio.IntBuffer, scale float32) (*audio.SampleBuffer, error) {
	if pcm.Format == nil {
		return nil, ErrUnsupportedWavLayout
	}

	data := make([]float32, len(pcm.Data))
	for i, v := range pcm.Data {
		data[i] = float32(v) / scale
	}

	buf, err := audio.FromInterleaved(pcm.Format.SampleRate, pcm.Format.NumChannels, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	return buf, nil
}
