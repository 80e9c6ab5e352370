// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/audloop/utils"
)

// Peak is the sample range covered by one output column.
type Peak struct {
	Min float32
	Max float32
}

// Envelope is a min/max outline of one channel, one Peak per column.
type Envelope []Peak

// Downsample reduces channel ch of buf to width min/max columns.
//
// Each column scans step = ceil(Len/width) consecutive samples starting at
// column*step. Positions past the end of the buffer, and NaN samples, read as
// silence, and samples outside [-1, 1] are clamped. Columns start from
// Min = 1 and Max = -1, so a column over an empty buffer is reported as {1, -1}.
func Downsample(buf *SampleBuffer, width, ch int) (Envelope, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if ch < 0 || ch >= len(buf.channels) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, ch, len(buf.channels))
	}

	return envelope(buf.channels[ch], width), nil
}

// DownsampleChannels computes the envelope of every channel of buf
// concurrently. The result is indexed by channel.
func DownsampleChannels(ctx context.Context, buf *SampleBuffer, width int) ([]Envelope, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	out := make([]Envelope, len(buf.channels))
	g, ctx := errgroup.WithContext(ctx)
	for ch := range buf.channels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[ch] = envelope(buf.channels[ch], width)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("downsampling %d channels: %w", len(buf.channels), err)
	}
	return out, nil
}

func envelope(data []float32, width int) Envelope {
	step := (len(data) + width - 1) / width
	out := make(Envelope, width)

	for col := range out {
		p := Peak{Min: 1, Max: -1}
		base := col * step
		for j := range step {
			var datum float32
			if idx := base + j; idx < len(data) && !math.IsNaN(float64(data[idx])) {
				datum = utils.Clamp(data[idx])
			}
			if datum < p.Min {
				p.Min = datum
			}
			if datum > p.Max {
				p.Max = datum
			}
		}
		out[col] = p
	}

	return out
}
