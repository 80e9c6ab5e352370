// SPDX-License-Identifier: EPL-2.0

package audloop

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/ik5/audloop/audio"
	"github.com/ik5/audloop/formats/aiff"
	"github.com/ik5/audloop/formats/mp3"
	"github.com/ik5/audloop/formats/vorbis"
	"github.com/ik5/audloop/formats/wav"
)

// DefaultCrossfadeSeconds is the crossfade used by DefaultOptions.
const DefaultCrossfadeSeconds = 0.1

// LoopSuffix is appended to the source name to form the output file name.
const LoopSuffix = "_loop.wav"

// Options selects the region and the seam of a loop.
type Options struct {
	// StartSeconds and EndSeconds bound the region to keep.
	// A zero EndSeconds selects everything up to the end of the source.
	StartSeconds float64
	EndSeconds   float64

	CrossfadeSeconds float64
	Curve            audio.Curve

	// MinRegionSeconds is the shortest accepted source and region.
	// Zero or a negative value disables both checks.
	MinRegionSeconds float64
}

// DefaultOptions loops the whole source with a short equal-power crossfade.
func DefaultOptions() Options {
	return Options{
		CrossfadeSeconds: DefaultCrossfadeSeconds,
		Curve:            audio.EqualPower,
		MinRegionSeconds: audio.DefaultMinRegionSeconds,
	}
}

// MakeLoop crops buf to the selected region and folds the region's head into
// its tail, returning a buffer whose loop point is softened by a crossfade.
//
// Sources shorter than opts.MinRegionSeconds are rejected with
// audio.ErrRegionTooShort before any selection is applied. ctx is checked
// between the crop and the synthesis; the transforms themselves run to
// completion.
func MakeLoop(ctx context.Context, buf *audio.SampleBuffer, opts Options) (*audio.SampleBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.MinRegionSeconds > 0 && buf.Seconds() < opts.MinRegionSeconds {
		return nil, fmt.Errorf("%w: source is %.3fs, minimum is %.3fs",
			audio.ErrRegionTooShort, buf.Seconds(), opts.MinRegionSeconds)
	}

	end := opts.EndSeconds
	if end == 0 {
		end = buf.Seconds()
	}

	logger.Debugf(ctx, "cropping %s to [%.3fs, %.3fs)", buf, opts.StartSeconds, end)
	cropper := audio.Cropper{MinRegionSeconds: opts.MinRegionSeconds}
	region, err := cropper.Crop(buf, opts.StartSeconds, end)
	if err != nil {
		return nil, fmt.Errorf("unable to crop: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "synthesizing loop: crossfade=%.3fs curve=%s", opts.CrossfadeSeconds, opts.Curve)
	loop, err := audio.SynthesizeLoop(region, opts.CrossfadeSeconds, opts.Curve)
	if err != nil {
		return nil, fmt.Errorf("unable to synthesize the loop: %w", err)
	}

	logger.Debugf(ctx, "loop ready: %s (%v)", loop, loop.Duration())
	return loop, nil
}

// LoopFilename derives the output name for a loop cut from name, replacing
// its extension: "drums.mp3" becomes "drums_loop.wav".
func LoopFilename(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + LoopSuffix
}

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// DecodeFile decodes path with the decoder registered for its extension.
func DecodeFile(ctx context.Context, reg *audio.Registry, path string) (*audio.SampleBuffer, error) {
	dec, err := reg.Lookup(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %q: %w", path, err)
	}
	defer f.Close()

	logger.Debugf(ctx, "decoding %q with %T", path, dec)
	buf, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %q: %w", path, err)
	}

	logger.Debugf(ctx, "decoded %q: %s", path, buf)
	return buf, nil
}
