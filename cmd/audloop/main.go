// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/datacounter"

	"github.com/ik5/audloop"
	"github.com/ik5/audloop/audio"
	"github.com/ik5/audloop/formats/wav"
)

type config struct {
	input         string
	output        string
	opts          audloop.Options
	waveformWidth int
}

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")

	cfg := config{opts: audloop.DefaultOptions()}
	pflag.Float64Var(&cfg.opts.StartSeconds, "start", 0, "start of the region in seconds")
	pflag.Float64Var(&cfg.opts.EndSeconds, "end", 0, "end of the region in seconds; 0 means the end of the input")
	pflag.Float64Var(&cfg.opts.CrossfadeSeconds, "crossfade", cfg.opts.CrossfadeSeconds, "crossfade length in seconds")
	pflag.Var(&cfg.opts.Curve, "curve", "crossfade curve: linear or equal-power")
	pflag.Float64Var(&cfg.opts.MinRegionSeconds, "min-region", cfg.opts.MinRegionSeconds, "shortest accepted region in seconds; 0 disables the check")
	pflag.StringVarP(&cfg.output, "out", "o", "", "output WAV file (default <input>_loop.wav)")
	pflag.IntVar(&cfg.waveformWidth, "waveform-width", 0, "print source and loop waveforms this many columns wide")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <input.{wav|mp3|ogg|aif|aiff}>\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	cfg.input = pflag.Arg(0)
	if cfg.output == "" {
		cfg.output = audloop.LoopFilename(cfg.input)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}

	err := run(ctx, cfg)
	if err != nil {
		logger.Errorf(ctx, "%v", err)
	}
	belt.Flush(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) error {
	src, err := audloop.DecodeFile(ctx, audloop.DefaultRegistry(), cfg.input)
	if err != nil {
		return err
	}
	logger.Infof(ctx, "loaded %s: %s, %v", cfg.input, src, src.Duration())

	loop, err := audloop.MakeLoop(ctx, src, cfg.opts)
	if err != nil {
		return err
	}

	if cfg.waveformWidth > 0 {
		if err := printWaveforms(ctx, cfg.waveformWidth, src, loop); err != nil {
			return err
		}
	}

	written, err := writeLoop(ctx, cfg.output, loop)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "wrote %s: %d bytes, %v loop", cfg.output, written, loop.Duration())
	return nil
}

// writeLoop encodes loop into path. A partially written file is removed.
func writeLoop(ctx context.Context, path string, loop *audio.SampleBuffer) (_ uint64, _err error) {
	out, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("unable to create %q: %w", path, err)
	}
	defer func() {
		if _err == nil {
			return
		}
		out.Close()
		if err := os.Remove(path); err != nil {
			logger.Warnf(ctx, "unable to remove the partial file %q: %v", path, err)
		}
	}()

	wc := datacounter.NewWriterCounter(out)
	if err := wav.Write(wc, loop); err != nil {
		return 0, fmt.Errorf("unable to write %q: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("unable to close %q: %w", path, err)
	}
	return wc.Count(), nil
}

func printWaveforms(ctx context.Context, width int, src, loop *audio.SampleBuffer) error {
	for _, item := range []struct {
		title string
		buf   *audio.SampleBuffer
	}{
		{"source", src},
		{"loop", loop},
	} {
		envs, err := audio.DownsampleChannels(ctx, item.buf, width)
		if err != nil {
			return err
		}
		for ch, env := range envs {
			fmt.Printf("%s, channel %d:\n", item.title, ch)
			if err := renderEnvelope(os.Stdout, env, waveformHeight); err != nil {
				return fmt.Errorf("unable to print the %s waveform: %w", item.title, err)
			}
		}
	}
	return nil
}
