// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrOnlyPCMSupported     = errors.New("only integer PCM WAV is supported")
	ErrUnsupportedBitDepth  = errors.New("unsupported WAV bit depth")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrDataTooLarge         = errors.New("PCM data exceeds the RIFF size limit")
	ErrTooManyChannels      = errors.New("channel count exceeds the WAV header limit")
)
