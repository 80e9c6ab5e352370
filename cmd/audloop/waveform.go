// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bufio"
	"io"

	"github.com/ik5/audloop/audio"
)

const waveformHeight = 9

// renderEnvelope draws env as rows of text, top row at +1 and bottom row at -1.
// A cell is filled when the column's [Min, Max] range touches the row's band.
func renderEnvelope(w io.Writer, env audio.Envelope, height int) error {
	bw := bufio.NewWriter(w)

	line := make([]byte, len(env)+1)
	line[len(env)] = '\n'

	for row := range height {
		top := 1 - 2*float32(row)/float32(height)
		bottom := 1 - 2*float32(row+1)/float32(height)
		for col, p := range env {
			line[col] = ' '
			if p.Min <= p.Max && p.Max >= bottom && p.Min <= top {
				line[col] = '#'
			}
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
