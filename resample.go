// SPDX-License-Identifier: EPL-2.0

package ucra

import (
	"fmt"
	"io"

	"github.com/crlotwhite/ucra-go/audio"
	"github.com/crlotwhite/ucra-go/utils"
)

// ResampleToMono16 drains src through a resample-then-fold pipeline and
// collects the result as 16-bit mono PCM at targetRate. Host applications
// frequently demand a fixed mono format regardless of what an engine renders
// at; this covers that conversion in one call.
//
// src must be finite: wrap an open session in an audio.FrameLimiter first.
// bufSize is the per-iteration read size in samples.
func ResampleToMono16(src audio.Source, targetRate, bufSize int) ([]int16, int, error) {
	mono := audio.NewMonoMixer(audio.NewResampler(src, targetRate))

	var pcm16 []int16
	buf := make([]float32, bufSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, v := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(v))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("drain pipeline: %w", err)
		}
	}

	return pcm16, targetRate, nil
}
