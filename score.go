// SPDX-License-Identifier: EPL-2.0

package ucra

import (
	"fmt"
	"io"
	"math"

	"github.com/crlotwhite/ucra-go/engine"
	"github.com/crlotwhite/ucra-go/stream"
	"github.com/crlotwhite/ucra-go/utils"
)

// RenderScore renders a complete score offline and returns the interleaved
// float32 PCM. It opens a streaming session whose pull callback serves the
// fixed note list, reads until the last note ends, and closes the session.
// A nil eng selects the built-in additive reference engine.
//
// An empty score renders nothing and returns an empty slice.
func RenderScore(eng engine.Engine, notes []engine.Note, cfg stream.Config) ([]float32, error) {
	session, err := stream.Open(cfg, eng, func(req *engine.Request) error {
		req.Notes = notes
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	defer session.Close()

	var end float64
	for _, n := range notes {
		end = max(end, n.End())
	}

	frames := int(math.Ceil(end * float64(cfg.SampleRate)))
	if frames <= 0 {
		return nil, nil
	}

	pcm := make([]float32, frames*cfg.Channels)
	if _, err := session.ReadSamples(pcm); err != nil && err != io.EOF {
		return nil, fmt.Errorf("render score: %w", err)
	}

	return pcm, nil
}

// RenderScorePCM16 renders a complete score offline as 16-bit PCM, ready for
// wav.WriteWAV16 or any other integer-PCM consumer.
func RenderScorePCM16(eng engine.Engine, notes []engine.Note, cfg stream.Config) ([]int16, error) {
	pcm, err := RenderScore(eng, notes, cfg)
	if err != nil {
		return nil, err
	}

	pcm16 := make([]int16, len(pcm))
	for i, v := range pcm {
		pcm16[i] = utils.Float32ToInt16(v)
	}

	return pcm16, nil
}
