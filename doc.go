// SPDX-License-Identifier: EPL-2.0

// Package ucra is a real-time singing synthesis toolkit built around a
// pull-based streaming core.
//
// A host opens a streaming session, hands it a callback that serves note
// events, and reads PCM whenever its audio device wants more. The session
// renders just-in-time, one block per refill, so hosts that stop reading
// stop paying for synthesis.
//
// # Package Layout
//
//   - stream: the delivery core: sessions, the pull callback, the ring
//     buffer between renderer and reader.
//   - engine: the note model, the render backend contract, the engine
//     registry, and the built-in additive reference engine.
//   - engine/sampler: a voicebank-backed engine that pitch-shifts recorded
//     samples instead of synthesizing from scratch.
//   - sample and formats/{wav,mp3,vorbis,aiff}: decoded voice recordings
//     and the codecs that load them; formats/wav also writes rendered PCM.
//   - audio: conditioning stages (resampling, mono fold-down, frame
//     limiting) between a session and its consumer.
//   - manifest: engine descriptor parsing and validation.
//   - flagmap: legacy flag-string translation to engine options.
//
// # Quick Start
//
// Rendering a fixed score to PCM takes one call:
//
//	notes := []engine.Note{
//	    {Start: 0, Duration: 0.5, Pitch: 60, Velocity: 100, Lyric: "do"},
//	    {Start: 0.5, Duration: 0.5, Pitch: 64, Velocity: 100, Lyric: "mi"},
//	}
//
//	pcm, err := ucra.RenderScore(nil, notes, stream.Config{
//	    SampleRate: 44100,
//	    Channels:   2,
//	    BlockSize:  512,
//	})
//
// Passing a nil engine selects the additive reference engine. For real-time
// delivery, open a stream.Session directly and read from the device
// callback; see the stream package documentation.
//
// # Writing Files
//
// RenderScorePCM16 plus formats/wav covers the common offline path:
//
//	pcm16, err := ucra.RenderScorePCM16(nil, notes, cfg)
//	if err != nil {
//	    return err
//	}
//	return wav.WriteWAV16(f, cfg.SampleRate, cfg.Channels, pcm16)
package ucra
